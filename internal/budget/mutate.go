package budget

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/budgetboard/internal/model"
)

// Field identifies which part of a line item a Mutation changes.
type Field int

const (
	FieldActual Field = iota
	FieldPlanned
	FieldName
	FieldChecked
)

func (f Field) String() string {
	switch f {
	case FieldActual:
		return "actual"
	case FieldPlanned:
		return "planned"
	case FieldName:
		return "name"
	case FieldChecked:
		return "checked"
	}
	return "unknown"
}

// Mutation is a single edit addressed by category and item id.
// Value is the raw user input; it is ignored for FieldChecked.
type Mutation struct {
	Field    Field
	Category model.Category
	ID       int
	Value    string
}

// Apply returns doc with the mutation applied and whether an item matched.
// When nothing matches doc is returned as is. Only the touched category gets
// a new item slice; every other category shares its slice with doc.
func Apply(doc model.Document, m Mutation) (model.Document, bool) {
	return replaceItem(doc, m.Category, m.ID, func(it model.LineItem) model.LineItem {
		switch m.Field {
		case FieldActual:
			it.Actual = ParseAmount(m.Value)
		case FieldPlanned:
			it.Planned = ParseAmount(m.Value)
		case FieldName:
			it.Name = m.Value
		case FieldChecked:
			it.Checked = !it.Checked
		}
		return it
	})
}

// UpdateActual sets the item's actual amount. Unparseable input becomes 0.
func UpdateActual(doc model.Document, c model.Category, id int, raw string) model.Document {
	out, _ := Apply(doc, Mutation{Field: FieldActual, Category: c, ID: id, Value: raw})
	return out
}

// UpdatePlanned sets the item's planned amount. Unparseable input becomes 0.
func UpdatePlanned(doc model.Document, c model.Category, id int, raw string) model.Document {
	out, _ := Apply(doc, Mutation{Field: FieldPlanned, Category: c, ID: id, Value: raw})
	return out
}

// UpdateName replaces the item's name verbatim.
func UpdateName(doc model.Document, c model.Category, id int, name string) model.Document {
	out, _ := Apply(doc, Mutation{Field: FieldName, Category: c, ID: id, Value: name})
	return out
}

// ToggleChecked flips whether the item's actual amount counts toward totals.
func ToggleChecked(doc model.Document, c model.Category, id int) model.Document {
	out, _ := Apply(doc, Mutation{Field: FieldChecked, Category: c, ID: id})
	return out
}

func replaceItem(doc model.Document, c model.Category, id int, fn func(model.LineItem) model.LineItem) (model.Document, bool) {
	rec, ok := doc.Record(c)
	if !ok {
		return doc, false
	}

	idx := -1
	for i, it := range rec.Items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return doc, false
	}

	items := make([]model.LineItem, len(rec.Items))
	copy(items, rec.Items)
	items[idx] = fn(items[idx])

	rec.Items = items
	return doc.WithRecord(c, rec), true
}

// ParseAmount reads the longest numeric prefix of raw after leading
// whitespace, the way a browser number field coerces input. Anything that
// does not start with a number yields zero, as does a number outside the
// float64 range.
func ParseAmount(raw string) decimal.Decimal {
	s := numericPrefix(raw)
	if s == "" {
		return decimal.Zero
	}
	if tiny, ok := floatMagnitude(s); !ok || tiny {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func numericPrefix(raw string) string {
	i := 0
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	s := raw[i:]

	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	intDigits := countDigits(s[n:])
	n += intDigits

	fracDigits := 0
	if n < len(s) && s[n] == '.' {
		fracDigits = countDigits(s[n+1:])
		if intDigits > 0 || fracDigits > 0 {
			n += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	// exponent only counts when followed by at least one digit
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		if m < len(s) && (s[m] == '+' || s[m] == '-') {
			m++
		}
		if d := countDigits(s[m:]); d > 0 {
			n = m + d
		}
	}

	out := strings.TrimPrefix(s[:n], "+")
	if strings.HasSuffix(out, ".") {
		out = out[:len(out)-1]
	}
	switch {
	case strings.HasPrefix(out, "-."):
		out = "-0" + out[1:]
	case strings.HasPrefix(out, "."):
		out = "0" + out
	}
	return out
}

// floatMagnitude reports whether the decimal literal s is finite as a
// float64. Literals that underflow to zero report tiny.
func floatMagnitude(s string) (tiny, ok bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false, false
	}
	return f == 0, true
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
