package budget

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/budgetboard/internal/model"
)

// ErrMissingCategory is returned by Decode when a stored document lacks one
// of the four categories.
var ErrMissingCategory = errors.New("missing category")

// ErrAmountRange is returned by Decode for an amount too large for a float64.
var ErrAmountRange = errors.New("amount out of range")

// amount serializes as a bare JSON number so stored documents keep the
// shape the browser version wrote. Decoding also accepts quoted numbers.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = amount(decimal.Zero)
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	tiny, ok := floatMagnitude(strings.Trim(string(b), `"`))
	switch {
	case !ok:
		return ErrAmountRange
	case tiny:
		d = decimal.Zero
	}
	*a = amount(d)
	return nil
}

func (a amount) MarshalYAML() (any, error) {
	return decimal.Decimal(a).InexactFloat64(), nil
}

type storedItem struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Planned amount `json:"planned" yaml:"planned"`
	Actual  amount `json:"actual" yaml:"actual"`
	Checked bool   `json:"checked" yaml:"checked"`
}

type storedCategory struct {
	Planned *amount      `json:"planned,omitempty" yaml:"planned,omitempty"`
	Items   []storedItem `json:"items" yaml:"items"`
}

type storedDocument struct {
	Income   *storedCategory `json:"income" yaml:"income"`
	Expenses *storedCategory `json:"expenses" yaml:"expenses"`
	Bills    *storedCategory `json:"bills" yaml:"bills"`
	Savings  *storedCategory `json:"savings" yaml:"savings"`
}

// Encode serializes doc as JSON for the persisted budget key.
func Encode(doc model.Document) ([]byte, error) {
	data, err := json.Marshal(toStored(doc))
	if err != nil {
		return nil, fmt.Errorf("encoding budget document: %w", err)
	}
	return data, nil
}

// EncodeIndent is Encode with two-space indentation, for export.
func EncodeIndent(doc model.Document) ([]byte, error) {
	data, err := json.MarshalIndent(toStored(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding budget document: %w", err)
	}
	return data, nil
}

// EncodeYAML serializes doc as YAML with the same field names as Encode.
func EncodeYAML(doc model.Document) ([]byte, error) {
	data, err := yaml.Marshal(toStored(doc))
	if err != nil {
		return nil, fmt.Errorf("encoding budget document: %w", err)
	}
	return data, nil
}

// Decode parses a stored JSON document. All four categories must be present
// and item ids must be unique within each category.
func Decode(data []byte) (model.Document, error) {
	var sd storedDocument
	if err := json.Unmarshal(data, &sd); err != nil {
		return model.Document{}, fmt.Errorf("decoding budget document: %w", err)
	}

	var doc model.Document
	for _, c := range model.Categories {
		sc := sd.category(c)
		if sc == nil {
			return model.Document{}, fmt.Errorf("decoding budget document: %w: %s", ErrMissingCategory, c)
		}
		doc = doc.WithRecord(c, fromStoredCategory(*sc))
	}

	if err := doc.Validate(); err != nil {
		return model.Document{}, fmt.Errorf("decoding budget document: %w", err)
	}
	return doc, nil
}

func (sd storedDocument) category(c model.Category) *storedCategory {
	switch c {
	case model.CategoryIncome:
		return sd.Income
	case model.CategoryExpenses:
		return sd.Expenses
	case model.CategoryBills:
		return sd.Bills
	case model.CategorySavings:
		return sd.Savings
	}
	return nil
}

func toStored(doc model.Document) storedDocument {
	conv := func(r model.CategoryRecord) *storedCategory {
		sc := &storedCategory{Items: make([]storedItem, 0, len(r.Items))}
		if r.Planned != nil {
			p := amount(*r.Planned)
			sc.Planned = &p
		}
		for _, it := range r.Items {
			sc.Items = append(sc.Items, storedItem{
				ID:      it.ID,
				Name:    it.Name,
				Planned: amount(it.Planned),
				Actual:  amount(it.Actual),
				Checked: it.Checked,
			})
		}
		return sc
	}

	return storedDocument{
		Income:   conv(doc.Income),
		Expenses: conv(doc.Expenses),
		Bills:    conv(doc.Bills),
		Savings:  conv(doc.Savings),
	}
}

func fromStoredCategory(sc storedCategory) model.CategoryRecord {
	r := model.CategoryRecord{Items: make([]model.LineItem, 0, len(sc.Items))}
	if sc.Planned != nil {
		p := decimal.Decimal(*sc.Planned)
		r.Planned = &p
	}
	for _, si := range sc.Items {
		r.Items = append(r.Items, model.LineItem{
			ID:      si.ID,
			Name:    si.Name,
			Planned: decimal.Decimal(si.Planned),
			Actual:  decimal.Decimal(si.Actual),
			Checked: si.Checked,
		})
	}
	return r
}
