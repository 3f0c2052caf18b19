package budget

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/budgetboard/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustItem(t *testing.T, doc model.Document, c model.Category, id int) model.LineItem {
	t.Helper()
	it, ok := doc.FindItem(c, id)
	require.True(t, ok, "item %s/%d not found", c, id)
	return it
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1200", "1200"},
		{"1200.50", "1200.5"},
		{"  42", "42"},
		{"-15.25", "-15.25"},
		{"+7", "7"},
		{".5", "0.5"},
		{"-.5", "-0.5"},
		{"5.", "5"},
		{"12abc", "12"},
		{"1e3", "1000"},
		{"2e", "2"},
		{"abc", "0"},
		{"", "0"},
		{"-", "0"},
		{".", "0"},
		{"$100", "0"},
		{"1e300", "1e300"},
		{"1e400", "0"},
		{"1e20000000", "0"},
		{"-1e20000000", "0"},
		{"1e-20000000", "0"},
	}
	for _, tt := range tests {
		got := ParseAmount(tt.raw)
		assert.True(t, got.Equal(dec(tt.want)), "ParseAmount(%q) = %s, want %s", tt.raw, got, tt.want)
	}
}

func TestUpdateActual(t *testing.T) {
	doc := Default()
	out := UpdateActual(doc, model.CategoryBills, 1, "155.10")

	assert.True(t, mustItem(t, out, model.CategoryBills, 1).Actual.Equal(dec("155.10")))
	assert.True(t, mustItem(t, doc, model.CategoryBills, 1).Actual.Equal(dec("140")), "input document must not change")
}

func TestUpdateActual_NonNumericBecomesZero(t *testing.T) {
	out := UpdateActual(Default(), model.CategoryExpenses, 2, "lots")
	assert.True(t, mustItem(t, out, model.CategoryExpenses, 2).Actual.IsZero())
}

func TestUpdatePlanned(t *testing.T) {
	out := UpdatePlanned(Default(), model.CategorySavings, 5, "650")
	it := mustItem(t, out, model.CategorySavings, 5)
	assert.True(t, it.Planned.Equal(dec("650")))
	assert.True(t, it.Actual.Equal(dec("595")), "actual untouched")

	out = UpdatePlanned(out, model.CategorySavings, 5, "n/a")
	assert.True(t, mustItem(t, out, model.CategorySavings, 5).Planned.IsZero())
}

func TestUpdateName_Verbatim(t *testing.T) {
	out := UpdateName(Default(), model.CategoryIncome, 3, "  Side gig  ")
	assert.Equal(t, "  Side gig  ", mustItem(t, out, model.CategoryIncome, 3).Name)
}

func TestToggleChecked_TwiceRestores(t *testing.T) {
	doc := Default()
	once := ToggleChecked(doc, model.CategoryBills, 5)
	assert.False(t, mustItem(t, once, model.CategoryBills, 5).Checked)

	twice := ToggleChecked(once, model.CategoryBills, 5)
	assert.Equal(t, doc, twice)
}

func TestApply_NoMatchLeavesDocument(t *testing.T) {
	doc := Default()

	out, ok := Apply(doc, Mutation{Field: FieldActual, Category: model.CategoryBills, ID: 99, Value: "1"})
	assert.False(t, ok)
	assert.Equal(t, doc, out)

	out, ok = Apply(doc, Mutation{Field: FieldChecked, Category: "groceries", ID: 1})
	assert.False(t, ok)
	assert.Equal(t, doc, out)
}

func TestApply_OnlyTouchedCategoryIsCopied(t *testing.T) {
	doc := Default()
	out, ok := Apply(doc, Mutation{Field: FieldName, Category: model.CategoryBills, ID: 2, Value: "Fiber"})
	require.True(t, ok)

	// untouched categories share their backing arrays
	assert.Same(t, &doc.Income.Items[0], &out.Income.Items[0])
	assert.Same(t, &doc.Expenses.Items[0], &out.Expenses.Items[0])
	assert.Same(t, &doc.Savings.Items[0], &out.Savings.Items[0])

	// touched category is a new slice; only item 2 differs
	assert.NotSame(t, &doc.Bills.Items[0], &out.Bills.Items[0])
	for i := range doc.Bills.Items {
		if doc.Bills.Items[i].ID == 2 {
			assert.Equal(t, "Fiber", out.Bills.Items[i].Name)
			continue
		}
		assert.Equal(t, doc.Bills.Items[i], out.Bills.Items[i])
	}
}

func TestDefault_IsFreshCopy(t *testing.T) {
	a := Default()
	a.Income.Items[0].Name = "changed"
	*a.Income.Planned = dec("1")

	b := Default()
	assert.Equal(t, "Paycheck 1", b.Income.Items[0].Name)
	assert.True(t, b.Income.Planned.Equal(dec("16500")))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := ToggleChecked(Default(), model.CategoryBills, 5)
	doc = UpdateActual(doc, model.CategoryExpenses, 1, "712.35")

	data, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)

	for _, c := range model.Categories {
		want, _ := doc.Record(c)
		have, _ := got.Record(c)
		require.Len(t, have.Items, len(want.Items), c)
		for i := range want.Items {
			assert.Equal(t, want.Items[i].ID, have.Items[i].ID)
			assert.Equal(t, want.Items[i].Name, have.Items[i].Name)
			assert.Equal(t, want.Items[i].Checked, have.Items[i].Checked)
			assert.True(t, want.Items[i].Planned.Equal(have.Items[i].Planned))
			assert.True(t, want.Items[i].Actual.Equal(have.Items[i].Actual))
		}
	}
	require.NotNil(t, got.Income.Planned)
	assert.True(t, got.Income.Planned.Equal(dec("16500")))
	assert.Nil(t, got.Bills.Planned)
}

func TestEncode_BareNumbers(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"planned":16500,`)
	assert.Contains(t, s, `{"id":1,"name":"Electricity","planned":150,"actual":140,"checked":true}`)
}

func TestDecode_BrowserDocument(t *testing.T) {
	// shape written by the browser version, with one quoted amount
	raw := `{
		"income":{"planned":16500,"items":[{"id":1,"name":"Paycheck 1","planned":8000,"actual":8000,"checked":true}]},
		"expenses":{"items":[]},
		"bills":{"items":[{"id":5,"name":"Rent","planned":1200,"actual":"1200.5","checked":false}]},
		"savings":{"items":[]}
	}`
	doc, err := Decode([]byte(raw))
	require.NoError(t, err)

	rent := mustItem(t, doc, model.CategoryBills, 5)
	assert.True(t, rent.Actual.Equal(dec("1200.5")))
	assert.False(t, rent.Checked)
	assert.Empty(t, doc.Expenses.Items)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	require.Error(t, err)

	_, err = Decode([]byte(`{"income":{"items":[]},"expenses":{"items":[]},"bills":{"items":[]}}`))
	assert.ErrorIs(t, err, ErrMissingCategory)

	dup := `{"income":{"items":[{"id":1},{"id":1}]},"expenses":{"items":[]},"bills":{"items":[]},"savings":{"items":[]}}`
	_, err = Decode([]byte(dup))
	assert.ErrorIs(t, err, model.ErrDuplicateItem)
}

func TestDecode_AmountOutOfRange(t *testing.T) {
	huge := `{"income":{"items":[{"id":1,"actual":1e20000000}]},"expenses":{"items":[]},"bills":{"items":[]},"savings":{"items":[]}}`
	_, err := Decode([]byte(huge))
	assert.ErrorIs(t, err, ErrAmountRange)

	tiny := `{"income":{"items":[{"id":1,"actual":"1e-20000000"}]},"expenses":{"items":[]},"bills":{"items":[]},"savings":{"items":[]}}`
	doc, err := Decode([]byte(tiny))
	require.NoError(t, err)
	assert.True(t, mustItem(t, doc, model.CategoryIncome, 1).Actual.IsZero())
}

func TestUpdateActual_HugeExponentStaysSmall(t *testing.T) {
	doc := UpdateActual(Default(), model.CategoryBills, 1, "1e20000000")
	assert.True(t, mustItem(t, doc, model.CategoryBills, 1).Actual.IsZero())

	data, err := Encode(doc)
	require.NoError(t, err)
	assert.Less(t, len(data), 4096)
}

func TestEncodeYAML(t *testing.T) {
	data, err := EncodeYAML(Default())
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.HasPrefix(s, "income:\n"), s)
	assert.Contains(t, s, "name: Rent")
	assert.Contains(t, s, "planned: 1200")
}
