package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"income", CategoryIncome},
		{"Bills", CategoryBills},
		{"  SAVINGS ", CategorySavings},
		{"expenses", CategoryExpenses},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		require.NoError(t, err, "ParseCategory(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseCategory("groceries")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("september")
	require.NoError(t, err)
	assert.Equal(t, Month("September"), m)

	m, err = ParseMonth("Jan")
	require.NoError(t, err)
	assert.Equal(t, Month("January"), m)

	_, err = ParseMonth("Ju")
	assert.ErrorIs(t, err, ErrUnknownMonth)
	_, err = ParseMonth("Smarch")
	assert.ErrorIs(t, err, ErrUnknownMonth)
}

func TestParseYear(t *testing.T) {
	y, err := ParseYear("2026")
	require.NoError(t, err)
	assert.Equal(t, Year("2026"), y)

	_, err = ParseYear("2030")
	assert.ErrorIs(t, err, ErrUnknownYear)
}

func TestNextMonthAndYearWrap(t *testing.T) {
	assert.Equal(t, Month("January"), NextMonth("December", 1))
	assert.Equal(t, Month("December"), NextMonth("January", -1))
	assert.Equal(t, Month("October"), NextMonth("September", 1))
	assert.Equal(t, Year("2024"), NextYear("2028", 1))
	assert.Equal(t, Year("2028"), NextYear("2024", -1))
}

func TestDocumentValidateDuplicates(t *testing.T) {
	doc := Document{
		Bills: CategoryRecord{Items: []LineItem{{ID: 1}, {ID: 2}}},
		// same ids in a different category are fine
		Savings: CategoryRecord{Items: []LineItem{{ID: 1}, {ID: 2}}},
	}
	require.NoError(t, doc.Validate())

	doc.Expenses = CategoryRecord{Items: []LineItem{{ID: 3}, {ID: 3}}}
	assert.ErrorIs(t, doc.Validate(), ErrDuplicateItem)
}

func TestSummaryRemainingClamps(t *testing.T) {
	s := Summary{AmountLeft: decimal.NewFromInt(-250)}
	assert.True(t, s.Remaining().IsZero())
	assert.True(t, s.Overspent())
	assert.True(t, s.AmountLeft.Equal(decimal.NewFromInt(-250)), "signed figure must be kept")

	s.AmountLeft = decimal.NewFromInt(40)
	assert.True(t, s.Remaining().Equal(decimal.NewFromInt(40)))
}
