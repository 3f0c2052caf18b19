package model

import "github.com/shopspring/decimal"

// ItemProgress pairs an item with its display-only progress ratio.
type ItemProgress struct {
	Item     LineItem
	Progress float64 // percent, clamped to [0, 100]
}

// CategoryTotals holds the derived figures for one category.
type CategoryTotals struct {
	Category   Category
	Planned    decimal.Decimal // all items, regardless of Checked
	Actual     decimal.Decimal // checked items only
	Completion float64         // Actual/Planned as a percent, 0 when Planned is 0
	Items      []ItemProgress
}

// Summary is the global aggregate over a document.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Bills    decimal.Decimal
	Savings  decimal.Decimal

	Spent      decimal.Decimal // Expenses + Bills + Savings
	AmountLeft decimal.Decimal // Income - Spent, may be negative

	Categories []CategoryTotals // in Categories order
}

// Remaining is AmountLeft clamped at zero. Every display site renders
// this; AmountLeft keeps the signed figure.
func (s Summary) Remaining() decimal.Decimal {
	if s.AmountLeft.IsNegative() {
		return decimal.Zero
	}
	return s.AmountLeft
}

// Overspent reports whether spending exceeds income.
func (s Summary) Overspent() bool {
	return s.AmountLeft.IsNegative()
}

// Totals returns the totals for c.
func (s Summary) Totals(c Category) (CategoryTotals, bool) {
	for _, ct := range s.Categories {
		if ct.Category == c {
			return ct, true
		}
	}
	return CategoryTotals{}, false
}

// ChartSlice is one segment of the amount-left donut.
type ChartSlice struct {
	Name  string
	Value decimal.Decimal
}
