// Package pipeline derives totals, progress and the amount-left figures
// from a budget document snapshot. Every function is pure.
package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/budgetboard/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Aggregate computes the global summary and per-category totals for doc.
// It always walks the full document; nothing is carried between calls.
func Aggregate(doc model.Document) model.Summary {
	var s model.Summary

	s.Categories = make([]model.CategoryTotals, 0, len(model.Categories))
	for _, c := range model.Categories {
		rec, _ := doc.Record(c)
		ct := AggregateCategory(c, rec)
		s.Categories = append(s.Categories, ct)

		switch c {
		case model.CategoryIncome:
			s.Income = ct.Actual
		case model.CategoryExpenses:
			s.Expenses = ct.Actual
		case model.CategoryBills:
			s.Bills = ct.Actual
		case model.CategorySavings:
			s.Savings = ct.Actual
		}
	}

	s.Spent = s.Expenses.Add(s.Bills).Add(s.Savings)
	s.AmountLeft = s.Income.Sub(s.Spent)

	return s
}

// AggregateCategory computes planned/actual totals, completion and
// per-item progress for one category. The record's own Planned scalar is
// ignored; planned totals always come from the items.
func AggregateCategory(c model.Category, rec model.CategoryRecord) model.CategoryTotals {
	ct := model.CategoryTotals{
		Category: c,
		Planned:  TotalPlanned(rec.Items),
		Actual:   TotalActual(rec.Items),
		Items:    make([]model.ItemProgress, 0, len(rec.Items)),
	}
	ct.Completion = Completion(ct.Planned, ct.Actual)

	for _, it := range rec.Items {
		ct.Items = append(ct.Items, model.ItemProgress{Item: it, Progress: Progress(it)})
	}
	return ct
}

// TotalPlanned sums planned amounts over every item.
func TotalPlanned(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Planned)
	}
	return total
}

// TotalActual sums actual amounts over checked items only.
func TotalActual(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Checked {
			total = total.Add(it.Actual)
		}
	}
	return total
}

// Progress is actual/planned as a percent, capped at 100. Items with no
// planned amount report 0. Negative ratios floor at 0.
func Progress(it model.LineItem) float64 {
	if !it.Planned.IsPositive() {
		return 0
	}
	pct := it.Actual.Div(it.Planned).Mul(hundred).InexactFloat64()
	switch {
	case pct > 100:
		return 100
	case pct < 0:
		return 0
	}
	return pct
}

// Completion is the category footer percentage: actual/planned as a
// percent, uncapped, or 0 when nothing is planned.
func Completion(planned, actual decimal.Decimal) float64 {
	if !planned.IsPositive() {
		return 0
	}
	return actual.Div(planned).Mul(hundred).InexactFloat64()
}

// ChartSlices returns the spent and remaining segments for the amount-left
// donut. Remaining is clamped at zero.
func ChartSlices(s model.Summary) []model.ChartSlice {
	return []model.ChartSlice{
		{Name: "Spent", Value: s.Spent},
		{Name: "Remaining", Value: s.Remaining()},
	}
}

// SpentShare is the fraction of the donut taken by spending, in [0, 1].
// It is 1 when there is nothing left and 0 when both segments are empty.
func SpentShare(s model.Summary) float64 {
	spent := s.Spent
	if spent.IsNegative() {
		spent = decimal.Zero
	}
	whole := spent.Add(s.Remaining())
	if !whole.IsPositive() {
		return 0
	}
	return spent.Div(whole).InexactFloat64()
}
