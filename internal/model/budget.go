// Package model defines the budget document, period and derived-totals types.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category names one of the four fixed budget groupings.
type Category string

const (
	CategoryIncome   Category = "income"
	CategoryExpenses Category = "expenses"
	CategoryBills    Category = "bills"
	CategorySavings  Category = "savings"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryIncome, CategoryExpenses, CategoryBills, CategorySavings}

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrDuplicateItem   = errors.New("duplicate item id")
)

// ParseCategory resolves a category name, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	name := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Categories {
		if c == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Title returns the display label, e.g. "Income".
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// LineItem is a single planned/actual pair within a category.
type LineItem struct {
	ID      int
	Name    string
	Planned decimal.Decimal
	Actual  decimal.Decimal
	Checked bool // unchecked items do not count their Actual toward totals
}

// CategoryRecord holds the ordered items of one category.
type CategoryRecord struct {
	// Planned is only present on income in stored documents. Aggregation
	// sums item planned values instead and never reads it.
	Planned *decimal.Decimal
	Items   []LineItem
}

// Document is the full budget: one record per category.
type Document struct {
	Income   CategoryRecord
	Expenses CategoryRecord
	Bills    CategoryRecord
	Savings  CategoryRecord
}

// Record returns the record for c. ok is false for unknown categories.
func (d Document) Record(c Category) (CategoryRecord, bool) {
	switch c {
	case CategoryIncome:
		return d.Income, true
	case CategoryExpenses:
		return d.Expenses, true
	case CategoryBills:
		return d.Bills, true
	case CategorySavings:
		return d.Savings, true
	}
	return CategoryRecord{}, false
}

// WithRecord returns a copy of d with the record for c replaced.
// Unknown categories return d unchanged.
func (d Document) WithRecord(c Category, r CategoryRecord) Document {
	switch c {
	case CategoryIncome:
		d.Income = r
	case CategoryExpenses:
		d.Expenses = r
	case CategoryBills:
		d.Bills = r
	case CategorySavings:
		d.Savings = r
	}
	return d
}

// Validate checks that item ids are unique within each category.
func (d Document) Validate() error {
	for _, c := range Categories {
		r, _ := d.Record(c)
		seen := make(map[int]struct{}, len(r.Items))
		for _, it := range r.Items {
			if _, dup := seen[it.ID]; dup {
				return fmt.Errorf("%w: %s item %d", ErrDuplicateItem, c, it.ID)
			}
			seen[it.ID] = struct{}{}
		}
	}
	return nil
}

// FindItem returns the item with the given id in category c.
func (d Document) FindItem(c Category, id int) (LineItem, bool) {
	r, ok := d.Record(c)
	if !ok {
		return LineItem{}, false
	}
	for _, it := range r.Items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}
