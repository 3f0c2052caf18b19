// Package budget holds the default budget snapshot, the pure document
// mutations and the stored-document codec.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/budgetboard/internal/model"
)

func item(id int, name, planned, actual string) model.LineItem {
	return model.LineItem{
		ID:      id,
		Name:    name,
		Planned: decimal.RequireFromString(planned),
		Actual:  decimal.RequireFromString(actual),
		Checked: true,
	}
}

// Default returns a fresh copy of the built-in snapshot used on first run
// and after a reset.
func Default() model.Document {
	incomePlanned := decimal.RequireFromString("16500.00")

	return model.Document{
		Income: model.CategoryRecord{
			Planned: &incomePlanned,
			Items: []model.LineItem{
				item(1, "Paycheck 1", "8000.00", "8000.00"),
				item(2, "Paycheck 2", "8000.00", "8000.00"),
				item(3, "Other Income", "500.00", "500.00"),
			},
		},
		Expenses: model.CategoryRecord{
			Items: []model.LineItem{
				item(1, "Eating out", "700.00", "700.00"),
				item(2, "Groceries", "600.00", "600.00"),
				item(3, "Gas/Rides/Parking", "350.00", "350.00"),
				item(4, "Entertainment", "400.00", "400.00"),
				item(5, "Pet Supply", "150.00", "150.00"),
				item(6, "Clothing", "300.00", "300.00"),
			},
		},
		Bills: model.CategoryRecord{
			Items: []model.LineItem{
				item(1, "Electricity", "150.00", "140.00"),
				item(2, "Internet", "80.00", "80.00"),
				item(3, "Water", "60.00", "55.00"),
				item(4, "Cell Phone/Insurance", "120.00", "120.00"),
				item(5, "Rent", "1200.00", "1200.00"),
				item(6, "Car Insurance", "250.00", "250.00"),
			},
		},
		Savings: model.CategoryRecord{
			Items: []model.LineItem{
				item(1, "Emergency Fund", "1500.00", "1500.00"),
				item(2, "Retirement acc.", "2000.00", "2000.00"),
				item(3, "Investment acc.", "1500.00", "1500.00"),
				item(4, "Christmas/shopping", "500.00", "500.00"),
				item(5, "Checking acc.", "595.00", "595.00"),
			},
		},
	}
}
