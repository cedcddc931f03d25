// internal/domain/models/categories.go
package models

// Canonical expense category identifiers.
//
// These values are stored in the database in the Expense.Category field.
// The set is closed: validation rejects anything not listed here.
const (
	CategoryFoodDining     = "Food & Dining"
	CategoryGroceries      = "Groceries"
	CategoryRent           = "Rent"
	CategoryUtilities      = "Utilities"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryHealthFitness  = "Health & Fitness"
	CategoryTravel         = "Travel"
	CategoryDebtLoans      = "Debt & Loans"
	CategoryOther          = "Other"
)

// Categories is the full set of allowed expense categories.
//
// This slice should be treated as the single source of truth for
// validation. Any new category must be added here to be considered valid.
var Categories = []string{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryRent,
	CategoryUtilities,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthFitness,
	CategoryTravel,
	CategoryDebtLoans,
	CategoryOther,
}

// DefaultCategory is used when no category is provided.
const DefaultCategory = CategoryOther

// IsValidCategory checks if a value is a valid expense category.
func IsValidCategory(value string) bool {
	for _, c := range Categories {
		if c == value {
			return true
		}
	}
	return false
}
