package entity

import "github.com/shopspring/decimal"

// Sentinel labels assigned when a classification has no match.
const (
	UnitNotAvailable = "N/A"
	OtherLabel       = "Other"
)

// BudgetLineItem is one row of the general ledger appendix.
type BudgetLineItem struct {
	AccountCode string              `json:"account_code"`
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	Page        *int                `json:"page_number"`
	Level       *int                `json:"hierarchy_level"`
	Indicator   string              `json:"indicator"`

	// Campos derivados, preenchidos uma única vez após a carga
	Category     string `json:"category"`
	Unit         string `json:"organizational_unit"`
	FunctionArea string `json:"function_area"`
}

// AtLevel reports whether the item sits at the given hierarchy level.
func (b BudgetLineItem) AtLevel(level int) bool {
	return b.Level != nil && *b.Level == level
}
