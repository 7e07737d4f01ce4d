package entity

import "github.com/shopspring/decimal"

// ExecutiveSummary is the headline view of the budget law.
type ExecutiveSummary struct {
	Revenue            decimal.Decimal `json:"revenue"`
	Expenditure        decimal.Decimal `json:"expenditure"`
	Surplus            decimal.Decimal `json:"surplus"`
	SurplusPercent     *float64        `json:"surplus_percent,omitempty"`
	SpecialAllocation  decimal.Decimal `json:"special_allocation"`
	Composition        AggregateTable  `json:"composition"`
	TopUnits           AggregateTable  `json:"top_units"`
	AreaUnitAllocation AggregateTable  `json:"area_unit_allocation"`
}

// UnitExploration holds the expenditure detail of a single unit.
type UnitExploration struct {
	Unit       string           `json:"unit"`
	Total      decimal.Decimal  `json:"total"`
	ItemCount  int              `json:"item_count"`
	Categories AggregateTable   `json:"categories"`
	Breakdown  AggregateTable   `json:"breakdown"`
	Items      []BudgetLineItem `json:"items"`
}

// SpecialAllocationReport summarises the special-autonomy appendix.
type SpecialAllocationReport struct {
	Total   decimal.Decimal           `json:"total"`
	Sectors AggregateTable            `json:"sectors"`
	Items   []SpecialAllocationRecord `json:"items"`
}

// GrantReport summarises the grants appendix.
type GrantReport struct {
	MoneyTotal     decimal.Decimal `json:"money_total"`
	GoodsTotal     decimal.Decimal `json:"goods_total"`
	RecipientCount int             `json:"recipient_count"`
	ByType         AggregateTable  `json:"by_type"`
	TopRecipients  []GrantRecord   `json:"top_recipients"`
	Items          []GrantRecord   `json:"items"`
}

// AidReport summarises the inter-government-aid appendix.
type AidReport struct {
	GeneralTotal  decimal.Decimal `json:"general_total"`
	SpecificTotal decimal.Decimal `json:"specific_total"`
	ByRecipient   AggregateTable  `json:"by_recipient"`
}

// UnitProfile is the per-unit row of the comparative analysis.
type UnitProfile struct {
	Unit       string          `json:"unit"`
	Total      decimal.Decimal `json:"total"`
	Items      int             `json:"items"`
	Indicators int             `json:"indicators"`
}

// CategoryShare is the percentage of a unit's spending in one category.
type CategoryShare struct {
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
}

// ComparativeReport cross-tabulates units against spending categories.
type ComparativeReport struct {
	Matrix   AggregateTable  `json:"matrix"`
	Profiles []UnitProfile   `json:"profiles"`
	Shares   []CategoryShare `json:"shares"`
}
