package entity

import "github.com/shopspring/decimal"

// AggregateRow is one key combination of a grouped aggregate.
type AggregateRow struct {
	Keys  []string        `json:"keys"`
	Value decimal.Decimal `json:"value"`
}

// Key returns the i-th grouping key, or "" when absent.
func (r AggregateRow) Key(i int) string {
	if i < 0 || i >= len(r.Keys) {
		return ""
	}
	return r.Keys[i]
}

// AggregateTable is a titled aggregate ready for rendering or export.
type AggregateTable struct {
	Title      string         `json:"title"`
	Dimensions []string       `json:"dimensions"`
	Measure    string         `json:"measure"`
	Rows       []AggregateRow `json:"rows"`
}
