// Package aggregate implements the dimension-keyed reducer used by every
// report: grouped sums, counts and distinct counts over enriched records.
package aggregate

import (
	"sort"
	"strings"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Key extracts one grouping dimension from a record.
type Key[T any] func(T) string

type measureKind int

const (
	kindSum measureKind = iota
	kindCount
	kindDistinct
)

// Measure describes how grouped records are reduced to one value.
type Measure[T any] struct {
	name   string
	kind   measureKind
	amount func(T) decimal.NullDecimal
	label  func(T) string
}

// Name returns the measure label used in rendered tables.
func (m Measure[T]) Name() string { return m.name }

// Sum adds non-null amounts. Null amounts are skipped, never read as zero.
func Sum[T any](name string, amount func(T) decimal.NullDecimal) Measure[T] {
	return Measure[T]{name: name, kind: kindSum, amount: amount}
}

// Count counts records whose amount is non-null.
func Count[T any](name string, amount func(T) decimal.NullDecimal) Measure[T] {
	return Measure[T]{name: name, kind: kindCount, amount: amount}
}

// DistinctCount counts unique non-empty labels.
func DistinctCount[T any](name string, label func(T) string) Measure[T] {
	return Measure[T]{name: name, kind: kindDistinct, label: label}
}

type group struct {
	keys     []string
	sum      decimal.Decimal
	count    int64
	distinct map[string]struct{}
	valid    bool
}

// Aggregate groups records by keys and reduces each group with m. It emits
// one row per observed key combination whose aggregate is non-null, in
// first-observation order. Rows whose value is zero are kept; use NonZero
// for proportional displays.
func Aggregate[T any](records []T, keys []Key[T], m Measure[T]) []entity.AggregateRow {
	index := make(map[string]*group)
	var order []*group

	for _, rec := range records {
		ks := make([]string, len(keys))
		for i, k := range keys {
			ks[i] = k(rec)
		}
		id := strings.Join(ks, "\x1f")
		g, ok := index[id]
		if !ok {
			g = &group{keys: ks, distinct: map[string]struct{}{}}
			index[id] = g
			order = append(order, g)
		}

		switch m.kind {
		case kindSum:
			if v := m.amount(rec); v.Valid {
				g.sum = g.sum.Add(v.Decimal)
				g.valid = true
			}
		case kindCount:
			if v := m.amount(rec); v.Valid {
				g.count++
				g.valid = true
			}
		case kindDistinct:
			// Grupos observados sempre têm contagem distinta, mesmo que zero
			g.valid = true
			if l := m.label(rec); l != "" {
				g.distinct[l] = struct{}{}
			}
		}
	}

	rows := make([]entity.AggregateRow, 0, len(order))
	for _, g := range order {
		if !g.valid {
			continue
		}
		var value decimal.Decimal
		switch m.kind {
		case kindSum:
			value = g.sum
		case kindCount:
			value = decimal.NewFromInt(g.count)
		case kindDistinct:
			value = decimal.NewFromInt(int64(len(g.distinct)))
		}
		rows = append(rows, entity.AggregateRow{Keys: g.keys, Value: value})
	}
	return rows
}

// Table runs Aggregate and wraps the result with its labels.
func Table[T any](title string, records []T, dims []string, keys []Key[T], m Measure[T]) entity.AggregateTable {
	return entity.AggregateTable{
		Title:      title,
		Dimensions: dims,
		Measure:    m.Name(),
		Rows:       Aggregate(records, keys, m),
	}
}

// Total sums non-null amounts of all records. The second result is false
// when every amount was null.
func Total[T any](records []T, amount func(T) decimal.NullDecimal) (decimal.Decimal, bool) {
	total := decimal.Zero
	valid := false
	for _, rec := range records {
		if v := amount(rec); v.Valid {
			total = total.Add(v.Decimal)
			valid = true
		}
	}
	return total, valid
}

// NonZero drops rows whose value is exactly zero.
func NonZero(rows []entity.AggregateRow) []entity.AggregateRow {
	out := make([]entity.AggregateRow, 0, len(rows))
	for _, r := range rows {
		if !r.Value.IsZero() {
			out = append(out, r)
		}
	}
	return out
}

// Positive keeps rows whose value is greater than zero.
func Positive(rows []entity.AggregateRow) []entity.AggregateRow {
	out := make([]entity.AggregateRow, 0, len(rows))
	for _, r := range rows {
		if r.Value.IsPositive() {
			out = append(out, r)
		}
	}
	return out
}

// SortDesc orders rows by value, largest first; ties keep their order.
func SortDesc(rows []entity.AggregateRow) []entity.AggregateRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value.GreaterThan(rows[j].Value)
	})
	return rows
}

// SortAsc orders rows by value, smallest first; ties keep their order.
func SortAsc(rows []entity.AggregateRow) []entity.AggregateRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value.LessThan(rows[j].Value)
	})
	return rows
}

// Top returns at most n rows from the front of rows.
func Top(rows []entity.AggregateRow, n int) []entity.AggregateRow {
	if n < 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
