package aggregate

import (
	"testing"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type rec struct {
	unit      string
	category  string
	indicator string
	amount    decimal.NullDecimal
}

func amt(s string) decimal.NullDecimal { return entity.ParseAmount(s) }

func byUnit(r rec) string     { return r.unit }
func byCategory(r rec) string { return r.category }
func amountOf(r rec) decimal.NullDecimal {
	return r.amount
}

func TestSumExcludesNullKeepsZero(t *testing.T) {
	records := []rec{
		{unit: "A", amount: amt("")},
		{unit: "A", amount: amt("0")},
		{unit: "A", amount: amt("150")},
	}
	rows := Aggregate(records, []Key[rec]{byUnit}, Sum("Total", amountOf))
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !rows[0].Value.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("sum = %s, want 150", rows[0].Value)
	}
}

func TestSumAllNullGroupOmitted(t *testing.T) {
	records := []rec{
		{unit: "A", amount: amt("n/a")},
		{unit: "B", amount: amt("10")},
	}
	rows := Aggregate(records, []Key[rec]{byUnit}, Sum("Total", amountOf))
	if len(rows) != 1 || rows[0].Key(0) != "B" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestZeroRowsRetainedUntilFiltered(t *testing.T) {
	records := []rec{
		{unit: "A", amount: amt("0")},
		{unit: "B", amount: amt("5")},
		{unit: "C", amount: amt("-5")},
	}
	rows := Aggregate(records, []Key[rec]{byUnit}, Sum("Total", amountOf))
	if len(rows) != 3 {
		t.Fatalf("tabular listing should keep zero rows, got %d", len(rows))
	}
	nz := NonZero(rows)
	if len(nz) != 2 || nz[0].Key(0) != "B" || nz[1].Key(0) != "C" {
		t.Fatalf("NonZero = %+v", nz)
	}
	pos := Positive(rows)
	if len(pos) != 1 || pos[0].Key(0) != "B" {
		t.Fatalf("Positive = %+v", pos)
	}
}

func TestMultiKeyGrouping(t *testing.T) {
	records := []rec{
		{unit: "A", category: "X", amount: amt("1")},
		{unit: "A", category: "Y", amount: amt("2")},
		{unit: "A", category: "X", amount: amt("3")},
		{unit: "B", category: "X", amount: amt("4")},
	}
	rows := Aggregate(records, []Key[rec]{byUnit, byCategory}, Sum("Total", amountOf))
	want := []struct {
		unit, cat string
		v         int64
	}{
		{"A", "X", 4}, {"A", "Y", 2}, {"B", "X", 4},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Key(0) != w.unit || rows[i].Key(1) != w.cat || !rows[i].Value.Equal(decimal.NewFromInt(w.v)) {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestKeysWithSeparatorDoNotCollide(t *testing.T) {
	records := []rec{
		{unit: "A|B", category: "C", amount: amt("1")},
		{unit: "A", category: "B|C", amount: amt("2")},
	}
	rows := Aggregate(records, []Key[rec]{byUnit, byCategory}, Sum("Total", amountOf))
	if len(rows) != 2 {
		t.Fatalf("expected distinct groups, got %+v", rows)
	}
}

func TestCountAndDistinctCount(t *testing.T) {
	records := []rec{
		{unit: "A", indicator: "i1", amount: amt("1")},
		{unit: "A", indicator: "i1", amount: amt("")},
		{unit: "A", indicator: "i2", amount: amt("3")},
		{unit: "A", indicator: "", amount: amt("3")},
		{unit: "B", indicator: "", amount: amt("")},
	}
	counts := Aggregate(records, []Key[rec]{byUnit}, Count("Items", amountOf))
	if len(counts) != 1 || !counts[0].Value.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("Count = %+v", counts)
	}

	distinct := Aggregate(records, []Key[rec]{byUnit}, DistinctCount("Indicators", func(r rec) string { return r.indicator }))
	if len(distinct) != 2 {
		t.Fatalf("DistinctCount rows = %+v", distinct)
	}
	if !distinct[0].Value.Equal(decimal.NewFromInt(2)) || !distinct[1].Value.IsZero() {
		t.Fatalf("DistinctCount values = %s, %s", distinct[0].Value, distinct[1].Value)
	}
}

func TestTotalAndSorting(t *testing.T) {
	records := []rec{
		{unit: "A", amount: amt("5")},
		{unit: "B", amount: amt("")},
		{unit: "C", amount: amt("20")},
		{unit: "D", amount: amt("10")},
	}
	total, ok := Total(records, amountOf)
	if !ok || !total.Equal(decimal.NewFromInt(35)) {
		t.Fatalf("Total = %s (%v)", total, ok)
	}
	if _, ok := Total([]rec{{amount: amt("")}}, amountOf); ok {
		t.Fatal("Total over nulls should report invalid")
	}

	rows := SortDesc(Aggregate(records, []Key[rec]{byUnit}, Sum("Total", amountOf)))
	if rows[0].Key(0) != "C" || rows[2].Key(0) != "A" {
		t.Fatalf("SortDesc = %+v", rows)
	}
	if top := Top(rows, 2); len(top) != 2 {
		t.Fatalf("Top(2) returned %d", len(top))
	}
	if top := Top(rows, 10); len(top) != 3 {
		t.Fatalf("Top(10) returned %d", len(top))
	}
	asc := SortAsc(rows)
	if asc[0].Key(0) != "A" {
		t.Fatalf("SortAsc = %+v", asc)
	}
}
