package classifier

import (
	"testing"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
)

func TestAreaOf(t *testing.T) {
	e := NewEnricher(DefaultTables())
	cases := map[string]string{
		"1.01": "Education",
		"1.02": "Health",
		"1.03": "Public Works",
		"9.01": "Aceh Special Affairs",
		"8.88": "Other",
		"":     "Other",
	}
	for code, want := range cases {
		if got := e.AreaOf(code); got != want {
			t.Errorf("AreaOf(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestSectorOf(t *testing.T) {
	e := NewEnricher(DefaultTables())
	cases := map[string]string{
		"1.01.02":    "Education",
		"2.11.01":    "Environment & Forestry",
		"1.05.01":    "Other",
		"garbage":    "Other",
		"3.25.01.01": "Marine",
	}
	for code, want := range cases {
		if got := e.SectorOf(code); got != want {
			t.Errorf("SectorOf(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestEnrichLedger(t *testing.T) {
	e := NewEnricher(DefaultTables())
	items := []entity.BudgetLineItem{
		{AccountCode: "5.1.01.01", Page: intPtr(60)},
		{AccountCode: "4.1", Page: intPtr(30)},
		{AccountCode: "", Page: nil},
	}
	e.EnrichLedger(items)

	want := []struct{ cat, unit, area string }{
		{CategoryPersonnel, "Dinas Pendidikan", "Education"},
		{CategoryRevenue, "Sekretariat Daerah Aceh", "General Government"},
		{CategoryOther, "N/A", "Other"},
	}
	for i, w := range want {
		got := items[i]
		if got.Category != w.cat || got.Unit != w.unit || got.FunctionArea != w.area {
			t.Errorf("item %d = (%q, %q, %q), want (%q, %q, %q)",
				i, got.Category, got.Unit, got.FunctionArea, w.cat, w.unit, w.area)
		}
	}
}

func TestEnrichSpecialAllocation(t *testing.T) {
	e := NewEnricher(DefaultTables())
	recs := []entity.SpecialAllocationRecord{
		{AccountCode: "1.02.01"},
		{AccountCode: "1.02.01.05"},
		{AccountCode: "1.02"},
	}
	e.EnrichSpecialAllocation(recs)
	if !recs[0].ProgramLevel || recs[1].ProgramLevel || recs[2].ProgramLevel {
		t.Fatalf("unexpected program levels: %+v", recs)
	}
	for _, r := range recs {
		if r.Sector != "Health" {
			t.Errorf("sector of %q = %q", r.AccountCode, r.Sector)
		}
	}
}

func TestUnitsCarryFunctionArea(t *testing.T) {
	e := NewEnricher(DefaultTables())
	for _, u := range e.Units() {
		if u.FunctionArea == "" || u.FunctionArea == entity.OtherLabel {
			t.Errorf("unit %q has no known area for code %q", u.Name, u.FunctionCode)
		}
	}
}
