package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diillson/apba-dashboard-go/internal/adapter/driven/source"
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func intPtr(n int) *int { return &n }

func amount(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func sampleLedger() []entity.BudgetLineItem {
	return []entity.BudgetLineItem{
		{
			AccountCode: "5.1.01.01", Description: "Gaji pokok, tunjangan", Amount: amount("1234567890123.45"),
			Page: intPtr(60), Level: intPtr(6), Indicator: "IND-1",
			Category: "Personnel Expenditure", Unit: "Dinas Pendidikan Aceh", FunctionArea: "Education",
		},
		{
			AccountCode: "5.1.02.01", Description: "Belanja ATK",
			Level: intPtr(6), Category: "Goods & Services Expenditure", Unit: entity.UnitNotAvailable, FunctionArea: entity.OtherLabel,
		},
		{
			AccountCode: "4.1.01", Description: "Pajak daerah", Amount: amount("0"),
			Page: intPtr(3), Level: intPtr(6), Category: "Revenue", Unit: entity.UnitNotAvailable, FunctionArea: entity.OtherLabel,
		},
	}
}

func TestExportLedgerToCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	items := sampleLedger()

	path, err := NewExportRepository().ExportLedgerToCSV(items, "ledger", dir)
	if err != nil {
		t.Fatalf("ExportLedgerToCSV: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "ledger_") || filepath.Ext(path) != ".csv" {
		t.Fatalf("unexpected filename %s", path)
	}

	reloaded, err := source.NewSourceRepository().LoadLedger(context.Background(), path)
	if err != nil {
		t.Fatalf("reload exported ledger: %v", err)
	}
	if len(reloaded) != len(items) {
		t.Fatalf("expected %d rows, got %d", len(items), len(reloaded))
	}
	for i := range items {
		want, got := items[i], reloaded[i]
		if want.AccountCode != got.AccountCode || want.Description != got.Description || want.Indicator != got.Indicator {
			t.Errorf("row %d text mismatch: %+v vs %+v", i, want, got)
		}
		if want.Amount.Valid != got.Amount.Valid || (want.Amount.Valid && !want.Amount.Decimal.Equal(got.Amount.Decimal)) {
			t.Errorf("row %d amount %v, reloaded %v", i, entity.FormatAmount(want.Amount), entity.FormatAmount(got.Amount))
		}
		if entity.FormatInt(want.Page) != entity.FormatInt(got.Page) || entity.FormatInt(want.Level) != entity.FormatInt(got.Level) {
			t.Errorf("row %d page/level mismatch", i)
		}
	}
}

func TestExportLedgerToCSVKeepsEnrichedColumns(t *testing.T) {
	path, err := NewExportRepository().ExportLedgerToCSV(sampleLedger(), "ledger", t.TempDir())
	if err != nil {
		t.Fatalf("ExportLedgerToCSV: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(records[0], ",") != strings.Join(ledgerHeader, ",") {
		t.Fatalf("header = %v", records[0])
	}
	if records[1][1] != "1234567890123.45" {
		t.Fatalf("amount must be full precision, got %q", records[1][1])
	}
	if records[1][7] != "Dinas Pendidikan Aceh" || records[2][7] != entity.UnitNotAvailable {
		t.Fatalf("unit column = %q / %q", records[1][7], records[2][7])
	}
	if records[2][1] != "" {
		t.Fatalf("null amount must export empty, got %q", records[2][1])
	}
}

func TestExportLedgerToXLSXRoundTrip(t *testing.T) {
	items := []entity.BudgetLineItem{
		{AccountCode: "5.2.01", Description: "Belanja modal", Amount: amount("2500000"), Page: intPtr(70), Level: intPtr(6)},
		{AccountCode: "5.1.02", Description: "Belanja jasa", Amount: amount("1500000.5"), Level: intPtr(6)},
	}
	path, err := NewExportRepository().ExportLedgerToXLSX(items, "ledger", t.TempDir())
	if err != nil {
		t.Fatalf("ExportLedgerToXLSX: %v", err)
	}

	reloaded, err := source.NewSourceRepository().LoadLedger(context.Background(), path)
	if err != nil {
		t.Fatalf("reload exported workbook: %v", err)
	}
	if len(reloaded) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(reloaded))
	}
	if !reloaded[0].Amount.Decimal.Equal(decimal.NewFromInt(2500000)) || *reloaded[0].Page != 70 {
		t.Fatalf("first row = %+v", reloaded[0])
	}
	if reloaded[1].Page != nil || !reloaded[1].Amount.Decimal.Equal(decimal.RequireFromString("1500000.5")) {
		t.Fatalf("second row = %+v", reloaded[1])
	}
}

func TestExportAggregateToCSVAndJSON(t *testing.T) {
	table := entity.AggregateTable{
		Title:      "Expenditure by Unit",
		Dimensions: []string{"Unit", "Category"},
		Measure:    "Amount",
		Rows: []entity.AggregateRow{
			{Keys: []string{"Dinas A", "Capital Expenditure"}, Value: decimal.RequireFromString("10.25")},
			{Keys: []string{"Dinas B", "Other"}, Value: decimal.Zero},
		},
	}
	repo := NewExportRepository()
	dir := t.TempDir()

	csvPath, err := repo.ExportAggregateToCSV(table, "agg", dir)
	if err != nil {
		t.Fatalf("ExportAggregateToCSV: %v", err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "Unit,Category,Amount\nDinas A,Capital Expenditure,10.25\nDinas B,Other,0\n"
	if string(data) != want {
		t.Fatalf("CSV =\n%s\nwant\n%s", data, want)
	}

	jsonPath, err := repo.ExportAggregateToJSON(table, "agg", dir)
	if err != nil {
		t.Fatalf("ExportAggregateToJSON: %v", err)
	}
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var decoded entity.AggregateTable
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}
	if decoded.Title != table.Title || len(decoded.Rows) != 2 || !decoded.Rows[0].Value.Equal(table.Rows[0].Value) {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestExportPDFReports(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()
	pct := 12.5
	summary := entity.ExecutiveSummary{
		Revenue:           decimal.NewFromInt(11_250_000_000_000),
		Expenditure:       decimal.NewFromInt(10_000_000_000_000),
		Surplus:           decimal.NewFromInt(1_250_000_000_000),
		SurplusPercent:    &pct,
		SpecialAllocation: decimal.NewFromInt(3_900_000_000_000),
		Composition: entity.AggregateTable{
			Title: "Expenditure Composition", Dimensions: []string{"Category"}, Measure: "Amount",
			Rows: []entity.AggregateRow{{Keys: []string{"Personnel Expenditure"}, Value: decimal.NewFromInt(5_000_000)}},
		},
		TopUnits: entity.AggregateTable{Title: "Top Units by Expenditure", Dimensions: []string{"Unit"}, Measure: "Total"},
	}

	for name, export := range map[string]func() (string, error){
		"summary":   func() (string, error) { return repo.ExportSummaryToPDF(summary, "summary", dir) },
		"aggregate": func() (string, error) { return repo.ExportAggregateToPDF(summary.Composition, "composition", dir) },
	} {
		path, err := export()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Fatalf("%s: expected non-empty PDF at %s (%v)", name, path, err)
		}
	}
}

func TestGenerateFilenameCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	name, err := generateFilename("apba", dir, "json")
	if err != nil {
		t.Fatalf("generateFilename: %v", err)
	}
	if filepath.Dir(name) != dir || !strings.HasSuffix(name, ".json") {
		t.Fatalf("unexpected path %s", name)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory not created: %v", err)
	}
}
