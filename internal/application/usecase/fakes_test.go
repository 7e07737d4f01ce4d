package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/diillson/apba-dashboard-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// --- Console silencioso ---

type quietConsole struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
	success  []string
	statuses []string
	bars     map[string][]types.ShareBar
}

func (c *quietConsole) Print(a ...interface{}) {}
func (c *quietConsole) Printf(format string, a ...interface{}) {}
func (c *quietConsole) Println(a ...interface{}) {}

func (c *quietConsole) LogInfo(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *quietConsole) LogWarning(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *quietConsole) LogError(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *quietConsole) LogSuccess(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *quietConsole) Status(message string) types.StatusHandle {
	c.record(message)
	return recordingStatus{c}
}

func (c *quietConsole) record(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses = append(c.statuses, message)
}

func (c *quietConsole) Progress(items []string) types.ProgressHandle { return noopHandle{} }
func (c *quietConsole) CreateTable() types.TableInterface { return &noopTable{} }
func (c *quietConsole) DisplayShareBars(title string, shares []types.ShareBar) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bars == nil {
		c.bars = map[string][]types.ShareBar{}
	}
	c.bars[title] = shares
}

// recordingStatus guarda cada mensagem de status no console de teste.
type recordingStatus struct{ c *quietConsole }

func (s recordingStatus) Update(message string) { s.c.record(message) }
func (s recordingStatus) Stop()                 {}

type noopHandle struct{}

func (noopHandle) Update(string) {}
func (noopHandle) Increment() {}
func (noopHandle) Stop() {}

type noopTable struct{ rows int }

func (t *noopTable) AddColumn(name string, options ...interface{}) {}
func (t *noopTable) AddRow(cells ...interface{}) { t.rows++ }
func (t *noopTable) Render() string { return "" }

// --- Repositório de origem em memória ---

type memorySource struct {
	mu      sync.Mutex
	loads   int
	failAid error

	ledger  []entity.BudgetLineItem
	grants  []entity.GrantRecord
	aid     []entity.AidRecord
	special []entity.SpecialAllocationRecord
}

func (m *memorySource) LoadLedger(ctx context.Context, source string) ([]entity.BudgetLineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	return append([]entity.BudgetLineItem(nil), m.ledger...), nil
}

func (m *memorySource) LoadGrants(ctx context.Context, source string) ([]entity.GrantRecord, error) {
	return append([]entity.GrantRecord(nil), m.grants...), nil
}

func (m *memorySource) LoadAid(ctx context.Context, source string) ([]entity.AidRecord, error) {
	if m.failAid != nil {
		return nil, m.failAid
	}
	return append([]entity.AidRecord(nil), m.aid...), nil
}

func (m *memorySource) LoadSpecialAllocation(ctx context.Context, source string) ([]entity.SpecialAllocationRecord, error) {
	return append([]entity.SpecialAllocationRecord(nil), m.special...), nil
}

// --- Exportador que apenas registra as chamadas ---

type recordingExporter struct {
	calls []string
	fail  error
}

func (r *recordingExporter) record(call, filename string) (string, error) {
	r.calls = append(r.calls, call+":"+filename)
	if r.fail != nil {
		return "", r.fail
	}
	return "/tmp/" + filename, nil
}

func (r *recordingExporter) ExportLedgerToCSV(items []entity.BudgetLineItem, filename, outputDir string) (string, error) {
	return r.record("ledger.csv", filename)
}

func (r *recordingExporter) ExportLedgerToJSON(items []entity.BudgetLineItem, filename, outputDir string) (string, error) {
	return r.record("ledger.json", filename)
}

func (r *recordingExporter) ExportLedgerToXLSX(items []entity.BudgetLineItem, filename, outputDir string) (string, error) {
	return r.record("ledger.xlsx", filename)
}

func (r *recordingExporter) ExportGrantsToCSV(records []entity.GrantRecord, filename, outputDir string) (string, error) {
	return r.record("grants.csv", filename)
}

func (r *recordingExporter) ExportSpecialAllocationToCSV(records []entity.SpecialAllocationRecord, filename, outputDir string) (string, error) {
	return r.record("otsus.csv", filename)
}

func (r *recordingExporter) ExportAggregateToCSV(table entity.AggregateTable, filename, outputDir string) (string, error) {
	return r.record("aggregate.csv", filename)
}

func (r *recordingExporter) ExportAggregateToJSON(table entity.AggregateTable, filename, outputDir string) (string, error) {
	return r.record("aggregate.json", filename)
}

func (r *recordingExporter) ExportAggregateToPDF(table entity.AggregateTable, filename, outputDir string) (string, error) {
	return r.record("aggregate.pdf", filename)
}

func (r *recordingExporter) ExportSummaryToJSON(summary entity.ExecutiveSummary, filename, outputDir string) (string, error) {
	return r.record("summary.json", filename)
}

func (r *recordingExporter) ExportSummaryToPDF(summary entity.ExecutiveSummary, filename, outputDir string) (string, error) {
	return r.record("summary.pdf", filename)
}

// --- Dados de exemplo ---

func intPtr(n int) *int { return &n }

func amt(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

var null = decimal.NullDecimal{}

func fixtureSource() *memorySource {
	return &memorySource{
		ledger: []entity.BudgetLineItem{
			{AccountCode: "4.1.01", Description: "Pajak daerah", Amount: amt(1000), Page: intPtr(10), Level: intPtr(6)},
			{AccountCode: "5.1.01.01", Description: "Gaji pokok", Amount: amt(300), Page: intPtr(60), Level: intPtr(6), Indicator: "A"},
			{AccountCode: "5.2.01", Description: "Belanja modal gedung", Amount: amt(200), Page: intPtr(60), Level: intPtr(6), Indicator: "B"},
			{AccountCode: "5.1.02.01", Description: "Obat-obatan", Amount: amt(100), Page: intPtr(206), Level: intPtr(6), Indicator: "C"},
			{AccountCode: "5.1.02.02", Description: "Alat kesehatan", Amount: null, Page: intPtr(206), Level: intPtr(6), Indicator: "C"},
			{AccountCode: "5.1.03.01", Description: "Subsidi", Amount: amt(0), Page: intPtr(207), Level: intPtr(6)},
			{AccountCode: "5.1.01", Description: "Belanja gaji", Amount: amt(999), Page: intPtr(60), Level: intPtr(5)},
		},
		grants: []entity.GrantRecord{
			{SeqNo: "1", GrantType: entity.GrantMoney, Amount: amt(500), RecipientName: "Yayasan A", RecipientAddress: "Banda Aceh"},
			{SeqNo: "2", GrantType: entity.GrantGoods, Amount: amt(300), RecipientName: "Pesantren B", RecipientAddress: "Lhokseumawe"},
			{SeqNo: "3", GrantType: entity.GrantMoney, Amount: null, RecipientName: "Yayasan C", RecipientAddress: "Banda Aceh"},
			{SeqNo: "nan", GrantType: entity.GrantMoney, Amount: amt(900), RecipientName: "Header"},
			{SeqNo: "", GrantType: entity.GrantMoney, Amount: amt(800), RecipientName: "Subtotal"},
		},
		aid: []entity.AidRecord{
			{SeqNo: "1", AidType: entity.AidGeneral, Amount: amt(100), RecipientName: "Kab. Aceh Besar"},
			{SeqNo: "2", AidType: entity.AidSpecific, Amount: amt(50), RecipientName: "Kab. Aceh Besar"},
			{SeqNo: "3", AidType: entity.AidGeneral, Amount: amt(0), RecipientName: "Kota Sabang"},
			{SeqNo: "nan", AidType: entity.AidGeneral, Amount: amt(999), RecipientName: "Total"},
		},
		special: []entity.SpecialAllocationRecord{
			{AccountCode: "2.11.01", Description: "Program LHK", Amount: amt(400)},
			{AccountCode: "2.11.01.1.01", Description: "Kegiatan rehabilitasi", Amount: amt(400)},
			{AccountCode: "3.25.02", Description: "Program kelautan", Amount: amt(0)},
			{AccountCode: "3.25.02.1.01", Description: "Kegiatan kelautan", Amount: null},
		},
	}
}

var fixtureSources = entity.SourceSet{
	Ledger:            "ledger.csv",
	Grants:            "grants.csv",
	Aid:               "aid.csv",
	SpecialAllocation: "otsus.csv",
}

func fixtureArgs() *types.CLIArgs {
	return &types.CLIArgs{
		Ledger: fixtureSources.Ledger,
		Grants: fixtureSources.Grants,
		Aid:    fixtureSources.Aid,
		Otsus:  fixtureSources.SpecialAllocation,
	}
}
