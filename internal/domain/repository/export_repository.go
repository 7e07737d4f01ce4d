package repository

import (
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
)

// ExportRepository writes enriched records and aggregates to report files.
// Amounts are always written at full precision.
type ExportRepository interface {
	// Enriched records
	ExportLedgerToCSV(items []entity.BudgetLineItem, filename, outputDir string) (string, error)
	ExportLedgerToJSON(items []entity.BudgetLineItem, filename, outputDir string) (string, error)
	ExportLedgerToXLSX(items []entity.BudgetLineItem, filename, outputDir string) (string, error)

	ExportGrantsToCSV(records []entity.GrantRecord, filename, outputDir string) (string, error)
	ExportSpecialAllocationToCSV(records []entity.SpecialAllocationRecord, filename, outputDir string) (string, error)

	// Aggregates
	ExportAggregateToCSV(table entity.AggregateTable, filename, outputDir string) (string, error)
	ExportAggregateToJSON(table entity.AggregateTable, filename, outputDir string) (string, error)
	ExportAggregateToPDF(table entity.AggregateTable, filename, outputDir string) (string, error)

	// Executive summary
	ExportSummaryToJSON(summary entity.ExecutiveSummary, filename, outputDir string) (string, error)
	ExportSummaryToPDF(summary entity.ExecutiveSummary, filename, outputDir string) (string, error)
}
