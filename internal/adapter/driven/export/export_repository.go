package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/diillson/apba-dashboard-go/internal/domain/repository"
)

// Colunas enriquecidas dos arquivos exportados
const (
	ColPage          = "PAGE"
	ColAmount        = "AMOUNT_RP"
	ColLevel         = "LEVEL"
	ColAccountCode   = "ACCOUNT_CODE"
	ColDescription   = "DESCRIPTION"
	ColIndicator     = "INDICATOR"
	ColCategory      = "CATEGORY"
	ColUnit          = "UNIT"
	ColFunctionArea  = "FUNCTION_AREA"
	ColSector        = "SECTOR"
	ColSeqNo         = "SEQ_NO"
	ColGrantType     = "GRANT_TYPE"
	ColRecipientName = "RECIPIENT_NAME"
	ColAddress       = "ADDRESS"
)

var ledgerHeader = []string{
	ColPage, ColAmount, ColLevel, ColAccountCode, ColDescription, ColIndicator,
	ColCategory, ColUnit, ColFunctionArea,
}

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Registros enriquecidos ---

func ledgerRecord(item entity.BudgetLineItem) []string {
	return []string{
		entity.FormatInt(item.Page),
		entity.FormatAmount(item.Amount),
		entity.FormatInt(item.Level),
		item.AccountCode,
		item.Description,
		item.Indicator,
		item.Category,
		item.Unit,
		item.FunctionArea,
	}
}

func (r *ExportRepositoryImpl) ExportLedgerToCSV(items []entity.BudgetLineItem, filename, outputDir string) (string, error) {
	records := make([][]string, 0, len(items))
	for _, item := range items {
		records = append(records, ledgerRecord(item))
	}
	return writeCSV(filename, outputDir, ledgerHeader, records)
}

func (r *ExportRepositoryImpl) ExportLedgerToJSON(items []entity.BudgetLineItem, filename, outputDir string) (string, error) {
	return writeJSON(filename, outputDir, items)
}

func (r *ExportRepositoryImpl) ExportGrantsToCSV(records []entity.GrantRecord, filename, outputDir string) (string, error) {
	header := []string{ColSeqNo, ColGrantType, ColAmount, ColRecipientName, ColAddress}
	rows := make([][]string, 0, len(records))
	for _, g := range records {
		rows = append(rows, []string{
			g.SeqNo,
			string(g.GrantType),
			entity.FormatAmount(g.Amount),
			g.RecipientName,
			g.RecipientAddress,
		})
	}
	return writeCSV(filename, outputDir, header, rows)
}

func (r *ExportRepositoryImpl) ExportSpecialAllocationToCSV(records []entity.SpecialAllocationRecord, filename, outputDir string) (string, error) {
	header := []string{ColAccountCode, ColAmount, ColDescription, ColPage, ColSector}
	rows := make([][]string, 0, len(records))
	for _, s := range records {
		rows = append(rows, []string{
			s.AccountCode,
			entity.FormatAmount(s.Amount),
			s.Description,
			entity.FormatInt(s.Page),
			s.Sector,
		})
	}
	return writeCSV(filename, outputDir, header, rows)
}

// --- Agregados ---

func (r *ExportRepositoryImpl) ExportAggregateToCSV(table entity.AggregateTable, filename, outputDir string) (string, error) {
	header := append(append([]string(nil), table.Dimensions...), table.Measure)
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		record := make([]string, 0, len(header))
		for i := range table.Dimensions {
			record = append(record, row.Key(i))
		}
		record = append(record, row.Value.String())
		rows = append(rows, record)
	}
	return writeCSV(filename, outputDir, header, rows)
}

func (r *ExportRepositoryImpl) ExportAggregateToJSON(table entity.AggregateTable, filename, outputDir string) (string, error) {
	return writeJSON(filename, outputDir, table)
}

func (r *ExportRepositoryImpl) ExportSummaryToJSON(summary entity.ExecutiveSummary, filename, outputDir string) (string, error) {
	return writeJSON(filename, outputDir, summary)
}

// --- Funções Auxiliares ---

func writeCSV(filename, outputDir string, header []string, records [][]string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeJSON(filename, outputDir string, data interface{}) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
