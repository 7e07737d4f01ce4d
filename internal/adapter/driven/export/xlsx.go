package export

import (
	"fmt"
	"path/filepath"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const ledgerSheet = "Ledger"

func (r *ExportRepositoryImpl) ExportLedgerToXLSX(items []entity.BudgetLineItem, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return "", fmt.Errorf("error naming XLSX sheet: %w", err)
	}

	header := make([]interface{}, len(ledgerHeader))
	for i, h := range ledgerHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ledgerSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("error writing XLSX header: %w", err)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []interface{}{
			intCell(item.Page),
			amountCell(item.Amount),
			intCell(item.Level),
			item.AccountCode,
			item.Description,
			item.Indicator,
			item.Category,
			item.Unit,
			item.FunctionArea,
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return "", fmt.Errorf("error writing XLSX row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// Célula vazia para nulos; inteiros ficam numéricos
func intCell(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// amountCell grava o valor como número quando float64 o representa sem
// perda; caso contrário mantém o texto decimal completo.
func amountCell(v decimal.NullDecimal) interface{} {
	if !v.Valid {
		return nil
	}
	f, exact := v.Decimal.Float64()
	if exact {
		return f
	}
	return v.Decimal.String()
}
