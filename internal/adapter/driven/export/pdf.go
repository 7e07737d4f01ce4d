package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/diillson/apba-dashboard-go/pkg/currency"
	"github.com/jung-kurt/gofpdf"
)

var (
	headerColor       = [3]int{40, 40, 40}
	headerTextColor   = [3]int{255, 255, 255}
	sectionTitleColor = [3]int{0, 0, 0}
	bodyTextColor     = [3]int{50, 50, 50}
	lineColor         = [3]int{200, 200, 200}
)

const pageWidth = 190.0

// pdfDocument agrupa o gofpdf e o tradutor unicode usados por todos os relatórios.
type pdfDocument struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newPDFDocument(orientation string) *pdfDocument {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	doc := &pdfDocument{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by APBA Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, doc.tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	return doc
}

func (d *pdfDocument) banner(title, subtitle string) {
	d.pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	d.pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	d.pdf.SetFont("Arial", "B", 14)
	d.pdf.CellFormat(0, 12, d.tr("  "+title), "", 1, "L", true, 0, "")

	if subtitle != "" {
		d.pdf.SetFont("Arial", "", 10)
		d.pdf.SetFillColor(240, 240, 240)
		d.pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		d.pdf.CellFormat(0, 8, d.tr("  "+subtitle), "", 1, "L", true, 0, "")
	}
	d.pdf.Ln(8)
}

func (d *pdfDocument) section(title string) {
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	d.pdf.Cell(0, 8, d.tr(title))
	d.pdf.Ln(7)
	d.pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	d.pdf.Line(d.pdf.GetX(), d.pdf.GetY(), d.pdf.GetX()+pageWidth, d.pdf.GetY())
	d.pdf.Ln(4)
}

// keyFigure escreve um rótulo e um valor em destaque na mesma linha.
func (d *pdfDocument) keyFigure(label, value string) {
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	d.pdf.CellFormat(70, 8, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.CellFormat(pageWidth-70, 8, d.tr(value), "", 1, "L", false, 0, "")
}

// aggregate desenha a tabela com colunas de dimensão e uma coluna de valor.
func (d *pdfDocument) aggregate(table entity.AggregateTable) {
	if len(table.Rows) == 0 {
		d.pdf.SetFont("Arial", "I", 10)
		d.pdf.Cell(0, 6, "No data")
		d.pdf.Ln(10)
		return
	}

	valueWidth := 55.0
	keyWidth := (pageWidth - valueWidth) / float64(max(len(table.Dimensions), 1))

	d.pdf.SetFont("Arial", "B", 9)
	d.pdf.SetFillColor(240, 240, 240)
	d.pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for _, dim := range table.Dimensions {
		d.pdf.CellFormat(keyWidth, 7, d.tr(dim), "B", 0, "L", true, 0, "")
	}
	d.pdf.CellFormat(valueWidth, 7, d.tr(table.Measure), "B", 1, "R", true, 0, "")

	d.pdf.SetFont("Arial", "", 9)
	for _, row := range table.Rows {
		for i := range table.Dimensions {
			d.pdf.CellFormat(keyWidth, 6, d.tr(truncate(row.Key(i), int(keyWidth/1.9))), "", 0, "L", false, 0, "")
		}
		d.pdf.CellFormat(valueWidth, 6, d.tr(currency.FormatDecimal(row.Value, false)), "", 1, "R", false, 0, "")
	}
	d.pdf.Ln(8)
}

func (d *pdfDocument) save(outputFilename string) (string, error) {
	if err := d.pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportAggregateToPDF(table entity.AggregateTable, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	doc := newPDFDocument("P")
	doc.pdf.AddPage()
	doc.banner(table.Title, strings.Join(table.Dimensions, " x "))
	doc.aggregate(table)

	return doc.save(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToPDF(summary entity.ExecutiveSummary, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	doc := newPDFDocument("P")
	doc.pdf.AddPage()
	doc.banner("APBA Executive Summary", "Regional Revenue and Expenditure Budget")

	doc.section("Key Figures")
	doc.keyFigure("Total Revenue", currency.FormatDecimal(summary.Revenue, false))
	doc.keyFigure("Total Expenditure", currency.FormatDecimal(summary.Expenditure, false))

	surplusLabel := "Surplus"
	if summary.Surplus.IsNegative() {
		surplusLabel = "Deficit"
	}
	surplus := currency.FormatDecimal(summary.Surplus, false)
	if summary.SurplusPercent != nil {
		surplus = fmt.Sprintf("%s (%.2f%%)", surplus, *summary.SurplusPercent)
	}
	doc.keyFigure(surplusLabel, surplus)
	doc.keyFigure("Special Autonomy Fund", currency.FormatDecimal(summary.SpecialAllocation, false))
	doc.pdf.Ln(8)

	for _, table := range []entity.AggregateTable{summary.Composition, summary.TopUnits, summary.AreaUnitAllocation} {
		doc.section(table.Title)
		doc.aggregate(table)
	}

	return doc.save(outputFilename)
}

func truncate(s string, n int) string {
	if n < 4 || len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
