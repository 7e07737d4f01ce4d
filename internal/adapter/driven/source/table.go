package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/diillson/apba-dashboard-go/internal/shared/types"
	"github.com/xuri/excelize/v2"
)

// Colunas das tabelas de origem (contrato de formato)
const (
	ColPage          = "PAGE"
	ColAmount        = "AMOUNT_RP"
	ColLevel         = "LEVEL"
	ColAccountCode   = "ACCOUNT_CODE"
	ColDescription   = "DESCRIPTION"
	ColIndicator     = "INDICATOR"
	ColSeqNo         = "SEQ_NO"
	ColGrantType     = "GRANT_TYPE"
	ColAidType       = "AID_TYPE"
	ColRecipientName = "RECIPIENT_NAME"
	ColAddress       = "ADDRESS"
)

var (
	LedgerColumns            = []string{ColPage, ColAmount, ColLevel, ColAccountCode, ColDescription, ColIndicator}
	GrantColumns             = []string{ColSeqNo, ColGrantType, ColAmount, ColRecipientName, ColAddress}
	AidColumns               = []string{ColSeqNo, ColAidType, ColAmount, ColRecipientName}
	SpecialAllocationColumns = []string{ColAccountCode, ColAmount, ColDescription, ColPage}
)

// table is a header plus string rows, the common shape of every format.
type table struct {
	name   string
	header map[string]int
	rows   [][]string
}

// cell returns the raw value of column in row, or "" when the row is
// shorter than the header.
func (t *table) cell(row []string, column string) string {
	i, ok := t.header[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (t *table) require(columns []string) error {
	var missing []string
	for _, c := range columns {
		if _, ok := t.header[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", t.name, types.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

func newTable(name string, records [][]string) (*table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", name, types.ErrEmptySource)
	}
	header := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := header[h]; !dup {
			header[h] = i
		}
	}
	return &table{name: name, header: header, rows: records[1:]}, nil
}

func parseCSV(name string, r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV %s: %w", name, err)
	}
	return newTable(name, records)
}

// parseXLSX lê a primeira planilha da pasta de trabalho.
func parseXLSX(name string, data []byte) (*table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error opening XLSX %s: %w", name, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%s: %w", name, types.ErrEmptySource)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s of %s: %w", sheetName, name, err)
	}
	return newTable(name, rows)
}
