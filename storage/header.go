package storage

import (
	"errors"
	"strings"

	"revenue-check/models"
)

var errNoHeader = errors.New("no header row")

const utf8BOM = "\uFEFF"

// record is one data row with the source line it started on.
type record struct {
	line  int
	cells []string
}

// columnIndex maps each required column to its position in the header.
type columnIndex map[string]int

// indexHeader trims header cells (and a leading BOM) and locates every required column.
// It returns the cleaned header for display.
func indexHeader(source string, header []string) ([]string, columnIndex, error) {
	cleaned := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		cleaned[i] = strings.TrimSpace(h)
	}

	idx := make(columnIndex, len(models.RequiredColumns))
	for i, h := range cleaned {
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	for _, col := range models.RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, nil, &models.InputError{Source: source, Column: col}
		}
	}
	return cleaned, idx, nil
}

func (ci columnIndex) cell(cells []string, col string) string {
	i := ci[col]
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}

// newRawTable builds a RawTable from a header and its data records.
// Blank records (every cell empty) are dropped, matching how spreadsheet exports pad the end.
func newRawTable(source string, header []string, records []record) (*models.RawTable, error) {
	if len(header) == 0 {
		return nil, &models.InputError{Source: source, Err: errNoHeader}
	}
	columns, idx, err := indexHeader(source, header)
	if err != nil {
		return nil, err
	}

	table := &models.RawTable{
		Source:  source,
		Columns: columns,
		Rows:    make([]*models.RawSale, 0, len(records)),
	}
	for _, r := range records {
		if isBlank(r.cells) {
			continue
		}
		table.Rows = append(table.Rows, &models.RawSale{
			Line:        r.line,
			OrderNumber: idx.cell(r.cells, models.ColOrderNumber),
			IssuedDate:  idx.cell(r.cells, models.ColIssuedDate),
			Period:      idx.cell(r.cells, models.ColPeriod),
			Salesperson: idx.cell(r.cells, models.ColSalesperson),
			Product:     idx.cell(r.cells, models.ColProduct),
			TotalPrice:  idx.cell(r.cells, models.ColTotalPrice),
		})
	}
	return table, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
