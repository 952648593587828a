package storage

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"revenue-check/models"
)

// XLSXReader loads a sales export from an Excel workbook.
// Cells are read with their display formatting, so "$16,072.00" arrives as text like in a CSV export.
type XLSXReader struct {
	path  string
	sheet string
	file  *excelize.File
}

// NewXLSXReader opens the workbook. An empty sheet name selects the first sheet.
func NewXLSXReader(path, sheet string) (*XLSXReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &models.InputError{Source: path, Err: fmt.Errorf("xlsx: open: %w", err)}
	}
	return &XLSXReader{path: path, sheet: sheet, file: f}, nil
}

// Load reads the header and every data row of the selected sheet.
func (x *XLSXReader) Load() (*models.RawTable, error) {
	sheet := x.sheet
	if sheet == "" {
		sheets := x.file.GetSheetList()
		if len(sheets) == 0 {
			return nil, &models.InputError{Source: x.path, Err: errors.New("xlsx: workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	rows, err := x.file.GetRows(sheet)
	if err != nil {
		return nil, &models.InputError{Source: x.path, Err: fmt.Errorf("xlsx: read sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return nil, &models.InputError{Source: x.path, Err: errNoHeader}
	}

	records := make([]record, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		records = append(records, record{line: i + 2, cells: cells})
	}
	return newRawTable(x.path, rows[0], records)
}

// Close closes the workbook.
func (x *XLSXReader) Close() error {
	return x.file.Close()
}
