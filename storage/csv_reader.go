package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"revenue-check/models"
)

// CSVReader loads a sales export from a delimited text file.
type CSVReader struct {
	path string
	file *os.File
}

// NewCSVReader opens the CSV file at the given path.
func NewCSVReader(path string) (*CSVReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.InputError{Source: path, Err: fmt.Errorf("csv: open: %w", err)}
	}
	return &CSVReader{path: path, file: f}, nil
}

// Load reads the header and every data row.
func (c *CSVReader) Load() (*models.RawTable, error) {
	r := csv.NewReader(c.file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, &models.InputError{Source: c.path, Err: errNoHeader}
	}
	if err != nil {
		return nil, &models.InputError{Source: c.path, Err: fmt.Errorf("csv: read header: %w", err)}
	}

	var records []record
	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &models.InputError{Source: c.path, Err: fmt.Errorf("csv: read row: %w", err)}
		}
		line, _ := r.FieldPos(0)
		records = append(records, record{line: line, cells: cells})
	}

	return newRawTable(c.path, header, records)
}

// Close closes the underlying file.
func (c *CSVReader) Close() error {
	return c.file.Close()
}
