package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"revenue-check/models"
)

// PostgresReader loads a sales export that was staged into a PostgreSQL table
// with the same column names as the file export.
type PostgresReader struct {
	db    *sql.DB
	table string
}

// NewPostgresReader opens a connection to PostgreSQL and checks it is reachable.
func NewPostgresReader(dsn, table string) (*PostgresReader, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, &models.InputError{Source: table, Err: fmt.Errorf("postgres: open: %w", err)}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &models.InputError{Source: table, Err: fmt.Errorf("postgres: ping: %w", err)}
	}
	return &PostgresReader{db: db, table: table}, nil
}

// Load reads every row of the staging table in physical order.
// All values are scanned as text so the normalizer sees what a CSV export would contain.
func (pr *PostgresReader) Load() (*models.RawTable, error) {
	source := "postgres:" + pr.table
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY ctid`, pq.QuoteIdentifier(pr.table))

	rows, err := pr.db.Query(query)
	if err != nil {
		return nil, &models.InputError{Source: source, Err: fmt.Errorf("postgres: query: %w", err)}
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, &models.InputError{Source: source, Err: fmt.Errorf("postgres: columns: %w", err)}
	}
	if _, _, err := indexHeader(source, header); err != nil {
		return nil, err
	}

	var records []record
	for line := 2; rows.Next(); line++ {
		vals := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &models.InputError{Source: source, Err: fmt.Errorf("postgres: scan row: %w", err)}
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			cells[i] = v.String
		}
		records = append(records, record{line: line, cells: cells})
	}
	if err := rows.Err(); err != nil {
		return nil, &models.InputError{Source: source, Err: fmt.Errorf("postgres: rows: %w", err)}
	}

	return newRawTable(source, header, records)
}

// Close closes the database handle.
func (pr *PostgresReader) Close() error {
	return pr.db.Close()
}
