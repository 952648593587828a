package storage

import (
	"path/filepath"
	"strings"

	"revenue-check/config"
)

// NewSource picks the reader for the configured export.
func NewSource(cfg *config.Config) (Source, error) {
	if cfg.SalesSource == config.SourcePostgres {
		pr, err := NewPostgresReader(cfg.DSN(), cfg.SalesTable)
		if err != nil {
			return nil, err
		}
		return pr, nil
	}

	switch strings.ToLower(filepath.Ext(cfg.SalesFile)) {
	case ".xlsx", ".xlsm":
		xr, err := NewXLSXReader(cfg.SalesFile, cfg.XLSXSheet)
		if err != nil {
			return nil, err
		}
		return xr, nil
	default:
		cr, err := NewCSVReader(cfg.SalesFile)
		if err != nil {
			return nil, err
		}
		return cr, nil
	}
}
