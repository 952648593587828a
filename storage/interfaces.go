package storage

import "revenue-check/models"

// Source is the interface any sales export backend must satisfy.
type Source interface {
	Load() (*models.RawTable, error)
	Close() error
}
