// Package store provides the read-only query layer over the restaurant
// database. Every query takes an explicit row limit and reports whether
// more rows matched than were returned.
package store

import (
	"context"

	"github.com/jinzhu/gorm"
)

// Store wraps the database handle. It never mutates data after seeding.
type Store struct {
	db *gorm.DB
}

// New creates a store around an open database handle
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// checkCtx reports a cancelled or expired context before a query runs.
// The gorm v1 API does not accept a context itself, so deadlines are
// enforced at the call boundaries.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
