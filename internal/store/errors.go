package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrReference is wrapped by every ReferenceError.
var ErrReference = errors.New("reference to missing record")

// ReferenceError reports an operation that referenced a record which is not
// in the store.
type ReferenceError struct {
	Entity string
	ID     int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrReference
}

// Entity names used in reference errors.
const (
	entityCompany = "company"
	entityDev     = "dev"
	entityFreebie = "freebie"
)

// tables maps entity names to their tables.
var tables = map[string]string{
	entityCompany: "companies",
	entityDev:     "devs",
	entityFreebie: "freebies",
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// requireExists returns a ReferenceError if no row of entity has the given id.
func requireExists(ctx context.Context, q queryer, entity string, id int64) error {
	var found bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+tables[entity]+` WHERE id = ?)`, id,
	).Scan(&found)
	if err != nil {
		return fmt.Errorf("checking %s: %w", entity, err)
	}
	if !found {
		return &ReferenceError{Entity: entity, ID: id}
	}
	return nil
}
