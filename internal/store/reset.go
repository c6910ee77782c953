package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Counts holds the number of records of each ledger entity.
type Counts struct {
	Companies int `json:"companies"`
	Devs      int `json:"devs"`
	Freebies  int `json:"freebies"`
}

// Reset deletes every freebie, dev and company, in that order, in one
// transaction. Users and settings are kept.
func Reset(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"freebies", "devs", "companies"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reset: %w", err)
	}
	return nil
}

// CountRecords returns how many companies, devs and freebies are stored.
func CountRecords(ctx context.Context, db *sql.DB) (*Counts, error) {
	c := &Counts{}
	err := db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM companies),
		        (SELECT COUNT(*) FROM devs),
		        (SELECT COUNT(*) FROM freebies)`,
	).Scan(&c.Companies, &c.Devs, &c.Freebies)
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}
	return c, nil
}
