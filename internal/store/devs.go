package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/freebies/internal/model"
)

// CreateDev creates a new dev.
func CreateDev(ctx context.Context, db *sql.DB, name string) (*model.Dev, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO devs (name) VALUES (?)`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("creating dev: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting dev id: %w", err)
	}

	return GetDev(ctx, db, id)
}

// GetDev returns a dev by ID.
func GetDev(ctx context.Context, db *sql.DB, id int64) (*model.Dev, error) {
	d := &model.Dev{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name FROM devs WHERE id = ?`, id,
	).Scan(&d.ID, &d.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting dev: %w", err)
	}
	return d, nil
}

// ListDevs returns all devs in insertion order.
func ListDevs(ctx context.Context, db *sql.DB) ([]model.Dev, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name FROM devs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing devs: %w", err)
	}
	defer rows.Close()

	return scanDevs(rows)
}

// ListDevFreebies returns every freebie a dev currently owns.
func ListDevFreebies(ctx context.Context, db *sql.DB, devID int64) ([]model.Freebie, error) {
	if err := requireExists(ctx, db, entityDev, devID); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		freebieSelect+` WHERE f.dev_id = ? ORDER BY f.id`, devID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing dev freebies: %w", err)
	}
	defer rows.Close()

	return scanFreebies(rows)
}

// ListDevCompanies returns the distinct companies a dev holds freebies from,
// ordered by the dev's first freebie from each.
func ListDevCompanies(ctx context.Context, db *sql.DB, devID int64) ([]model.Company, error) {
	if err := requireExists(ctx, db, entityDev, devID); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT c.id, c.name, c.founding_year
		 FROM freebies f
		 JOIN companies c ON c.id = f.company_id
		 WHERE f.dev_id = ?
		 GROUP BY c.id, c.name, c.founding_year
		 ORDER BY MIN(f.id)`, devID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing dev companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// DevHasItem reports whether any of a dev's freebies is named exactly itemName.
func DevHasItem(ctx context.Context, db *sql.DB, devID int64, itemName string) (bool, error) {
	if err := requireExists(ctx, db, entityDev, devID); err != nil {
		return false, err
	}

	var found bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM freebies WHERE dev_id = ? AND item_name = ?)`,
		devID, itemName,
	).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("checking dev item: %w", err)
	}
	return found, nil
}

func scanDevs(rows *sql.Rows) ([]model.Dev, error) {
	var devs []model.Dev
	for rows.Next() {
		var d model.Dev
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scanning dev: %w", err)
		}
		devs = append(devs, d)
	}
	return devs, rows.Err()
}
