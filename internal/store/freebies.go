package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/freebies/internal/model"
)

const freebieSelect = `SELECT f.id, f.item_name, f.value, f.dev_id, f.company_id,
	       d.name AS dev_name, c.name AS company_name
	FROM freebies f
	JOIN devs d ON d.id = f.dev_id
	JOIN companies c ON c.id = f.company_id`

// IssueFreebie creates a freebie from a company to a dev. Both must exist.
func IssueFreebie(ctx context.Context, db *sql.DB, companyID, devID int64, itemName string, value int) (*model.Freebie, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireExists(ctx, tx, entityCompany, companyID); err != nil {
		return nil, err
	}
	if err := requireExists(ctx, tx, entityDev, devID); err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO freebies (item_name, value, dev_id, company_id) VALUES (?, ?, ?, ?)`,
		itemName, value, devID, companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("issuing freebie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting freebie id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing freebie: %w", err)
	}

	return GetFreebie(ctx, db, id)
}

// GetFreebie returns a freebie by ID with dev and company names joined.
func GetFreebie(ctx context.Context, db *sql.DB, id int64) (*model.Freebie, error) {
	f := &model.Freebie{}
	err := db.QueryRowContext(ctx,
		freebieSelect+` WHERE f.id = ?`, id,
	).Scan(&f.ID, &f.ItemName, &f.Value, &f.DevID, &f.CompanyID, &f.DevName, &f.CompanyName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting freebie: %w", err)
	}
	return f, nil
}

// ListFreebies returns all freebies in insertion order.
func ListFreebies(ctx context.Context, db *sql.DB) ([]model.Freebie, error) {
	rows, err := db.QueryContext(ctx, freebieSelect+` ORDER BY f.id`)
	if err != nil {
		return nil, fmt.Errorf("listing freebies: %w", err)
	}
	defer rows.Close()

	return scanFreebies(rows)
}

// DescribeFreebie returns the description of a stored freebie.
func DescribeFreebie(ctx context.Context, db *sql.DB, id int64) (string, error) {
	f, err := GetFreebie(ctx, db, id)
	if err != nil {
		return "", err
	}
	if f == nil {
		return "", &ReferenceError{Entity: entityFreebie, ID: id}
	}
	return f.Describe(), nil
}

func scanFreebies(rows *sql.Rows) ([]model.Freebie, error) {
	var freebies []model.Freebie
	for rows.Next() {
		var f model.Freebie
		if err := rows.Scan(&f.ID, &f.ItemName, &f.Value, &f.DevID, &f.CompanyID, &f.DevName, &f.CompanyName); err != nil {
			return nil, fmt.Errorf("scanning freebie: %w", err)
		}
		freebies = append(freebies, f)
	}
	return freebies, rows.Err()
}
