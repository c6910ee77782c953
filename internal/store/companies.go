package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/freebies/internal/model"
)

// CreateCompany creates a new company. Names need not be unique.
func CreateCompany(ctx context.Context, db *sql.DB, name string, foundingYear int) (*model.Company, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO companies (name, founding_year) VALUES (?, ?)`,
		name, foundingYear,
	)
	if err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting company id: %w", err)
	}

	return GetCompany(ctx, db, id)
}

// GetCompany returns a company by ID.
func GetCompany(ctx context.Context, db *sql.DB, id int64) (*model.Company, error) {
	c := &model.Company{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, founding_year FROM companies WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.FoundingYear)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}
	return c, nil
}

// ListCompanies returns all companies in insertion order.
func ListCompanies(ctx context.Context, db *sql.DB) ([]model.Company, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, founding_year FROM companies ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// OldestCompany returns the company with the earliest founding year, or nil
// if there are no companies. Ties go to the company created first.
func OldestCompany(ctx context.Context, db *sql.DB) (*model.Company, error) {
	c := &model.Company{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, founding_year FROM companies
		 ORDER BY founding_year ASC, id ASC LIMIT 1`,
	).Scan(&c.ID, &c.Name, &c.FoundingYear)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting oldest company: %w", err)
	}
	return c, nil
}

// ListCompanyFreebies returns every freebie issued by a company.
func ListCompanyFreebies(ctx context.Context, db *sql.DB, companyID int64) ([]model.Freebie, error) {
	if err := requireExists(ctx, db, entityCompany, companyID); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		freebieSelect+` WHERE f.company_id = ? ORDER BY f.id`, companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing company freebies: %w", err)
	}
	defer rows.Close()

	return scanFreebies(rows)
}

// ListCompanyDevs returns the distinct devs holding freebies from a company,
// ordered by their first such freebie.
func ListCompanyDevs(ctx context.Context, db *sql.DB, companyID int64) ([]model.Dev, error) {
	if err := requireExists(ctx, db, entityCompany, companyID); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT d.id, d.name
		 FROM freebies f
		 JOIN devs d ON d.id = f.dev_id
		 WHERE f.company_id = ?
		 GROUP BY d.id, d.name
		 ORDER BY MIN(f.id)`, companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing company devs: %w", err)
	}
	defer rows.Close()

	return scanDevs(rows)
}

func scanCompanies(rows *sql.Rows) ([]model.Company, error) {
	var companies []model.Company
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.FoundingYear); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
