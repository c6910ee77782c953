// Package seed loads the demo ledger: five companies, five devs and ten
// freebies spread between them.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/erazemk/freebies/internal/store"
)

type company struct {
	name         string
	foundingYear int
}

type freebie struct {
	item    string
	value   int
	dev     string
	company string
}

var companies = []company{
	{"Google", 1998},
	{"Microsoft", 1975},
	{"Apple", 1976},
	{"Meta", 2004},
	{"Amazon", 1994},
}

var devs = []string{
	"Alice Johnson",
	"Bob Smith",
	"Charlie Brown",
	"Diana Prince",
	"Eve Wilson",
}

var freebies = []freebie{
	{"Google T-shirt", 25, "Alice Johnson", "Google"},
	{"Google Stickers", 5, "Alice Johnson", "Google"},
	{"Microsoft Water Bottle", 15, "Bob Smith", "Microsoft"},
	{"Apple USB-C Cable", 30, "Charlie Brown", "Apple"},
	{"Meta VR Headset", 200, "Diana Prince", "Meta"},
	{"Amazon Echo Dot", 50, "Eve Wilson", "Amazon"},
	{"Microsoft Mouse Pad", 10, "Alice Johnson", "Microsoft"},
	{"Google Hoodie", 45, "Bob Smith", "Google"},
	{"Apple AirPods", 150, "Charlie Brown", "Apple"},
	{"Meta Portal", 100, "Alice Johnson", "Meta"},
}

// Run clears the ledger and loads the demo data. It returns the record
// counts after seeding.
func Run(ctx context.Context, db *sql.DB) (*store.Counts, error) {
	if err := store.Reset(ctx, db); err != nil {
		return nil, fmt.Errorf("clearing ledger: %w", err)
	}
	slog.Info("ledger cleared")

	companyIDs := make(map[string]int64, len(companies))
	for _, c := range companies {
		created, err := store.CreateCompany(ctx, db, c.name, c.foundingYear)
		if err != nil {
			return nil, fmt.Errorf("seeding company %q: %w", c.name, err)
		}
		companyIDs[c.name] = created.ID
	}

	devIDs := make(map[string]int64, len(devs))
	for _, name := range devs {
		created, err := store.CreateDev(ctx, db, name)
		if err != nil {
			return nil, fmt.Errorf("seeding dev %q: %w", name, err)
		}
		devIDs[name] = created.ID
	}

	for _, f := range freebies {
		if _, err := store.IssueFreebie(ctx, db, companyIDs[f.company], devIDs[f.dev], f.item, f.value); err != nil {
			return nil, fmt.Errorf("seeding freebie %q: %w", f.item, err)
		}
	}

	counts, err := store.CountRecords(ctx, db)
	if err != nil {
		return nil, err
	}

	slog.Info("ledger seeded",
		"companies", counts.Companies, "devs", counts.Devs, "freebies", counts.Freebies)
	return counts, nil
}
