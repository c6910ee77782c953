package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/erazemk/freebies/internal/config"
	"github.com/erazemk/freebies/internal/model"
	"github.com/erazemk/freebies/internal/store"
)

func cmdSummary(ctx context.Context, cfg *config.Config, w io.Writer) error {
	database, err := openDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	return printSummary(ctx, database, w)
}

// printSummary writes record counts, a few samples and the relationships of
// the first dev, company and freebie.
func printSummary(ctx context.Context, database *sql.DB, w io.Writer) error {
	companies, err := store.ListCompanies(ctx, database)
	if err != nil {
		return err
	}
	devs, err := store.ListDevs(ctx, database)
	if err != nil {
		return err
	}
	freebies, err := store.ListFreebies(ctx, database)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Freebie Ledger ===")
	fmt.Fprintf(w, "  Companies: %d - %s\n", len(companies), sample(companies, func(c model.Company) string { return c.Name }))
	fmt.Fprintf(w, "  Developers: %d - %s\n", len(devs), sample(devs, func(d model.Dev) string { return d.Name }))
	fmt.Fprintf(w, "  Freebies: %d - %s\n", len(freebies), sample(freebies, func(f model.Freebie) string { return f.ItemName }))
	fmt.Fprintln(w)

	if len(companies) == 0 && len(devs) == 0 {
		fmt.Fprintln(w, "No data found in database. Run 'freebies seed' first.")
		return nil
	}

	if len(devs) > 0 {
		dev := devs[0]
		owned, err := store.ListDevFreebies(ctx, database, dev.ID)
		if err != nil {
			return err
		}
		from, err := store.ListDevCompanies(ctx, database, dev.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s freebies: %s\n", dev.Name, join(owned, func(f model.Freebie) string { return f.ItemName }))
		fmt.Fprintf(w, "%s companies: %s\n", dev.Name, join(from, func(c model.Company) string { return c.Name }))
	}

	if len(companies) > 0 {
		company := companies[0]
		issued, err := store.ListCompanyFreebies(ctx, database, company.ID)
		if err != nil {
			return err
		}
		to, err := store.ListCompanyDevs(ctx, database, company.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s freebies: %s\n", company.Name, join(issued, func(f model.Freebie) string { return f.ItemName }))
		fmt.Fprintf(w, "%s devs: %s\n", company.Name, join(to, func(d model.Dev) string { return d.Name }))
	}

	if len(freebies) > 0 {
		fmt.Fprintf(w, "First freebie: %s\n", freebies[0].Describe())
	}

	oldest, err := store.OldestCompany(ctx, database)
	if err != nil {
		return err
	}
	if oldest != nil {
		fmt.Fprintf(w, "Oldest company: %s (founded %d)\n", oldest.Name, oldest.FoundingYear)
	}
	return nil
}

// sample names at most the first three records.
func sample[T any](records []T, name func(T) string) string {
	if len(records) == 0 {
		return "None"
	}
	if len(records) > 3 {
		records = records[:3]
	}
	return join(records, name)
}

func join[T any](records []T, name func(T) string) string {
	if len(records) == 0 {
		return "(none)"
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = name(r)
	}
	return strings.Join(names, ", ")
}
