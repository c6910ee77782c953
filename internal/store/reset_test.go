package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/freebies/internal/db"
)

func TestResetClearsLedger(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	acme, _ := CreateCompany(ctx, database, "Acme", 2000)
	sam, _ := CreateDev(ctx, database, "Sam")
	IssueFreebie(ctx, database, acme.ID, sam.ID, "Mug", 5)

	counts, _ := CountRecords(ctx, database)
	if *counts != (Counts{Companies: 1, Devs: 1, Freebies: 1}) {
		t.Fatalf("unexpected counts before reset: %+v", counts)
	}

	if err := Reset(ctx, database); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	counts, _ = CountRecords(ctx, database)
	if *counts != (Counts{}) {
		t.Errorf("expected empty ledger, got %+v", counts)
	}
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	acme, _ := CreateCompany(ctx, database, "Acme", 2000)
	sam, _ := CreateDev(ctx, database, "Sam")
	Reset(ctx, database)

	newCompany, _ := CreateCompany(ctx, database, "Globex", 1990)
	newDev, _ := CreateDev(ctx, database, "Kim")
	if newCompany.ID == acme.ID || newDev.ID == sam.ID {
		t.Fatal("expected fresh ids after reset")
	}

	// References to records removed by the reset stay dangling.
	_, err := IssueFreebie(ctx, database, acme.ID, newDev.ID, "Mug", 5)
	if !errors.Is(err, ErrReference) {
		t.Errorf("expected ErrReference for deleted company, got %v", err)
	}
}
