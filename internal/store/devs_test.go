package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/freebies/internal/db"
)

func TestCreateAndListDevs(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateDev(ctx, database, "Sam")
	CreateDev(ctx, database, "Kim")

	devs, err := ListDevs(ctx, database)
	if err != nil {
		t.Fatalf("ListDevs: %v", err)
	}
	if len(devs) != 2 || devs[0].Name != "Sam" || devs[1].Name != "Kim" {
		t.Errorf("expected [Sam Kim], got %v", devs)
	}
}

func TestListDevCompaniesDistinct(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	acme, _ := CreateCompany(ctx, database, "Acme", 2000)
	globex, _ := CreateCompany(ctx, database, "Globex", 1990)
	sam, _ := CreateDev(ctx, database, "Sam")

	IssueFreebie(ctx, database, globex.ID, sam.ID, "Pen", 1)
	IssueFreebie(ctx, database, acme.ID, sam.ID, "Mug", 5)
	IssueFreebie(ctx, database, globex.ID, sam.ID, "Hat", 10)

	companies, err := ListDevCompanies(ctx, database, sam.ID)
	if err != nil {
		t.Fatalf("ListDevCompanies: %v", err)
	}
	if len(companies) != 2 {
		t.Fatalf("expected 2 distinct companies, got %d", len(companies))
	}
	if companies[0].Name != "Globex" || companies[1].Name != "Acme" {
		t.Errorf("expected [Globex Acme], got %v", companies)
	}
}

func TestDevHasItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	acme, _ := CreateCompany(ctx, database, "Acme", 2000)
	sam, _ := CreateDev(ctx, database, "Sam")
	kim, _ := CreateDev(ctx, database, "Kim")
	IssueFreebie(ctx, database, acme.ID, sam.ID, "T-shirt", 25)

	tests := []struct {
		devID    int64
		item     string
		expected bool
	}{
		{sam.ID, "T-shirt", true},
		{sam.ID, "t-shirt", false},
		{sam.ID, "T-shirt ", false},
		{sam.ID, "Laptop", false},
		{kim.ID, "T-shirt", false},
	}

	for _, tt := range tests {
		got, err := DevHasItem(ctx, database, tt.devID, tt.item)
		if err != nil {
			t.Fatalf("DevHasItem(%d, %q): %v", tt.devID, tt.item, err)
		}
		if got != tt.expected {
			t.Errorf("DevHasItem(%d, %q) = %v, want %v", tt.devID, tt.item, got, tt.expected)
		}
	}
}

func TestDevProjectionsMissingDev(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	var refErr *ReferenceError
	if _, err := ListDevFreebies(ctx, database, 7); !errors.As(err, &refErr) || refErr.Entity != "dev" || refErr.ID != 7 {
		t.Errorf("ListDevFreebies: expected dev 7 ReferenceError, got %v", err)
	}
	if _, err := ListDevCompanies(ctx, database, 7); !errors.Is(err, ErrReference) {
		t.Errorf("ListDevCompanies: expected ErrReference, got %v", err)
	}
	if _, err := DevHasItem(ctx, database, 7, "Mug"); !errors.Is(err, ErrReference) {
		t.Errorf("DevHasItem: expected ErrReference, got %v", err)
	}
}
