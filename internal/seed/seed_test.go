package seed

import (
	"context"
	"testing"

	"github.com/erazemk/freebies/internal/db"
	"github.com/erazemk/freebies/internal/model"
	"github.com/erazemk/freebies/internal/store"
)

func TestRunLoadsDemoData(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	counts, err := Run(ctx, database)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if *counts != (store.Counts{Companies: 5, Devs: 5, Freebies: 10}) {
		t.Errorf("unexpected counts: %+v", counts)
	}

	oldest, _ := store.OldestCompany(ctx, database)
	if oldest == nil || oldest.Name != "Microsoft" {
		t.Errorf("expected Microsoft to be oldest, got %+v", oldest)
	}
}

func TestRunIsRepeatable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := Run(ctx, database); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	counts, err := Run(ctx, database)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if counts.Freebies != 10 {
		t.Errorf("expected reseed to replace data, got %d freebies", counts.Freebies)
	}
}

func TestSeededRelationships(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	Run(ctx, database)

	devs, _ := store.ListDevs(ctx, database)
	var alice model.Dev
	for _, d := range devs {
		if d.Name == "Alice Johnson" {
			alice = d
		}
	}

	freebies, _ := store.ListDevFreebies(ctx, database, alice.ID)
	if len(freebies) != 4 {
		t.Errorf("expected Alice to hold 4 freebies, got %d", len(freebies))
	}

	companies, _ := store.ListDevCompanies(ctx, database, alice.ID)
	var names []string
	for _, c := range companies {
		names = append(names, c.Name)
	}
	want := []string{"Google", "Microsoft", "Meta"}
	if len(names) != len(want) {
		t.Fatalf("expected companies %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected companies %v, got %v", want, names)
			break
		}
	}

	has, _ := store.DevHasItem(ctx, database, alice.ID, "Google T-shirt")
	if !has {
		t.Error("expected Alice to have received a Google T-shirt")
	}
}
