package db

import "testing"

func TestMigrateIsIdempotent(t *testing.T) {
	database := NewTestDB(t)

	if err := Migrate(database); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var count int
	err := database.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('companies', 'devs', 'freebies')`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("querying tables: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 ledger tables, got %d", count)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(
		`INSERT INTO freebies (item_name, value, dev_id, company_id) VALUES ('Mug', 5, 42, 42)`,
	)
	if err == nil {
		t.Error("expected foreign key violation for dangling freebie")
	}
}
