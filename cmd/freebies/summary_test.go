package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/erazemk/freebies/internal/db"
	"github.com/erazemk/freebies/internal/seed"
)

func TestPrintSummaryEmpty(t *testing.T) {
	database := db.NewTestDB(t)

	var out bytes.Buffer
	if err := printSummary(context.Background(), database, &out); err != nil {
		t.Fatalf("printSummary: %v", err)
	}
	if !strings.Contains(out.String(), "Companies: 0 - None") {
		t.Errorf("expected empty counts, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "freebies seed") {
		t.Errorf("expected seed hint, got:\n%s", out.String())
	}
}

func TestPrintSummarySeeded(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	if _, err := seed.Run(ctx, database); err != nil {
		t.Fatalf("seed.Run: %v", err)
	}

	var out bytes.Buffer
	if err := printSummary(ctx, database, &out); err != nil {
		t.Fatalf("printSummary: %v", err)
	}

	for _, want := range []string{
		"Companies: 5 - Google, Microsoft, Apple",
		"Freebies: 10 - Google T-shirt, Google Stickers, Microsoft Water Bottle",
		"Alice Johnson companies: Google, Microsoft, Meta",
		"Google devs: Alice Johnson, Bob Smith",
		"First freebie: Alice Johnson owns a Google T-shirt from Google.",
		"Oldest company: Microsoft (founded 1975)",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in summary, got:\n%s", want, out.String())
		}
	}
}

func TestGeneratePassword(t *testing.T) {
	password, err := generatePassword(16)
	if err != nil {
		t.Fatalf("generatePassword: %v", err)
	}
	if len(password) != 16 {
		t.Errorf("expected 16 characters, got %d", len(password))
	}
}
