package handlers

import (
	"kakeibo-server/src/models"
	"testing"

	"github.com/google/uuid"
)

func TestResolveCurrentLedger(t *testing.T) {
	a := models.Ledger{ID: uuid.New(), Name: "first"}
	b := models.Ledger{ID: uuid.New(), Name: "second"}
	ledgers := []models.Ledger{a, b}
	stale := uuid.New()

	if got := resolveCurrentLedger(nil, &a.ID); got != nil {
		t.Fatalf("no ledgers: expected nil, got %+v", got)
	}
	if got := resolveCurrentLedger(ledgers, nil); got.ID != a.ID {
		t.Fatalf("no selection: expected first ledger, got %+v", got)
	}
	if got := resolveCurrentLedger(ledgers, &b.ID); got.ID != b.ID {
		t.Fatalf("valid selection: expected it kept, got %+v", got)
	}
	// A saved id the user no longer has access to falls back to the first
	// available ledger.
	if got := resolveCurrentLedger(ledgers, &stale); got.ID != a.ID {
		t.Fatalf("stale selection: expected fallback to first, got %+v", got)
	}
}
