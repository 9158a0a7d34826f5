package handlers

import (
	"encoding/json"
	db "kakeibo-server/src/db/sql"
	"kakeibo-server/src/models"
	"kakeibo-server/src/util"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetLedgers(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		ledgers, err := db.ListLedgersForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to list ledgers for user %s: %v", userID, err)
			http.Error(w, "failed to get ledgers", http.StatusInternalServerError)
			return
		}
		if ledgers == nil {
			ledgers = []models.Ledger{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ledgers)
	}
}

func CreateLedger(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create ledger request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if !util.ValidateLedgerName(req.Name) {
			log.Printf("ERROR: Ledger name validation failed for user %s", userID)
			http.Error(w, "ledger name is required", http.StatusBadRequest)
			return
		}

		ledger, err := db.CreateLedgerWithOwner(r.Context(), pool, userID, req.Name)
		if err != nil {
			log.Printf("ERROR: Failed to create ledger for user %s: %v", userID, err)
			http.Error(w, "failed to create ledger", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created ledger %s (%q) for user %s", ledger.ID, ledger.Name, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ledger)
	}
}

// GetCurrentLedger resolves the active ledger from the saved selection. A
// stale selection (membership gone, ledger gone) falls back to the oldest
// ledger the user still belongs to, and the fallback is persisted so the
// next load agrees.
func GetCurrentLedger(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)

		ledgers, err := db.ListLedgersForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to list ledgers for user %s: %v", userID, err)
			http.Error(w, "failed to get ledgers", http.StatusInternalServerError)
			return
		}

		prefs, err := db.GetPreferences(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load preferences for user %s: %v", userID, err)
			http.Error(w, "failed to get preferences", http.StatusInternalServerError)
			return
		}

		current := resolveCurrentLedger(ledgers, prefs.CurrentLedgerID)
		if current != nil && (prefs.CurrentLedgerID == nil || *prefs.CurrentLedgerID != current.ID) {
			if err := db.SetCurrentLedger(r.Context(), pool, userID, current.ID); err != nil {
				log.Printf("ERROR: Failed to persist ledger fallback for user %s: %v", userID, err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ledger": current})
	}
}

// resolveCurrentLedger picks the saved ledger when it is still accessible,
// otherwise the first available one, otherwise nil.
func resolveCurrentLedger(ledgers []models.Ledger, savedID *uuid.UUID) *models.Ledger {
	if len(ledgers) == 0 {
		return nil
	}
	if savedID != nil {
		for i := range ledgers {
			if ledgers[i].ID == *savedID {
				return &ledgers[i]
			}
		}
	}
	return &ledgers[0]
}
