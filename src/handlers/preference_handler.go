package handlers

import (
	"encoding/json"
	db "kakeibo-server/src/db/sql"
	"kakeibo-server/src/models"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetPreferences(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		prefs, err := db.GetPreferences(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get preferences for user %s: %v", userID, err)
			http.Error(w, "failed to get preferences", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(prefs)
	}
}

// SwitchLedger records the active-ledger selection. The selection must point
// at a ledger the user belongs to; switching is the only mutator of this
// value.
func SwitchLedger(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		var req struct {
			LedgerID string `json:"ledger_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode switch ledger request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		ledgerID, err := uuid.Parse(req.LedgerID)
		if err != nil {
			http.Error(w, "invalid ledger id", http.StatusBadRequest)
			return
		}

		if _, err := db.GetMemberRole(r.Context(), pool, ledgerID, userID); err != nil {
			log.Printf("ERROR: Switch to ledger %s denied for user %s: %v", ledgerID, userID, err)
			writeAppError(w, err)
			return
		}

		if err := db.SetCurrentLedger(r.Context(), pool, userID, ledgerID); err != nil {
			log.Printf("ERROR: Failed to save ledger selection for user %s: %v", userID, err)
			http.Error(w, "failed to save selection", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: User %s switched to ledger %s", userID, ledgerID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"current_ledger_id": ledgerID.String()})
	}
}

func UpdateTheme(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		var req struct {
			Theme string `json:"theme"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode theme request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !models.ValidTheme(req.Theme) {
			http.Error(w, "theme must be light, dark or system", http.StatusBadRequest)
			return
		}

		if err := db.SetTheme(r.Context(), pool, userID, req.Theme); err != nil {
			log.Printf("ERROR: Failed to save theme for user %s: %v", userID, err)
			http.Error(w, "failed to save theme", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"theme": req.Theme})
	}
}
