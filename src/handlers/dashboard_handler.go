package handlers

import (
	"encoding/json"
	db "kakeibo-server/src/db/sql"
	"kakeibo-server/src/summary"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetDashboard returns the current month's totals, the daily-available
// figure and the per-day series for the chart.
func GetDashboard(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		ledgerID, err := uuid.Parse(r.URL.Query().Get("ledger_id"))
		if err != nil {
			http.Error(w, "ledger_id is required", http.StatusBadRequest)
			return
		}

		today := time.Now()
		from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		to := from.AddDate(0, 1, -1)

		transactions, err := db.ListTransactions(r.Context(), pool, userID, ledgerID, &from, &to)
		if err != nil {
			log.Printf("ERROR: Failed to load dashboard transactions for user %s, ledger %s: %v", userID, ledgerID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"summary": summary.Summarize(transactions, today),
			"series":  summary.DailySeries(transactions, today),
		})
	}
}
