package handlers

import (
	"errors"
	"fmt"
	"kakeibo-server/src/apperr"
	db "kakeibo-server/src/db/sql"
	"kakeibo-server/src/export"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportTransactions streams the user's full history as an XLSX attachment.
// An empty history yields a message, never an empty file.
func ExportTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)

		transactions, err := db.ListAllTransactionsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load transactions for export, user %s: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		f, err := export.BuildWorkbook(transactions)
		if err != nil {
			if errors.Is(err, apperr.ErrNoData) {
				log.Printf("INFO: Export skipped for user %s - no transactions", userID)
				http.Error(w, "no transactions to export", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to build export workbook for user %s: %v", userID, err)
			http.Error(w, "failed to build export", http.StatusInternalServerError)
			return
		}

		filename := export.Filename(time.Now())
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if err := f.Write(w); err != nil {
			log.Printf("ERROR: Failed to write export for user %s: %v", userID, err)
			return
		}
		log.Printf("INFO: Exported %d transactions for user %s as %s", len(transactions), userID, filename)
	}
}
