package handlers

import (
	"encoding/json"
	db "kakeibo-server/src/db/sql"
	"kakeibo-server/src/models"
	"kakeibo-server/src/util"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		var req struct {
			LedgerID string `json:"ledger_id"`
			Type     string `json:"type"`
			Amount   string `json:"amount"`
			Category string `json:"category"`
			Date     string `json:"date"`
			Note     string `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		ledgerID, err := uuid.Parse(req.LedgerID)
		if err != nil {
			log.Printf("ERROR: Invalid ledger id in create transaction for user %s: %s", userID, req.LedgerID)
			http.Error(w, "invalid ledger id", http.StatusBadRequest)
			return
		}
		if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}
		amount, ok := util.ParseAmount(req.Amount)
		if !ok {
			http.Error(w, "amount must be a positive number", http.StatusBadRequest)
			return
		}
		if _, ok := models.LookupCategory(req.Type, req.Category); !ok {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			http.Error(w, "date is required as YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		transaction := &models.Transaction{
			UserID:   userID,
			LedgerID: ledgerID,
			Type:     req.Type,
			Amount:   amount,
			Category: req.Category,
			Date:     date,
		}
		if note := strings.TrimSpace(req.Note); note != "" {
			transaction.Note = &note
		}

		created, err := db.InsertTransaction(r.Context(), pool, transaction)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %s in ledger %s: %v", userID, ledgerID, err)
			writeAppError(w, err)
			return
		}
		log.Printf("INFO: Created transaction %s for user %s, ledger %s", created.ID, userID, ledgerID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// GetTransactions lists the filtered set for (user, ledger): optional month
// (YYYY-MM or "all"), optional from/to day bounds, optional case-insensitive
// search term against category label or note. The whole set loads eagerly.
func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		ledgerID, err := uuid.Parse(r.URL.Query().Get("ledger_id"))
		if err != nil {
			http.Error(w, "ledger_id is required", http.StatusBadRequest)
			return
		}

		from, to, err := monthRange(r.URL.Query().Get("month"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if raw := r.URL.Query().Get("from"); raw != "" {
			d, err := time.Parse("2006-01-02", raw)
			if err != nil {
				http.Error(w, "invalid from date", http.StatusBadRequest)
				return
			}
			from = &d
		}
		if raw := r.URL.Query().Get("to"); raw != "" {
			d, err := time.Parse("2006-01-02", raw)
			if err != nil {
				http.Error(w, "invalid to date", http.StatusBadRequest)
				return
			}
			to = &d
		}

		transactions, err := db.ListTransactions(r.Context(), pool, userID, ledgerID, from, to)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for user %s, ledger %s: %v", userID, ledgerID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		transactions = filterBySearch(transactions, r.URL.Query().Get("q"))
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		transactionID, err := uuid.Parse(chi.URLParam(r, "transaction_id"))
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", chi.URLParam(r, "transaction_id"))
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}

		if err := db.DeleteTransaction(r.Context(), pool, userID, transactionID); err != nil {
			log.Printf("ERROR: Failed to delete transaction %s for user %s: %v", transactionID, userID, err)
			writeAppError(w, err)
			return
		}
		log.Printf("INFO: Deleted transaction %s for user %s", transactionID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "transaction deleted"})
	}
}

// GetCategories serves the static catalog, optionally filtered by type.
func GetCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txType := r.URL.Query().Get("type")
		categories := models.Categories
		if txType != "" {
			categories = models.CategoriesForType(txType)
		}
		if categories == nil {
			categories = []models.Category{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}
