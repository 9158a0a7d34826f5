package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Transaction struct {
	ID       uuid.UUID       `json:"id"`
	UserID   uuid.UUID       `json:"user_id"`
	LedgerID uuid.UUID       `json:"ledger_id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	// Category is the stable catalog id; CategoryLabel is resolved from the
	// catalog at read time and never stored.
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Date          time.Time `json:"date"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
