package db

import (
	"context"
	"fmt"
	"kakeibo-server/src/apperr"
	"kakeibo-server/src/models"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// InsertTransaction writes a transaction scoped to (user, ledger). The
// INSERT..SELECT only produces a row when the user holds a membership to the
// target ledger, the same guard the row-level policies enforce on reads.
func InsertTransaction(ctx context.Context, pool *pgxpool.Pool, t *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, ledger_id, type, amount, category, date, note)
		SELECT $1, $2, $3, $4::numeric, $5, $6, $7
		FROM ledger_members m
		WHERE m.ledger_id = $2 AND m.user_id = $1
		RETURNING id, created_at
	`
	err := pool.QueryRow(ctx, query,
		t.UserID,
		t.LedgerID,
		t.Type,
		t.Amount.String(),
		t.Category,
		t.Date,
		t.Note,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: not a member of this ledger", apperr.ErrAuthorization)
		}
		return nil, apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to insert transaction: %w", err))
	}
	t.CategoryLabel = models.CategoryLabel(t.Type, t.Category)
	return t, nil
}

// ListTransactions returns the full filtered set for (user, ledger), newest
// date first and same-day entries most-recent-first. from/to are inclusive
// calendar-day bounds; either may be nil.
func ListTransactions(ctx context.Context, pool *pgxpool.Pool, userID, ledgerID uuid.UUID, from, to *time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, ledger_id, type, amount::text, category, date, note, created_at
		FROM transactions
		WHERE user_id = $1 AND ledger_id = $2
	`
	args := []interface{}{userID, ledgerID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListAllTransactionsForUser returns the user's complete history across all
// ledgers, used by the export.
func ListAllTransactionsForUser(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, ledger_id, type, amount::text, category, date, note, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, transactionID uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to delete transaction: %w", err))
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction not found", apperr.ErrNotFound)
	}
	return nil
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var amount string
		err := rows.Scan(&t.ID, &t.UserID, &t.LedgerID, &t.Type, &amount, &t.Category, &t.Date, &t.Note, &t.CreatedAt)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrStorage, err)
		}
		t.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrStorage, fmt.Errorf("bad amount %q: %w", amount, err))
		}
		t.CategoryLabel = models.CategoryLabel(t.Type, t.Category)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
