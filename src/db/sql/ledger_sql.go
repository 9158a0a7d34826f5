package db

import (
	"context"
	"errors"
	"fmt"
	"kakeibo-server/src/apperr"
	"kakeibo-server/src/db"
	"kakeibo-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func ledgerCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("ledgers:%s", userID)
}

// ListLedgersForUser returns every ledger the user holds a membership to,
// oldest first.
func ListLedgersForUser(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID) ([]models.Ledger, error) {
	cacheKey := ledgerCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if ledgers, ok := cached.([]models.Ledger); ok {
			return ledgers, nil
		}
	}

	query := `
		SELECT l.id, l.name, l.created_by, l.created_at
		FROM ledgers l
		JOIN ledger_members m ON m.ledger_id = l.id
		WHERE m.user_id = $1
		ORDER BY l.created_at ASC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	defer rows.Close()

	var ledgers []models.Ledger
	for rows.Next() {
		var l models.Ledger
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedBy, &l.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.ErrStorage, err)
		}
		ledgers = append(ledgers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	db.SetLedgerCache(cacheKey, ledgers)
	return ledgers, nil
}

// CreateLedgerWithOwner inserts the ledger and its owner membership in a
// single database transaction, so a failed membership write can never leave
// an orphaned ledger behind.
func CreateLedgerWithOwner(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID, name string) (*models.Ledger, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	defer tx.Rollback(ctx)

	var ledger models.Ledger
	err = tx.QueryRow(ctx, `
		INSERT INTO ledgers (name, created_by)
		VALUES ($1, $2)
		RETURNING id, name, created_by, created_at
	`, name, userID).Scan(&ledger.ID, &ledger.Name, &ledger.CreatedBy, &ledger.CreatedAt)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to create ledger: %w", err))
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO ledger_members (ledger_id, user_id, role)
		VALUES ($1, $2, $3)
	`, ledger.ID, userID, models.RoleOwner)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to create owner membership: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	db.ClearAllLedgerCaches()
	return &ledger, nil
}

func GetLedgerByID(ctx context.Context, pool *pgxpool.Pool, ledgerID uuid.UUID) (*models.Ledger, error) {
	var l models.Ledger
	query := `SELECT id, name, created_by, created_at FROM ledgers WHERE id = $1`
	err := pool.QueryRow(ctx, query, ledgerID).Scan(&l.ID, &l.Name, &l.CreatedBy, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger not found", apperr.ErrNotFound)
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return &l, nil
}

func GetMemberRole(ctx context.Context, pool *pgxpool.Pool, ledgerID, userID uuid.UUID) (string, error) {
	var role string
	query := `SELECT role FROM ledger_members WHERE ledger_id = $1 AND user_id = $2`
	err := pool.QueryRow(ctx, query, ledgerID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: not a member of this ledger", apperr.ErrAuthorization)
		}
		return "", apperr.Wrap(apperr.ErrStorage, err)
	}
	return role, nil
}
