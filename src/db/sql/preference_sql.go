package db

import (
	"context"
	"errors"
	"fmt"
	"kakeibo-server/src/apperr"
	"kakeibo-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetPreferences returns stored preferences, or defaults when the user has
// never saved any.
func GetPreferences(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID) (*models.Preferences, error) {
	var p models.Preferences
	query := `
		SELECT user_id, current_ledger_id, theme, updated_at
		FROM preferences
		WHERE user_id = $1
	`
	err := pool.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.CurrentLedgerID, &p.Theme, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.Preferences{UserID: userID, Theme: models.ThemeSystem}, nil
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return &p, nil
}

func SetCurrentLedger(ctx context.Context, pool *pgxpool.Pool, userID, ledgerID uuid.UUID) error {
	query := `
		INSERT INTO preferences (user_id, current_ledger_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET current_ledger_id = EXCLUDED.current_ledger_id, updated_at = NOW()
	`
	_, err := pool.Exec(ctx, query, userID, ledgerID)
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to save ledger selection: %w", err))
	}
	return nil
}

func SetTheme(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID, theme string) error {
	query := `
		INSERT INTO preferences (user_id, theme)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET theme = EXCLUDED.theme, updated_at = NOW()
	`
	_, err := pool.Exec(ctx, query, userID, theme)
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to save theme: %w", err))
	}
	return nil
}
