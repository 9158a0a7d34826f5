package db

import (
	"context"
	"fmt"
	"kakeibo-server/src/apperr"
	"kakeibo-server/src/db"
	"kakeibo-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func memberCacheKey(ledgerID uuid.UUID) string {
	return fmt.Sprintf("members:%s", ledgerID)
}

func AddMember(ctx context.Context, pool *pgxpool.Pool, ledgerID, userID uuid.UUID) error {
	query := `
		INSERT INTO ledger_members (ledger_id, user_id, role)
		VALUES ($1, $2, $3)
	`
	_, err := pool.Exec(ctx, query, ledgerID, userID, models.RoleMember)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: already a member of this ledger", apperr.ErrConflict)
		}
		return apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to add member: %w", err))
	}

	db.DelMemberCache(memberCacheKey(ledgerID))
	db.ClearAllLedgerCaches()
	return nil
}

// ListMembers returns every membership of the ledger joined with the member's
// email. A membership whose profile row is gone still shows up, with a
// placeholder label instead of failing the whole listing.
func ListMembers(ctx context.Context, pool *pgxpool.Pool, ledgerID uuid.UUID) ([]models.LedgerMember, error) {
	cacheKey := memberCacheKey(ledgerID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if members, ok := cached.([]models.LedgerMember); ok {
			return members, nil
		}
	}

	query := `
		SELECT m.ledger_id, m.user_id, m.role, COALESCE(p.email, 'unknown user')
		FROM ledger_members m
		LEFT JOIN profiles p ON p.id = m.user_id
		WHERE m.ledger_id = $1
	`
	rows, err := pool.Query(ctx, query, ledgerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	defer rows.Close()

	var members []models.LedgerMember
	for rows.Next() {
		var m models.LedgerMember
		if err := rows.Scan(&m.LedgerID, &m.UserID, &m.Role, &m.Email); err != nil {
			return nil, apperr.Wrap(apperr.ErrStorage, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	db.SetMemberCache(cacheKey, members)
	return members, nil
}
