package db

import (
	"context"
	"errors"
	"fmt"
	"kakeibo-server/src/apperr"
	"kakeibo-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateProfile(ctx context.Context, pool *pgxpool.Pool, email, hashedPassword string) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, created_at
	`

	var profile models.Profile
	err := pool.QueryRow(ctx, query, email, hashedPassword).Scan(
		&profile.ID,
		&profile.Email,
		&profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
		}
		return nil, apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to create profile: %w", err))
	}

	return &profile, nil
}

func GetProfileByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.Profile, error) {
	var profile models.Profile
	var passwordHash string
	query := `
		SELECT id, email, password_hash, created_at
		FROM profiles
		WHERE email = $1
	`
	err := pool.QueryRow(ctx, query, email).Scan(
		&profile.ID,
		&profile.Email,
		&passwordHash,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user not registered", apperr.ErrNotFound)
		}
		return nil, apperr.Wrap(apperr.ErrStorage, fmt.Errorf("query error: %w", err))
	}
	profile.PasswordHash = []byte(passwordHash)
	return &profile, nil
}

func GetProfileByID(ctx context.Context, pool *pgxpool.Pool, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	query := `
		SELECT id, email, created_at
		FROM profiles
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Email,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user not registered", apperr.ErrNotFound)
		}
		return nil, apperr.Wrap(apperr.ErrStorage, fmt.Errorf("query error: %w", err))
	}
	return &profile, nil
}

func UpdatePassword(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID, hashedPassword string) error {
	query := `UPDATE profiles SET password_hash = $1 WHERE id = $2`
	cmd, err := pool.Exec(ctx, query, hashedPassword, userID)
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, fmt.Errorf("failed to update password: %w", err))
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: user not registered", apperr.ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
