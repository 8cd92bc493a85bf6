package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/user"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TokenRepository persists refresh tokens and account-activation tokens
type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, userID, token string, expiresAt int64) error
	IsRefreshTokenValid(ctx context.Context, userID, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error

	CreateActivationToken(ctx context.Context, userID string, expiresAt time.Time) (string, error)
	ConsumeActivationToken(ctx context.Context, token string) (string, error)
}

type tokenRepositoryImpl struct {
	db *database.DB
}

func NewTokenRepository(db *database.DB) TokenRepository {
	return &tokenRepositoryImpl{db: db}
}

func (r *tokenRepositoryImpl) StoreRefreshToken(ctx context.Context, userID, token string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, to_timestamp($4), NOW())
	`, uuid.NewString(), userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *tokenRepositoryImpl) IsRefreshTokenValid(ctx context.Context, userID, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM refresh_tokens
			WHERE user_id = $1 AND token = $2 AND revoked_at IS NULL AND expires_at > NOW()
		)
	`, userID, token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return exists, nil
}

func (r *tokenRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`, token)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// CreateActivationToken issues a single-use account-activation token
func (r *tokenRepositoryImpl) CreateActivationToken(ctx context.Context, userID string, expiresAt time.Time) (string, error) {
	q := GetQuerier(ctx, r.db)

	token := uuid.NewString()
	_, err := q.Exec(ctx, `
		INSERT INTO activation_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, uuid.NewString(), userID, token, expiresAt)
	if err != nil {
		return "", fmt.Errorf("failed to create activation token: %w", err)
	}
	return token, nil
}

// ConsumeActivationToken marks the token used and returns its user id.
// Expired or already-consumed tokens report the corresponding domain error.
func (r *tokenRepositoryImpl) ConsumeActivationToken(ctx context.Context, token string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var userID string
	err := q.QueryRow(ctx, `
		UPDATE activation_tokens
		SET consumed_at = NOW()
		WHERE token = $1 AND consumed_at IS NULL AND expires_at > NOW()
		RETURNING user_id
	`, token).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish consumed from unknown/expired for a clearer client message
		var consumed bool
		if checkErr := q.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM activation_tokens WHERE token = $1 AND consumed_at IS NOT NULL)
		`, token).Scan(&consumed); checkErr == nil && consumed {
			return "", user.ErrActivationTokenConsumed
		}
		return "", user.ErrInvalidActivationToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to consume activation token: %w", err)
	}
	return userID, nil
}
