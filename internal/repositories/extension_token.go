package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

type ExtensionTokenReadRepository struct {
	db *sqlx.DB
}

func NewExtensionTokenReadRepository(db *sqlx.DB) *ExtensionTokenReadRepository {
	return &ExtensionTokenReadRepository{db: db}
}

// GetActiveByHash returns the token row for a hash if it is neither expired
// nor revoked, or nil otherwise. The expiry check lives in SQL so clock
// handling stays in one place.
func (r *ExtensionTokenReadRepository) GetActiveByHash(ctx context.Context, tokenHash string) (*models.ExtensionTokenDB, error) {
	const query = `
		SELECT token_id, user_id, token_hash, expires_at, revoked_at, last_used_at, created_at
		FROM extension_tokens
		WHERE token_hash = $1
		  AND expires_at > NOW()
		  AND revoked_at IS NULL
	`

	var token models.ExtensionTokenDB
	err := r.db.GetContext(ctx, &token, query, tokenHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// GetByUserID returns all of a user's tokens, active or not.
func (r *ExtensionTokenReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExtensionTokenDB, error) {
	const query = `
		SELECT token_id, user_id, token_hash, expires_at, revoked_at, last_used_at, created_at
		FROM extension_tokens
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var tokens []models.ExtensionTokenDB
	err := r.db.SelectContext(ctx, &tokens, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(tokens),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tokens, nil
}

type ExtensionTokenWriteRepository struct {
	db *sqlx.DB
}

func NewExtensionTokenWriteRepository(db *sqlx.DB) *ExtensionTokenWriteRepository {
	return &ExtensionTokenWriteRepository{db: db}
}

// Save stores a new token hash with its expiry and returns the token id.
func (r *ExtensionTokenWriteRepository) Save(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (uuid.UUID, error) {
	const query = `
		INSERT INTO extension_tokens (token_id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING token_id
	`
	args := []any{uuid.New(), userID, tokenHash, expiresAt}

	var tokenID uuid.UUID
	err := r.db.GetContext(ctx, &tokenID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, expiresAt},
		"result", tokenID,
		"error", err,
	)

	return tokenID, err
}

// Revoke marks a user's token as revoked. Scoped by user so one user cannot
// revoke another's token.
func (r *ExtensionTokenWriteRepository) Revoke(ctx context.Context, userID, tokenID uuid.UUID) error {
	const query = `
		UPDATE extension_tokens
		SET revoked_at = NOW()
		WHERE token_id = $1 AND user_id = $2 AND revoked_at IS NULL
	`

	res, err := r.db.ExecContext(ctx, query, tokenID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tokenID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TouchLastUsed records a successful validation.
func (r *ExtensionTokenWriteRepository) TouchLastUsed(ctx context.Context, tokenID uuid.UUID) error {
	const query = `
		UPDATE extension_tokens
		SET last_used_at = NOW()
		WHERE token_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, tokenID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tokenID},
		"error", err,
	)

	return err
}
