package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

type TrackPickReadRepository struct {
	db *sqlx.DB
}

func NewTrackPickReadRepository(db *sqlx.DB) *TrackPickReadRepository {
	return &TrackPickReadRepository{db: db}
}

// GetByUserID returns all of a user's track picks.
func (r *TrackPickReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.TrackPickDB, error) {
	const query = `
		SELECT track_pick_id, user_id, album_id, track_number, track_title, created_at, updated_at
		FROM track_picks
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	var picks []models.TrackPickDB
	err := r.db.SelectContext(ctx, &picks, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(picks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return picks, nil
}

// GetByUserAlbum returns the user's pick for an album, or nil when unset.
func (r *TrackPickReadRepository) GetByUserAlbum(ctx context.Context, userID, albumID uuid.UUID) (*models.TrackPickDB, error) {
	const query = `
		SELECT track_pick_id, user_id, album_id, track_number, track_title, created_at, updated_at
		FROM track_picks
		WHERE user_id = $1 AND album_id = $2
	`

	var pick models.TrackPickDB
	err := r.db.GetContext(ctx, &pick, query, userID, albumID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, albumID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &pick, nil
}

type TrackPickWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTrackPickWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TrackPickWriteRepository {
	return &TrackPickWriteRepository{db: db, txGetter: txGetter}
}

func (r *TrackPickWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save upserts the user's single pick for an album.
func (r *TrackPickWriteRepository) Save(ctx context.Context, userID, albumID uuid.UUID, trackNumber int, trackTitle string) error {
	const query = `
		INSERT INTO track_picks (track_pick_id, user_id, album_id, track_number, track_title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, album_id) DO UPDATE
		SET track_number = EXCLUDED.track_number,
		    track_title = EXCLUDED.track_title,
		    updated_at = NOW()
	`
	args := []any{uuid.New(), userID, albumID, trackNumber, trackTitle}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, albumID, trackNumber},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete clears the user's pick for an album.
func (r *TrackPickWriteRepository) Delete(ctx context.Context, userID, albumID uuid.UUID) error {
	const query = `
		DELETE FROM track_picks
		WHERE user_id = $1 AND album_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, albumID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, albumID},
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
