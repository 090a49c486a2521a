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

type AlbumReadRepository struct {
	db *sqlx.DB
}

func NewAlbumReadRepository(db *sqlx.DB) *AlbumReadRepository {
	return &AlbumReadRepository{db: db}
}

// GetByID returns an album by primary key, or nil when not found.
func (r *AlbumReadRepository) GetByID(ctx context.Context, albumID uuid.UUID) (*models.AlbumDB, error) {
	const query = `
		SELECT album_id, artist, title, release_date, cover_url, spotify_id, source, created_at, updated_at
		FROM albums
		WHERE album_id = $1
	`

	var album models.AlbumDB
	err := r.db.GetContext(ctx, &album, query, albumID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{albumID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &album, nil
}

// GetAll returns every album. Used by the duplicate scanner.
func (r *AlbumReadRepository) GetAll(ctx context.Context) ([]models.AlbumDB, error) {
	const query = `
		SELECT album_id, artist, title, release_date, cover_url, spotify_id, source, created_at, updated_at
		FROM albums
		ORDER BY artist, title
	`

	var albums []models.AlbumDB
	err := r.db.SelectContext(ctx, &albums, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(albums),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return albums, nil
}

type AlbumWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAlbumWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AlbumWriteRepository {
	return &AlbumWriteRepository{db: db, txGetter: txGetter}
}

func (r *AlbumWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save performs a get-or-create keyed on case-folded (artist, title).
// Existing rows keep their metadata unless the incoming row fills a blank.
func (r *AlbumWriteRepository) Save(ctx context.Context, album models.AlbumDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO albums (album_id, artist, title, release_date, cover_url, spotify_id, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (LOWER(artist), LOWER(title)) DO UPDATE
		SET release_date = CASE WHEN albums.release_date = '' THEN EXCLUDED.release_date ELSE albums.release_date END,
		    cover_url = CASE WHEN albums.cover_url = '' THEN EXCLUDED.cover_url ELSE albums.cover_url END,
		    spotify_id = CASE WHEN albums.spotify_id = '' THEN EXCLUDED.spotify_id ELSE albums.spotify_id END,
		    updated_at = NOW()
		RETURNING album_id
	`
	args := []any{uuid.New(), album.Artist, album.Title, album.ReleaseDate, album.CoverURL, album.SpotifyID, album.Source}

	var albumID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &albumID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{album.Artist, album.Title, album.Source},
		"result", albumID,
		"error", err,
	)

	return albumID, err
}

// RepointListItems moves list memberships from the duplicate albums to the
// canonical one. Memberships that would collide with an existing canonical
// membership in the same list are dropped first.
func (r *AlbumWriteRepository) RepointListItems(ctx context.Context, canonicalID uuid.UUID, duplicateIDs []uuid.UUID) error {
	e := r.executor(ctx)

	const dropQuery = `
		DELETE FROM list_items li
		USING list_items canon
		WHERE li.album_id = ANY($2)
		  AND canon.list_id = li.list_id
		  AND canon.album_id = $1
	`
	if _, err := e.ExecContext(ctx, dropQuery, canonicalID, duplicateIDs); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(dropQuery), " "),
			"args", []any{canonicalID, duplicateIDs},
			"error", err,
		)
		return err
	}

	const updateQuery = `
		UPDATE list_items
		SET album_id = $1, updated_at = NOW()
		WHERE album_id = ANY($2)
	`
	res, err := e.ExecContext(ctx, updateQuery, canonicalID, duplicateIDs)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(updateQuery), " "),
		"args", []any{canonicalID, duplicateIDs},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// RepointTrackPicks moves track picks from duplicate albums to the canonical
// one, keeping the user's existing canonical pick when both exist.
func (r *AlbumWriteRepository) RepointTrackPicks(ctx context.Context, canonicalID uuid.UUID, duplicateIDs []uuid.UUID) error {
	e := r.executor(ctx)

	const dropQuery = `
		DELETE FROM track_picks tp
		USING track_picks canon
		WHERE tp.album_id = ANY($2)
		  AND canon.user_id = tp.user_id
		  AND canon.album_id = $1
	`
	if _, err := e.ExecContext(ctx, dropQuery, canonicalID, duplicateIDs); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(dropQuery), " "),
			"args", []any{canonicalID, duplicateIDs},
			"error", err,
		)
		return err
	}

	const updateQuery = `
		UPDATE track_picks
		SET album_id = $1, updated_at = NOW()
		WHERE album_id = ANY($2)
	`
	res, err := e.ExecContext(ctx, updateQuery, canonicalID, duplicateIDs)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(updateQuery), " "),
		"args", []any{canonicalID, duplicateIDs},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the given albums. Used after repointing during a merge.
func (r *AlbumWriteRepository) Delete(ctx context.Context, albumIDs []uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM albums
		WHERE album_id = ANY($1)
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, albumIDs)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{albumIDs},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
