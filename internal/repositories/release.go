package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

type ReleaseReadRepository struct {
	db *sqlx.DB
}

func NewReleaseReadRepository(db *sqlx.DB) *ReleaseReadRepository {
	return &ReleaseReadRepository{db: db}
}

// GetByWeek returns the stored release batch for a week.
func (r *ReleaseReadRepository) GetByWeek(ctx context.Context, weekOf time.Time) ([]models.ReleaseDB, error) {
	const query = `
		SELECT release_id, artist, title, release_date, cover_url, spotify_id, week_of, created_at
		FROM weekly_new_releases
		WHERE week_of = $1
		ORDER BY artist, title
	`

	var releases []models.ReleaseDB
	err := r.db.SelectContext(ctx, &releases, query, weekOf)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{weekOf},
		"result_count", len(releases),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return releases, nil
}

type ReleaseWriteRepository struct {
	db *sqlx.DB
}

func NewReleaseWriteRepository(db *sqlx.DB) *ReleaseWriteRepository {
	return &ReleaseWriteRepository{db: db}
}

// ReplaceWeek atomically swaps the release batch for a week.
func (r *ReleaseWriteRepository) ReplaceWeek(ctx context.Context, weekOf time.Time, releases []models.ReleaseDB) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const deleteQuery = `
		DELETE FROM weekly_new_releases
		WHERE week_of = $1
	`
	if _, err := tx.ExecContext(ctx, deleteQuery, weekOf); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(deleteQuery), " "),
			"args", []any{weekOf},
			"error", err,
		)
		return err
	}

	const insertQuery = `
		INSERT INTO weekly_new_releases (release_id, artist, title, release_date, cover_url, spotify_id, week_of, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (week_of, spotify_id) DO NOTHING
	`
	for _, rel := range releases {
		if _, err := tx.ExecContext(ctx, insertQuery,
			uuid.New(), rel.Artist, rel.Title, rel.ReleaseDate, rel.CoverURL, rel.SpotifyID, weekOf,
		); err != nil {
			logger.Log.Infow(
				"query", strings.Join(strings.Fields(insertQuery), " "),
				"args", []any{rel.Artist, rel.Title, weekOf},
				"error", err,
			)
			return err
		}
	}

	err = tx.Commit()

	logger.Log.Infow(
		"query", "replace weekly_new_releases batch",
		"args", []any{weekOf},
		"result", len(releases),
		"error", err,
	)

	return err
}
