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

type ListReadRepository struct {
	db *sqlx.DB
}

func NewListReadRepository(db *sqlx.DB) *ListReadRepository {
	return &ListReadRepository{db: db}
}

// GetByUserID returns all lists owned by a user, newest first.
func (r *ListReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ListDB, error) {
	const query = `
		SELECT list_id, user_id, name, description, is_public, created_at, updated_at
		FROM lists
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var lists []models.ListDB
	err := r.db.SelectContext(ctx, &lists, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(lists),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return lists, nil
}

// GetByID returns a list by primary key, or nil when not found.
func (r *ListReadRepository) GetByID(ctx context.Context, listID uuid.UUID) (*models.ListDB, error) {
	const query = `
		SELECT list_id, user_id, name, description, is_public, created_at, updated_at
		FROM lists
		WHERE list_id = $1
	`

	var list models.ListDB
	err := r.db.GetContext(ctx, &list, query, listID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// GetItems returns a list's items joined with album metadata, in position order.
func (r *ListReadRepository) GetItems(ctx context.Context, listID uuid.UUID) ([]models.ListItemWithAlbum, error) {
	const query = `
		SELECT li.list_item_id, li.list_id, li.album_id, li.position, li.note,
		       li.created_at, li.updated_at,
		       a.artist, a.title, a.release_date, a.cover_url
		FROM list_items li
		JOIN albums a ON a.album_id = li.album_id
		WHERE li.list_id = $1
		ORDER BY li.position
	`

	var items []models.ListItemWithAlbum
	err := r.db.SelectContext(ctx, &items, query, listID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listID},
		"result_count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

type ListWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListWriteRepository {
	return &ListWriteRepository{db: db, txGetter: txGetter}
}

func (r *ListWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save creates a new list and returns its id.
func (r *ListWriteRepository) Save(ctx context.Context, userID uuid.UUID, name, description string, isPublic bool) (uuid.UUID, error) {
	const query = `
		INSERT INTO lists (list_id, user_id, name, description, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING list_id
	`
	args := []any{uuid.New(), userID, name, description, isPublic}

	var listID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &listID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name},
		"result", listID,
		"error", err,
	)

	return listID, err
}

// Update renames or republishes an existing list.
func (r *ListWriteRepository) Update(ctx context.Context, listID uuid.UUID, name, description string, isPublic bool) error {
	const query = `
		UPDATE lists
		SET name = $2, description = $3, is_public = $4, updated_at = NOW()
		WHERE list_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, listID, name, description, isPublic)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listID, name},
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

// Delete removes a list; items cascade.
func (r *ListWriteRepository) Delete(ctx context.Context, listID uuid.UUID) error {
	const query = `
		DELETE FROM lists
		WHERE list_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, listID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listID},
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

// AddItem appends an album at the end of the list. Re-adding an album
// already in the list only refreshes its note.
func (r *ListWriteRepository) AddItem(ctx context.Context, listID, albumID uuid.UUID, note string) (*models.ListItemDB, error) {
	const query = `
		INSERT INTO list_items (list_item_id, list_id, album_id, position, note, created_at, updated_at)
		VALUES ($1, $2, $3,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM list_items WHERE list_id = $2),
			$4, NOW(), NOW())
		ON CONFLICT (list_id, album_id) DO UPDATE
		SET note = EXCLUDED.note, updated_at = NOW()
		RETURNING list_item_id, list_id, album_id, position, note, created_at, updated_at
	`
	args := []any{uuid.New(), listID, albumID, note}

	var item models.ListItemDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &item, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listID, albumID},
		"result", item.Position,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &item, nil
}

// RemoveItem deletes an item and closes the position gap it leaves.
func (r *ListWriteRepository) RemoveItem(ctx context.Context, listID, listItemID uuid.UUID) (uuid.UUID, error) {
	e := r.executor(ctx)

	const deleteQuery = `
		DELETE FROM list_items
		WHERE list_id = $1 AND list_item_id = $2
		RETURNING album_id, position
	`

	var removed struct {
		AlbumID  uuid.UUID `db:"album_id"`
		Position int       `db:"position"`
	}
	err := sqlx.GetContext(ctx, e, &removed, deleteQuery, listID, listItemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(deleteQuery), " "),
		"args", []any{listID, listItemID},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}

	const shiftQuery = `
		UPDATE list_items
		SET position = position - 1, updated_at = NOW()
		WHERE list_id = $1 AND position > $2
	`
	if _, err := e.ExecContext(ctx, shiftQuery, listID, removed.Position); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(shiftQuery), " "),
			"args", []any{listID, removed.Position},
			"error", err,
		)
		return uuid.Nil, err
	}

	return removed.AlbumID, nil
}

// Reorder renumbers the list's items to match the given id order.
// Returns the number of items renumbered.
func (r *ListWriteRepository) Reorder(ctx context.Context, listID uuid.UUID, orderedItemIDs []uuid.UUID) (int64, error) {
	e := r.executor(ctx)

	const query = `
		UPDATE list_items
		SET position = $3, updated_at = NOW()
		WHERE list_id = $1 AND list_item_id = $2
	`

	var renumbered int64
	for i, itemID := range orderedItemIDs {
		res, err := e.ExecContext(ctx, query, listID, itemID, i+1)
		if err != nil {
			logger.Log.Infow(
				"query", strings.Join(strings.Fields(query), " "),
				"args", []any{listID, itemID, i + 1},
				"error", err,
			)
			return renumbered, err
		}
		if res != nil {
			n, _ := res.RowsAffected()
			renumbered += n
		}
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listID, len(orderedItemIDs)},
		"result", renumbered,
		"error", nil,
	)

	return renumbered, nil
}

// CountItems returns the number of items in a list.
func (r *ListWriteRepository) CountItems(ctx context.Context, listID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM list_items
		WHERE list_id = $1
	`

	var count int
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, listID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listID},
		"result", count,
		"error", err,
	)

	return count, err
}
