package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

// SearchCacheRepository caches album search results and weekly release
// payloads in Redis.
type SearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached entries
}

// NewSearchCacheRepository creates a new repository instance with the given TTL.
func NewSearchCacheRepository(client *redis.Client, expiration time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func searchKey(query string) string {
	return fmt.Sprintf("album_search:%s", strings.ToLower(strings.TrimSpace(query)))
}

func releasesKey(weekOf time.Time) string {
	return fmt.Sprintf("weekly_releases:%s", weekOf.Format("2006-01-02"))
}

// GetSearch fetches cached search results. A cache miss returns nil, nil.
func (r *SearchCacheRepository) GetSearch(ctx context.Context, query string) ([]models.AlbumDB, error) {
	key := searchKey(query)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var albums []models.AlbumDB
	if err := json.Unmarshal([]byte(val), &albums); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result_count", len(albums),
		"error", nil,
	)

	return albums, nil
}

// SetSearch caches search results with the repository TTL.
func (r *SearchCacheRepository) SetSearch(ctx context.Context, query string, albums []models.AlbumDB) error {
	key := searchKey(query)

	data, err := json.Marshal(albums)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// GetReleases fetches the cached release batch for a week. Miss returns nil, nil.
func (r *SearchCacheRepository) GetReleases(ctx context.Context, weekOf time.Time) ([]models.ReleaseDB, error) {
	key := releasesKey(weekOf)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var releases []models.ReleaseDB
	if err := json.Unmarshal([]byte(val), &releases); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result_count", len(releases),
		"error", nil,
	)

	return releases, nil
}

// SetReleases caches a release batch with the repository TTL.
func (r *SearchCacheRepository) SetReleases(ctx context.Context, weekOf time.Time, releases []models.ReleaseDB) error {
	key := releasesKey(weekOf)

	data, err := json.Marshal(releases)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
