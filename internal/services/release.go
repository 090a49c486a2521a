package services

import (
	"context"
	"time"

	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

// ReleaseReader defines read operations for stored release batches.
type ReleaseReader interface {
	GetByWeek(ctx context.Context, weekOf time.Time) ([]models.ReleaseDB, error)
}

// ReleaseWriter defines write operations for stored release batches.
type ReleaseWriter interface {
	ReplaceWeek(ctx context.Context, weekOf time.Time, releases []models.ReleaseDB) error
}

// ReleaseCache caches weekly release payloads.
type ReleaseCache interface {
	GetReleases(ctx context.Context, weekOf time.Time) ([]models.ReleaseDB, error)
	SetReleases(ctx context.Context, weekOf time.Time, releases []models.ReleaseDB) error
}

// NewReleasesFetcher fetches current new releases from an upstream catalogue.
type NewReleasesFetcher interface {
	NewReleases(ctx context.Context, limit int) ([]models.AlbumDB, error)
}

// ReleaseService maintains the weekly new-releases table: a background
// refresh pulls from Spotify, reads go cache-first with a DB fallback.
type ReleaseService struct {
	reader  ReleaseReader
	writer  ReleaseWriter
	cache   ReleaseCache
	fetcher NewReleasesFetcher
	limit   int
}

// NewReleaseService creates a new ReleaseService.
func NewReleaseService(reader ReleaseReader, writer ReleaseWriter, cache ReleaseCache, fetcher NewReleasesFetcher, limit int) *ReleaseService {
	return &ReleaseService{
		reader:  reader,
		writer:  writer,
		cache:   cache,
		fetcher: fetcher,
		limit:   limit,
	}
}

// WeekOf truncates t to the Monday of its week, UTC midnight.
func WeekOf(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// Refresh fetches the current new releases and replaces this week's batch.
func (s *ReleaseService) Refresh(ctx context.Context) error {
	albums, err := s.fetcher.NewReleases(ctx, s.limit)
	if err != nil {
		logger.Log.Errorw("failed to fetch new releases", "error", err)
		return err
	}

	weekOf := WeekOf(time.Now())
	releases := make([]models.ReleaseDB, 0, len(albums))
	for _, a := range albums {
		releases = append(releases, models.ReleaseDB{
			Artist:      a.Artist,
			Title:       a.Title,
			ReleaseDate: a.ReleaseDate,
			CoverURL:    a.CoverURL,
			SpotifyID:   a.SpotifyID,
			WeekOf:      weekOf,
		})
	}

	if err := s.writer.ReplaceWeek(ctx, weekOf, releases); err != nil {
		logger.Log.Errorw("failed to store weekly releases", "week_of", weekOf, "error", err)
		return err
	}

	if err := s.cache.SetReleases(ctx, weekOf, releases); err != nil {
		logger.Log.Warnw("failed to prime release cache", "week_of", weekOf, "error", err)
	}

	logger.Log.Infow("weekly releases refreshed", "week_of", weekOf, "count", len(releases))
	return nil
}

// Current returns this week's releases, cache-first with a DB fallback.
func (s *ReleaseService) Current(ctx context.Context) ([]models.ReleaseDB, error) {
	weekOf := WeekOf(time.Now())

	cached, err := s.cache.GetReleases(ctx, weekOf)
	if err != nil {
		logger.Log.Warnw("release cache read failed", "week_of", weekOf, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	releases, err := s.reader.GetByWeek(ctx, weekOf)
	if err != nil {
		return nil, err
	}

	if len(releases) > 0 {
		if err := s.cache.SetReleases(ctx, weekOf, releases); err != nil {
			logger.Log.Warnw("failed to re-prime release cache", "week_of", weekOf, "error", err)
		}
	}

	return releases, nil
}

// RunRefreshLoop refreshes immediately and then on every tick until the
// context is cancelled. Meant to run in its own goroutine.
func (s *ReleaseService) RunRefreshLoop(ctx context.Context, interval time.Duration) {
	if err := s.Refresh(ctx); err != nil {
		logger.Log.Errorw("initial release refresh failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				logger.Log.Errorw("scheduled release refresh failed", "error", err)
			}
		}
	}
}
