package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

// ErrSearchQueryEmpty is returned for blank search queries.
var ErrSearchQueryEmpty = errors.New("search query must not be empty")

// AlbumSearcher searches an upstream catalogue for albums.
type AlbumSearcher interface {
	SearchAlbums(ctx context.Context, query string, limit int) ([]models.AlbumDB, error)
}

// SearchCache caches album search results.
type SearchCache interface {
	GetSearch(ctx context.Context, query string) ([]models.AlbumDB, error)
	SetSearch(ctx context.Context, query string, albums []models.AlbumDB) error
}

// SearchService answers album searches cache-first, then Spotify, falling
// back to Last.fm when Spotify errors.
type SearchService struct {
	cache    SearchCache
	spotify  AlbumSearcher
	lastfm   AlbumSearcher
	limit    int
}

// NewSearchService creates a new SearchService.
func NewSearchService(cache SearchCache, spotify, lastfm AlbumSearcher, limit int) *SearchService {
	return &SearchService{
		cache:   cache,
		spotify: spotify,
		lastfm:  lastfm,
		limit:   limit,
	}
}

// Search returns albums matching the query.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.AlbumDB, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrSearchQueryEmpty
	}

	cached, err := s.cache.GetSearch(ctx, query)
	if err != nil {
		logger.Log.Warnw("search cache read failed", "query", query, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	albums, err := s.spotify.SearchAlbums(ctx, query, s.limit)
	if err != nil {
		logger.Log.Warnw("spotify search failed, falling back to lastfm", "query", query, "error", err)
		albums, err = s.lastfm.SearchAlbums(ctx, query, s.limit)
		if err != nil {
			return nil, err
		}
	}

	if err := s.cache.SetSearch(ctx, query, albums); err != nil {
		logger.Log.Warnw("failed to cache search results", "query", query, "error", err)
	}

	return albums, nil
}
