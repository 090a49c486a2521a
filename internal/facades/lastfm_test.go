package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/models"
)

func TestLastFMSearchAlbums(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "album.search", r.URL.Query().Get("method"))
		assert.Equal(t, "ok computer", r.URL.Query().Get("album"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		json.NewEncoder(w).Encode(lastFMSearchResponse{
			Results: lastFMSearchResults{
				AlbumMatches: lastFMAlbumMatches{
					Album: []LastFMAlbum{
						{
							Name:   "OK Computer",
							Artist: "Radiohead",
							Images: []LastFMImage{
								{URL: "https://lastfm.example/small.jpg", Size: "small"},
								{URL: "https://lastfm.example/xl.jpg", Size: "extralarge"},
							},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	f := NewLastFMFacadeWithBase(srv.URL, "test-key", srv.Client())

	albums, err := f.SearchAlbums(context.Background(), "ok computer", 20)
	assert.NoError(t, err)
	assert.Len(t, albums, 1)
	assert.Equal(t, models.AlbumDB{
		Artist:   "Radiohead",
		Title:    "OK Computer",
		CoverURL: "https://lastfm.example/xl.jpg",
		Source:   models.SourceLastFM,
	}, albums[0])
}

func TestLastFMSearchAlbumsFallsBackToLastImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(lastFMSearchResponse{
			Results: lastFMSearchResults{
				AlbumMatches: lastFMAlbumMatches{
					Album: []LastFMAlbum{
						{
							Name:   "Kid A",
							Artist: "Radiohead",
							Images: []LastFMImage{
								{URL: "https://lastfm.example/small.jpg", Size: "small"},
								{URL: "https://lastfm.example/large.jpg", Size: "large"},
							},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	f := NewLastFMFacadeWithBase(srv.URL, "test-key", srv.Client())

	albums, err := f.SearchAlbums(context.Background(), "kid a", 20)
	assert.NoError(t, err)
	assert.Len(t, albums, 1)
	assert.Equal(t, "https://lastfm.example/large.jpg", albums[0].CoverURL)
}

func TestLastFMSearchAlbumsNoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(lastFMSearchResponse{})
	}))
	defer srv.Close()

	f := NewLastFMFacadeWithBase(srv.URL, "test-key", srv.Client())

	albums, err := f.SearchAlbums(context.Background(), "zzzzz", 20)
	assert.NoError(t, err)
	assert.Empty(t, albums)
}

func TestLastFMSearchAlbumsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewLastFMFacadeWithBase(srv.URL, "bad-key", srv.Client())

	_, err := f.SearchAlbums(context.Background(), "ok computer", 20)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
