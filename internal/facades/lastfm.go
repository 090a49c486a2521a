// Last.fm API client, read-only album metadata.
//
// Response types based on https://www.last.fm/api/show/album.search
package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

const lastFMBaseURL = "https://ws.audioscrobbler.com/2.0/"

// LastFMImage represents an image entry in a Last.fm response.
type LastFMImage struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

// LastFMAlbum represents an album match from album.search.
type LastFMAlbum struct {
	Name   string        `json:"name"`
	Artist string        `json:"artist"`
	URL    string        `json:"url"`
	Images []LastFMImage `json:"image"`
}

type lastFMAlbumMatches struct {
	Album []LastFMAlbum `json:"album"`
}

type lastFMSearchResults struct {
	AlbumMatches lastFMAlbumMatches `json:"albummatches"`
}

type lastFMSearchResponse struct {
	Results lastFMSearchResults `json:"results"`
}

// LastFMFacade talks to the Last.fm REST API with an API key.
type LastFMFacade struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewLastFMFacade creates a facade with the given API key.
func NewLastFMFacade(apiKey string) *LastFMFacade {
	return &LastFMFacade{
		baseURL:    lastFMBaseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// NewLastFMFacadeWithBase is used by tests to point the facade at a stub server.
func NewLastFMFacadeWithBase(baseURL, apiKey string, httpClient *http.Client) *LastFMFacade {
	return &LastFMFacade{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

// SearchAlbums searches Last.fm for albums matching the query.
func (f *LastFMFacade) SearchAlbums(ctx context.Context, query string, limit int) ([]models.AlbumDB, error) {
	params := url.Values{}
	params.Set("method", "album.search")
	params.Set("album", query)
	params.Set("api_key", f.apiKey)
	params.Set("format", "json")
	params.Set("limit", fmt.Sprintf("%d", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("lastfm album search failed", "query", query, "error", err)
		return nil, fmt.Errorf("lastfm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lastfm API returned status %d", resp.StatusCode)
	}

	var searchResp lastFMSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode lastfm response: %w", err)
	}

	matches := searchResp.Results.AlbumMatches.Album
	albums := make([]models.AlbumDB, 0, len(matches))
	for _, m := range matches {
		cover := ""
		for _, img := range m.Images {
			if img.Size == "extralarge" && img.URL != "" {
				cover = img.URL
				break
			}
		}
		if cover == "" && len(m.Images) > 0 {
			cover = m.Images[len(m.Images)-1].URL
		}
		albums = append(albums, models.AlbumDB{
			Artist:   m.Artist,
			Title:    m.Name,
			CoverURL: cover,
			Source:   models.SourceLastFM,
		})
	}

	return albums, nil
}
