// Spotify Web API client for album search and new releases.
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/
package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	ReleaseDate string          `json:"release_date"`
	TotalTracks int             `json:"total_tracks"`
	Images      []SpotifyImage  `json:"images"`
}

type spotifyPaginatedAlbums struct {
	Items []SpotifyAlbum `json:"items"`
	Total int            `json:"total"`
}

type spotifySearchResponse struct {
	Albums spotifyPaginatedAlbums `json:"albums"`
}

type spotifyNewReleasesResponse struct {
	Albums spotifyPaginatedAlbums `json:"albums"`
}

// SpotifyFacade talks to the Spotify Web API using the client-credentials
// flow. The oauth2 client refreshes the app token transparently.
type SpotifyFacade struct {
	baseURL    string
	httpClient *http.Client
}

// NewSpotifyFacade creates a facade authenticated with the given app credentials.
func NewSpotifyFacade(ctx context.Context, clientID, clientSecret string) *SpotifyFacade {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyTokenURL,
	}

	return &SpotifyFacade{
		baseURL:    spotifyBaseURL,
		httpClient: config.Client(ctx),
	}
}

// NewSpotifyFacadeWithBase is used by tests to point the facade at a stub server.
func NewSpotifyFacadeWithBase(baseURL string, httpClient *http.Client) *SpotifyFacade {
	return &SpotifyFacade{baseURL: baseURL, httpClient: httpClient}
}

func (f *SpotifyFacade) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode spotify response: %w", err)
	}

	return nil
}

// SearchAlbums searches Spotify for albums matching the query.
func (f *SpotifyFacade) SearchAlbums(ctx context.Context, query string, limit int) ([]models.AlbumDB, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "album")
	params.Set("limit", fmt.Sprintf("%d", limit))

	var resp spotifySearchResponse
	if err := f.doRequest(ctx, "/search?"+params.Encode(), &resp); err != nil {
		logger.Log.Errorw("spotify album search failed", "query", query, "error", err)
		return nil, err
	}

	return albumsFromSpotify(resp.Albums.Items), nil
}

// NewReleases fetches the current new-release albums.
func (f *SpotifyFacade) NewReleases(ctx context.Context, limit int) ([]models.AlbumDB, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))

	var resp spotifyNewReleasesResponse
	if err := f.doRequest(ctx, "/browse/new-releases?"+params.Encode(), &resp); err != nil {
		logger.Log.Errorw("spotify new releases fetch failed", "error", err)
		return nil, err
	}

	return albumsFromSpotify(resp.Albums.Items), nil
}

func albumsFromSpotify(items []SpotifyAlbum) []models.AlbumDB {
	albums := make([]models.AlbumDB, 0, len(items))
	for _, item := range items {
		artist := ""
		if len(item.Artists) > 0 {
			artist = item.Artists[0].Name
		}
		cover := ""
		if len(item.Images) > 0 {
			cover = item.Images[0].URL
		}
		albums = append(albums, models.AlbumDB{
			Artist:      artist,
			Title:       item.Name,
			ReleaseDate: item.ReleaseDate,
			CoverURL:    cover,
			SpotifyID:   item.ID,
			Source:      models.SourceSpotify,
		})
	}
	return albums
}
