package models

import (
	"time"

	"github.com/google/uuid"
)

// Album metadata sources
const (
	SourceSpotify   = "spotify"
	SourceLastFM    = "lastfm"
	SourceExtension = "extension"
	SourceManual    = "manual"
)

// AlbumDB represents an album row in the database
type AlbumDB struct {
	AlbumID     uuid.UUID `json:"album_id" db:"album_id"`         // Primary key
	Artist      string    `json:"artist" db:"artist"`             // Artist name as submitted
	Title       string    `json:"title" db:"title"`               // Album title as submitted
	ReleaseDate string    `json:"release_date" db:"release_date"` // Release date, YYYY-MM-DD or partial
	CoverURL    string    `json:"cover_url" db:"cover_url"`       // Cover art URL
	SpotifyID   string    `json:"spotify_id" db:"spotify_id"`     // Spotify album id, empty if unknown
	Source      string    `json:"source" db:"source"`             // Where the metadata came from
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
