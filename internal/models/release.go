package models

import (
	"time"

	"github.com/google/uuid"
)

// ReleaseDB represents a weekly new-release row fetched from Spotify
type ReleaseDB struct {
	ReleaseID   uuid.UUID `json:"release_id" db:"release_id"`     // Primary key
	Artist      string    `json:"artist" db:"artist"`             // Artist name
	Title       string    `json:"title" db:"title"`               // Album title
	ReleaseDate string    `json:"release_date" db:"release_date"` // Release date
	CoverURL    string    `json:"cover_url" db:"cover_url"`       // Cover art URL
	SpotifyID   string    `json:"spotify_id" db:"spotify_id"`     // Spotify album id
	WeekOf      time.Time `json:"week_of" db:"week_of"`           // Monday of the batch's week
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Fetch timestamp
}
