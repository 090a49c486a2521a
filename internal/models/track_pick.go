package models

import (
	"time"

	"github.com/google/uuid"
)

// TrackPickDB represents a user's highlighted track for an album.
// At most one pick per (user_id, album_id).
type TrackPickDB struct {
	TrackPickID uuid.UUID `json:"track_pick_id" db:"track_pick_id"` // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`             // Picking user
	AlbumID     uuid.UUID `json:"album_id" db:"album_id"`           // Album the pick belongs to
	TrackNumber int       `json:"track_number" db:"track_number"`   // 1-based track number
	TrackTitle  string    `json:"track_title" db:"track_title"`     // Track title
	CreatedAt   time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
