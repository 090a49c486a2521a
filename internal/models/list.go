package models

import (
	"time"

	"github.com/google/uuid"
)

// ListDB represents a list row in the database
type ListDB struct {
	ListID      uuid.UUID `json:"list_id" db:"list_id"`           // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owner
	Name        string    `json:"name" db:"name"`                 // List name
	Description string    `json:"description" db:"description"`   // Optional description
	IsPublic    bool      `json:"is_public" db:"is_public"`       // Visible to other users
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// ListItemDB represents an album's membership in a list
type ListItemDB struct {
	ListItemID uuid.UUID `json:"list_item_id" db:"list_item_id"` // Primary key
	ListID     uuid.UUID `json:"list_id" db:"list_id"`           // Containing list
	AlbumID    uuid.UUID `json:"album_id" db:"album_id"`         // Referenced album
	Position   int       `json:"position" db:"position"`         // 1-based position, contiguous per list
	Note       string    `json:"note" db:"note"`                 // Optional user note
	CreatedAt  time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// ListItemWithAlbum joins a list item with its album metadata for responses
type ListItemWithAlbum struct {
	ListItemDB
	Artist      string `json:"artist" db:"artist"`
	Title       string `json:"title" db:"title"`
	ReleaseDate string `json:"release_date" db:"release_date"`
	CoverURL    string `json:"cover_url" db:"cover_url"`
}
