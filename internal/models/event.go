package models

import "time"

// List activity event types published to Kafka
const (
	EventListCreated  = "list_created"
	EventListDeleted  = "list_deleted"
	EventAlbumAdded   = "album_added"
	EventAlbumRemoved = "album_removed"
	EventAlbumsMerged = "albums_merged"
)

// ListEvent is the activity-stream message published on list mutations.
type ListEvent struct {
	EventID    string    `json:"event_id"`            // Unique event id, used as the Kafka key
	Type       string    `json:"type"`                // One of the Event* constants
	UserID     string    `json:"user_id"`             // Acting user
	ListID     string    `json:"list_id,omitempty"`   // Affected list, if any
	AlbumID    string    `json:"album_id,omitempty"`  // Affected album, if any
	OccurredAt time.Time `json:"occurred_at"`         // Event timestamp
}
