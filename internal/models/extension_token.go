package models

import (
	"time"

	"github.com/google/uuid"
)

// ExtensionTokenDB represents a bearer credential issued to the browser
// extension. Only the SHA-256 hash of the token is stored.
type ExtensionTokenDB struct {
	TokenID    uuid.UUID  `json:"token_id" db:"token_id"`         // Primary key
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`           // Token owner
	TokenHash  string     `json:"-" db:"token_hash"`              // SHA-256 hex of the bearer token
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`     // Hard expiry
	RevokedAt  *time.Time `json:"revoked_at" db:"revoked_at"`     // Set when revoked, NULL otherwise
	LastUsedAt *time.Time `json:"last_used_at" db:"last_used_at"` // Updated on successful validation
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`     // Issuance timestamp
}
