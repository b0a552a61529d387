// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a unique account in the system.
type User struct {
	ID           uuid.UUID `json:"id"`    // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"` // The user's login identifier.
	Name         string    `json:"name"`  // The user's display name.
	PasswordHash string    `json:"-"`     // Bcrypt hash of the user's password.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is a persisted refresh token session for a user.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"` // SHA256 of the refresh token string.
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsActive reports whether the refresh token is usable.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
