package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created through passwordless email sign-in.
type User struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`      // Sign-in email address, unique.
	CreatedAt time.Time `json:"created_at"` // Timestamp of account creation.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// MagicLink is a single-use passwordless sign-in token.
// Only a bcrypt hash of the secret is persisted; the plain secret travels
// in the emailed link and is never stored.
type MagicLink struct {
	ID         uuid.UUID  `json:"id"`          // Link identifier, part of the emailed token.
	Email      string     `json:"email"`       // Address the link was issued for.
	SecretHash string     `json:"-"`           // bcrypt hash of the one-time secret.
	ExpiresAt  time.Time  `json:"expires_at"`  // Hard expiry of the link.
	ConsumedAt *time.Time `json:"consumed_at"` // Set once the link has been used.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of issuance.
}

// Usable reports whether the link can still complete a sign-in at the given time.
func (l *MagicLink) Usable(now time.Time) bool {
	return l.ConsumedAt == nil && now.Before(l.ExpiresAt)
}
