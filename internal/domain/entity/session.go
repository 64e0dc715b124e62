package entity

import "github.com/google/uuid"

// SessionEventType identifies an authentication state transition.
type SessionEventType string

const (
	// SessionSignedIn is published when a magic link completes successfully.
	SessionSignedIn SessionEventType = "signed_in"
	// SessionSignedOut is published when the user signs out.
	SessionSignedOut SessionEventType = "signed_out"
)

// SessionEvent is an authentication state transition broadcast to
// interested components (favorites reconciliation, reminder scheduler).
type SessionEvent struct {
	Type   SessionEventType `json:"type"`
	UserID uuid.UUID        `json:"user_id"`
	Email  string           `json:"email,omitempty"`
}

// SessionTokens carries the JWT pair issued after a completed sign-in.
type SessionTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
