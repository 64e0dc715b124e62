// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthUsecase defines the passwordless authentication use cases.
type AuthUsecase interface {
	// BeginSignIn issues a magic link for the given email and mails it out.
	// The account is created on first completed sign-in, not here.
	BeginSignIn(ctx context.Context, email string) error

	// CompleteSignIn consumes a magic link token and returns the session
	// token pair. Publishes a signed-in session event on success.
	CompleteSignIn(ctx context.Context, token string) (*entity.SessionTokens, *entity.User, error)

	// SignOut publishes a signed-out session event for the user.
	SignOut(ctx context.Context, userID uuid.UUID) error
}
