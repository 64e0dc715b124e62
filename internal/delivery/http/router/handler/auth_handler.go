// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"companion/internal/delivery/http/response"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for passwordless authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// BeginSignInInput is the request body for requesting a magic link.
type BeginSignInInput struct {
	Email string `json:"email" validate:"required,email"`
}

// BeginSignIn handles the magic link request.
func (h *AuthHandler) BeginSignIn(c echo.Context) error {
	var input BeginSignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A valid email address is required")
	}

	if err := h.uc.BeginSignIn(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Sign-in link sent")
}

// VerifySignIn consumes the emailed magic link token.
func (h *AuthHandler) VerifySignIn(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "token query parameter is required")
	}

	tokens, user, err := h.uc.CompleteSignIn(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"tokens": tokens,
		"user":   user,
	}, "Sign-in completed")
}

// SignOut publishes the signed-out transition for the authenticated user.
func (h *AuthHandler) SignOut(c echo.Context) error {
	userID := currentUserID(c)

	if err := h.uc.SignOut(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

// currentUserID extracts the authenticated user ID set by the auth middleware.
// Returns uuid.Nil for anonymous requests.
func currentUserID(c echo.Context) uuid.UUID {
	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		return userID
	}

	return uuid.Nil
}
