package handler

import (
	"log/slog"
	"net/http"

	"companion/internal/delivery/http/response"
	"companion/internal/domain/entity"
	"companion/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler holds dependencies for the locally stored display profile.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// Get returns the stored profile, zero-valued when none was saved yet.
func (h *ProfileHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Profile(), "")
}

// SaveProfileInput is the request body for saving the display profile.
type SaveProfileInput struct {
	Name  string `json:"name" validate:"max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Save persists the display profile locally. Saving never fails; a broken
// local store only costs the profile on next start.
func (h *ProfileHandler) Save(c echo.Context) error {
	var input SaveProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile fields")
	}

	profile := entity.Profile{Name: input.Name, Email: input.Email}
	h.uc.SaveProfile(profile)

	return response.Success(c, http.StatusOK, profile, "Profile saved")
}
