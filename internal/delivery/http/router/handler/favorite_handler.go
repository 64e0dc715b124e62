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

// FavoriteHandler holds dependencies for favorite handlers.
type FavoriteHandler struct {
	uc     usecase.FavoritesUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoritesUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: logger}
}

// List returns the confirmed favorite event ids.
func (h *FavoriteHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Favorites(), "")
}

// Reload replaces the local favorite set with the gateway's authoritative set.
func (h *FavoriteHandler) Reload(c echo.Context) error {
	ids, err := h.uc.LoadFavorites(c.Request().Context(), currentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ids, "Favorites reloaded")
}

// Toggle flips favorite membership for one event.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	favorited, err := h.uc.ToggleFavorite(c.Request().Context(), currentUserID(c), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"event_id":  eventID,
		"favorited": favorited,
	}, "")
}
