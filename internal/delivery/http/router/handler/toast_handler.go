package handler

import (
	"net/http"

	"companion/internal/delivery/http/response"
	"companion/internal/infra/notification"

	"github.com/labstack/echo/v4"
)

// ToastHandler exposes the in-app toast queue. Clients poll it and render
// whatever is still alive; expiry happens server-side.
type ToastHandler struct {
	hub *notification.ToastHub
}

// NewToastHandler is the constructor for ToastHandler, injected by Fx.
func NewToastHandler(hub *notification.ToastHub) *ToastHandler {
	return &ToastHandler{hub: hub}
}

// List returns the toasts that have not expired yet.
func (h *ToastHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.hub.Active(), "")
}
