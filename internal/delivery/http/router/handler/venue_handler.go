package handler

import (
	"net/http"
	"strconv"

	"companion/internal/delivery/http/response"
	"companion/internal/infra/venuemap"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
)

// VenueHandler exposes the static floor plan and point-to-room lookup.
type VenueHandler struct {
	venues *venuemap.VenueMap
}

// NewVenueHandler is the constructor for VenueHandler, injected by Fx.
func NewVenueHandler(venues *venuemap.VenueMap) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// List returns every mapped venue.
func (h *VenueHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.venues.Venues(), "")
}

// Locate resolves floor-plan coordinates to the containing venue.
func (h *VenueHandler) Locate(c echo.Context) error {
	x, errX := strconv.ParseFloat(c.QueryParam("x"), 64)
	y, errY := strconv.ParseFloat(c.QueryParam("y"), 64)
	if errX != nil || errY != nil {
		return response.BadRequest(c, "INVALID_INPUT", "x and y query parameters must be numbers")
	}

	venue, ok := h.venues.Locate(orb.Point{x, y})
	if !ok {
		return response.NotFound(c, "VENUE_NOT_FOUND", "No venue at the given coordinates")
	}

	return response.Success(c, http.StatusOK, venue, "")
}
