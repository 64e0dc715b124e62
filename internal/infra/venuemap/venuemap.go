// Package venuemap maps coordinates on the venue floor plan to named rooms.
package venuemap

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Venue is one named hotspot on the conference floor plan.
type Venue struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Floor    int         `json:"floor"`
	Centroid orb.Point   `json:"centroid"`
	Outline  orb.Polygon `json:"-"`
}

// VenueMap resolves floor-plan coordinates to venues.
type VenueMap struct {
	venues []Venue
}

// New builds the venue map from the static floor plan. Coordinates are in
// local plan units (meters from the building origin), not lat/lng.
func New() *VenueMap {
	return &VenueMap{venues: floorPlan}
}

// Venues returns every mapped venue.
func (m *VenueMap) Venues() []Venue {
	venues := make([]Venue, len(m.venues))
	copy(venues, m.venues)

	return venues
}

// VenueByID looks a venue up by identifier.
func (m *VenueMap) VenueByID(id string) (Venue, bool) {
	for _, v := range m.venues {
		if v.ID == id {
			return v, true
		}
	}

	return Venue{}, false
}

// Locate returns the venue whose outline contains the point.
// The second return value is false when the point lies outside every hotspot.
func (m *VenueMap) Locate(point orb.Point) (Venue, bool) {
	for _, v := range m.venues {
		if planar.PolygonContains(v.Outline, point) {
			return v, true
		}
	}

	return Venue{}, false
}

// floorPlan is the static hotspot table for the conference building.
var floorPlan = []Venue{
	{
		ID:    "grand-hall",
		Name:  "Grand Hall",
		Floor: 1,
		Outline: orb.Polygon{{
			{0, 0}, {40, 0}, {40, 25}, {0, 25}, {0, 0},
		}},
	},
	{
		ID:    "forum",
		Name:  "Forum",
		Floor: 1,
		Outline: orb.Polygon{{
			{45, 0}, {70, 0}, {70, 18}, {45, 18}, {45, 0},
		}},
	},
	{
		ID:    "workshop-a",
		Name:  "Workshop Room A",
		Floor: 2,
		Outline: orb.Polygon{{
			{0, 30}, {18, 30}, {18, 45}, {0, 45}, {0, 30},
		}},
	},
	{
		ID:    "workshop-b",
		Name:  "Workshop Room B",
		Floor: 2,
		Outline: orb.Polygon{{
			{20, 30}, {38, 30}, {38, 45}, {20, 45}, {20, 30},
		}},
	},
	{
		ID:    "open-stage",
		Name:  "Open Stage",
		Floor: 1,
		Outline: orb.Polygon{{
			{45, 22}, {70, 22}, {70, 45}, {45, 45}, {45, 22},
		}},
	},
}

func init() {
	for i := range floorPlan {
		floorPlan[i].Centroid, _ = planar.CentroidArea(floorPlan[i].Outline)
	}
}
