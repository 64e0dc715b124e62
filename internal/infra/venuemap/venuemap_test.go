package venuemap

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueMap_Locate(t *testing.T) {
	m := New()

	tests := []struct {
		name    string
		point   orb.Point
		venueID string
		found   bool
	}{
		{"inside grand hall", orb.Point{10, 10}, "grand-hall", true},
		{"inside forum", orb.Point{50, 5}, "forum", true},
		{"inside workshop b", orb.Point{30, 40}, "workshop-b", true},
		{"corridor between rooms", orb.Point{42, 10}, "", false},
		{"outside the building", orb.Point{-5, -5}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venue, ok := m.Locate(tt.point)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.venueID, venue.ID)
			}
		})
	}
}

func TestVenueMap_VenueByID(t *testing.T) {
	m := New()

	venue, ok := m.VenueByID("grand-hall")
	require.True(t, ok)
	assert.Equal(t, "Grand Hall", venue.Name)
	assert.Equal(t, 1, venue.Floor)

	_, ok = m.VenueByID("no-such-room")
	assert.False(t, ok)
}

func TestVenueMap_CentroidsInsideOutlines(t *testing.T) {
	m := New()

	for _, venue := range m.Venues() {
		located, ok := m.Locate(venue.Centroid)
		require.True(t, ok, "centroid of %s outside every outline", venue.ID)
		assert.Equal(t, venue.ID, located.ID)
	}
}
