package entity

// Track is static reference data describing a schedule track.
// Tracks are compiled into the client and are not persisted remotely.
type Track struct {
	ID    string `json:"id"`    // Track identifier referenced by Event.Track.
	Name  string `json:"name"`  // Display name.
	Style string `json:"style"` // Display style hint for the UI (badge color class).
}

// Tracks is the static track table for the conference.
var Tracks = []Track{
	{ID: "main", Name: "Main programme", Style: "indigo"},
	{ID: "talks", Name: "Talks", Style: "emerald"},
	{ID: "panel", Name: "Panel discussions", Style: "orange"},
	{ID: "open", Name: "Open sessions", Style: "pink"},
	{ID: "break", Name: "Breaks", Style: "green"},
	{ID: "workshop", Name: "Workshops", Style: "purple"},
	{ID: "excursion", Name: "Excursions", Style: "yellow"},
	{ID: "nextgen", Name: "NextGen", Style: "blue"},
}

// TrackByID looks up a track in the static table.
// The second return value is false when the identifier is unrecognized;
// callers must treat such events as belonging to no known track rather
// than failing.
func TrackByID(id string) (Track, bool) {
	for _, t := range Tracks {
		if t.ID == id {
			return t, true
		}
	}

	return Track{}, false
}
