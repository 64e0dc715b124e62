package entity

// Speaker is static reference data for the speaker directory.
// Speakers are compiled into the client; making them gateway-backed is a
// known follow-up but out of scope for now.
type Speaker struct {
	ID      string            `json:"id"`                // Speaker identifier referenced by Event.SpeakerIDs.
	Name    string            `json:"name"`              // Full display name.
	Title   string            `json:"title"`             // Role or affiliation line.
	Bio     string            `json:"bio"`               // Short biography, may contain newlines.
	Socials map[string]string `json:"socials,omitempty"` // Optional social links keyed by platform.
}

// Speakers is the static speaker directory for the conference.
var Speakers = []Speaker{
	{
		ID:    "spk1",
		Name:  "B. Erdene",
		Title: "Founder and editor-in-chief, economics journalist",
		Bio:   "Twenty years covering economics and business, editor-in-chief since 2011.",
		Socials: map[string]string{
			"linkedin": "https://www.linkedin.com",
			"x":        "https://x.com",
		},
	},
	{
		ID:    "spk2",
		Name:  "N. Batbold",
		Title: "Historian and economist, policy programme initiator",
		Bio:   "UN goodwill ambassador; leads a nationwide herder movement against desertification.",
		Socials: map[string]string{
			"website": "https://example.com",
		},
	},
	{
		ID:    "spk3",
		Name:  "Kh. Khaliun",
		Title: "Founder, Academy of Intellectual Sports",
		Bio:   "Founder of the national Academy of Intellectual Sports, state honored coach.",
	},
	{
		ID:    "spk4",
		Name:  "Yo. Otgonbayar",
		Title: "Former minister and ambassador",
		Bio:   "Career diplomat, former minister of education, culture and science, former ambassador.",
	},
	{
		ID:    "spk5",
		Name:  "S. Oyun-Erdene",
		Title: "Head of the youth committee",
		Bio:   "Head of the student and youth committee of the organizing NGO.",
	},
}

// SpeakerByID looks up a speaker in the static directory.
func SpeakerByID(id string) (Speaker, bool) {
	for _, s := range Speakers {
		if s.ID == id {
			return s, true
		}
	}

	return Speaker{}, false
}
