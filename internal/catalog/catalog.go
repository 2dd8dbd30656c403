// Package catalog serves the static profile records shown by the web app.
// The data is compile-time constant; there is no store behind it.
package catalog

// Theme is the per-profile color palette consumed by the front end.
type Theme struct {
	Accent     string `json:"accent"`
	AccentRGB  string `json:"accentRGB"`
	BgStart    string `json:"bgStart"`
	BgEnd      string `json:"bgEnd"`
	SurfaceRGB string `json:"surfaceRGB"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	BtnBg      string `json:"btnBg"`
	BtnText    string `json:"btnText"`
	BtnBorder  string `json:"btnBorder"`
	AccentSoft string `json:"accentSoft"`
}

// Profile is a presentation record for the carousel and detail pages. It is
// unrelated to the quota profile keyed by principal id.
type Profile struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	City            string   `json:"city"`
	ImageURL        string   `json:"imageUrl"`
	Interests       []string `json:"interests"`
	Bio             string   `json:"bio"`
	Passions        []string `json:"passions"`
	Values          []string `json:"values"`
	Gallery         []string `json:"gallery"`
	Status          string   `json:"status"`
	Availability    string   `json:"availability"`
	PersonalityLine string   `json:"personalityLine"`
	Verified        bool     `json:"verified"`
	ResponseTime    string   `json:"responseTime"`
	Theme           Theme    `json:"theme"`
}

// All returns every catalog profile in display order.
func All() []Profile {
	return profiles
}

// ByID returns the profile with the given id, or false when absent.
func ByID(id int) (Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

var profiles = []Profile{
	{
		ID:              1,
		Name:            "Elara",
		Age:             28,
		City:            "Paris",
		ImageURL:        "https://picsum.photos/seed/woman1/500/700",
		Interests:       []string{"Art", "Philosophy", "Jazz", "Sailing"},
		Bio:             "A connoisseur of moments, finding poetry in the mundane. My world is painted in strokes of curiosity and wonder. I believe the best conversations happen over a glass of wine, under a sky full of stars. Looking for a connection that feels like a classic novel – timeless and deeply moving.",
		Passions:        []string{"Oil Painting", "Classic French Cinema", "Urban Exploration"},
		Values:          []string{"Authenticity", "Intellectual Curiosity", "Kindness"},
		Gallery:         []string{"https://picsum.photos/seed/gal1/600/400", "https://picsum.photos/seed/gal2/600/400", "https://picsum.photos/seed/gal3/600/400", "https://picsum.photos/seed/gal4/600/400"},
		Status:          "online",
		Availability:    "Available for chat",
		PersonalityLine: "Soft-spoken. Curious. Always present when you need someone real.",
		Verified:        true,
		ResponseTime:    "2-5 minutes",
		Theme:           Theme{Accent: "#f59e0b", AccentRGB: "245, 158, 11", BgStart: "#111827", BgEnd: "#422006", SurfaceRGB: "17, 24, 39", Text: "#f3f4f6", Muted: "#9ca3af", BtnBg: "#f59e0b", BtnText: "#111827", BtnBorder: "#f59e0b", AccentSoft: "rgba(245, 158, 11, 0.2)"},
	},
	{
		ID:              2,
		Name:            "Seraphina",
		Age:             31,
		City:            "Kyoto",
		ImageURL:        "https://picsum.photos/seed/woman2/500/700",
		Interests:       []string{"Meditation", "Ceramics", "Hiking"},
		Bio:             "Seeking harmony in the dance between tradition and modernity. I find peace in the quiet rustle of a bamboo forest and excitement in the vibrant energy of a bustling city. Let's share stories and discover the beauty in our differences.",
		Passions:        []string{"Ikebana (Flower Arranging)", "Tea Ceremonies", "Writing Haikus"},
		Values:          []string{"Mindfulness", "Respect for Nature", "Growth"},
		Gallery:         []string{"https://picsum.photos/seed/gal5/600/400", "https://picsum.photos/seed/gal6/600/400", "https://picsum.photos/seed/gal7/600/400"},
		Status:          "online",
		Availability:    "Available for chat",
		PersonalityLine: "A calm presence with a surprisingly playful side. Ready for a deep conversation.",
		Verified:        true,
		ResponseTime:    "3-7 minutes",
		Theme:           Theme{Accent: "#22d3ee", AccentRGB: "34, 211, 238", BgStart: "#083344", BgEnd: "#020617", SurfaceRGB: "3, 7, 18", Text: "#ecfeff", Muted: "#99f6e4", BtnBg: "#22d3ee", BtnText: "#083344", BtnBorder: "#22d3ee", AccentSoft: "rgba(34, 211, 238, 0.2)"},
	},
	{
		ID:              3,
		Name:            "Isla",
		Age:             25,
		City:            "Sydney",
		ImageURL:        "https://picsum.photos/seed/woman3/500/700",
		Interests:       []string{"Surfing", "Bonfires", "Photography"},
		Bio:             "Salt in my hair, sun on my skin. I live for the thrill of catching the perfect wave and the peace of a sunset by the shore. My life is an adventure, and I'm looking for a co-pilot who isn't afraid to get their feet wet.",
		Passions:        []string{"Marine Biology", "Acoustic Guitar", "Road Trips"},
		Values:          []string{"Freedom", "Spontaneity", "Loyalty"},
		Gallery:         []string{"https://picsum.photos/seed/gal8/600/400", "https://picsum.photos/seed/gal9/600/400"},
		Status:          "offline",
		Availability:    "Busy",
		PersonalityLine: "Full of energy and stories. Can make any night feel like an adventure.",
		Verified:        true,
		ResponseTime:    "5-10 minutes",
		Theme:           Theme{Accent: "#fb7185", AccentRGB: "251, 113, 133", BgStart: "#4c0519", BgEnd: "#1f2937", SurfaceRGB: "31, 41, 55", Text: "#ffe4e6", Muted: "#fda4af", BtnBg: "#fb7185", BtnText: "#4c0519", BtnBorder: "#fb7185", AccentSoft: "rgba(251, 113, 133, 0.2)"},
	},
	{
		ID:              4,
		Name:            "Lyra",
		Age:             29,
		City:            "Berlin",
		ImageURL:        "https://picsum.photos/seed/woman4/500/700",
		Interests:       []string{"Techno", "Street Art", "Startups"},
		Bio:             "Fueled by creativity and caffeine. I thrive in the organized chaos of Berlin's art scene and tech world. My rhythm is the 4/4 beat of a kick drum. Seeking someone who can appreciate both the grit and the glamour of life.",
		Passions:        []string{"DJing", "Coding", "Vintage Fashion"},
		Values:          []string{"Innovation", "Expression", "Community"},
		Gallery:         []string{"https://picsum.photos/seed/gal10/600/400", "https://picsum.photos/seed/gal11/600/400", "https://picsum.photos/seed/gal12/600/400"},
		Status:          "online",
		Availability:    "Available for chat",
		PersonalityLine: "Thoughtful, playful, and always awake when you need someone.",
		Verified:        true,
		ResponseTime:    "1-4 minutes",
		Theme:           Theme{Accent: "#a78bfa", AccentRGB: "167, 139, 250", BgStart: "#2e1065", BgEnd: "#020617", SurfaceRGB: "2, 6, 23", Text: "#f5f3ff", Muted: "#ddd6fe", BtnBg: "#a78bfa", BtnText: "#2e1065", BtnBorder: "#a78bfa", AccentSoft: "rgba(167, 139, 250, 0.2)"},
	},
	{
		ID:              5,
		Name:            "Aria",
		Age:             33,
		City:            "Florence",
		ImageURL:        "https://picsum.photos/seed/woman5/500/700",
		Interests:       []string{"History", "Cooking", "Opera"},
		Bio:             "I walk through life as if it were a grand museum, marveling at the art, history, and culture around me. Passionate about recreating Renaissance recipes and getting lost in the libretto of an opera. Let's create our own masterpiece.",
		Passions:        []string{"Sculpture", "Wine Tasting", "Learning Languages"},
		Values:          []string{"Beauty", "Knowledge", "Passion"},
		Gallery:         []string{"https://picsum.photos/seed/gal13/600/400", "https://picsum.photos/seed/gal14/600/400"},
		Status:          "online",
		Availability:    "Available for chat",
		PersonalityLine: "Soft voice. Sharp mind. No rush. For the man who appreciates the finer things.",
		Verified:        true,
		ResponseTime:    "4-8 minutes",
		Theme:           Theme{Accent: "#fca5a5", AccentRGB: "252, 165, 165", BgStart: "#450a0a", BgEnd: "#020617", SurfaceRGB: "28, 25, 23", Text: "#fef2f2", Muted: "#fecaca", BtnBg: "#fca5a5", BtnText: "#450a0a", BtnBorder: "#fca5a5", AccentSoft: "rgba(252, 165, 165, 0.2)"},
	},
	{
		ID:              6,
		Name:            "Nova",
		Age:             27,
		City:            "New York",
		ImageURL:        "https://picsum.photos/seed/woman6/500/700",
		Interests:       []string{"Theater", "Mixology", "Architecture"},
		Bio:             "A city soul with a heart for stories. From Broadway stages to hidden speakeasies, I'm captivated by the narratives that shape our lives. I'm ambitious, witty, and believe the best view of the skyline is from a rooftop bar at midnight.",
		Passions:        []string{"Playwriting", "Contemporary Dance", "Podcasting"},
		Values:          []string{"Ambition", "Humor", "Connection"},
		Gallery:         []string{"https://picsum.photos/seed/gal15/600/400", "https://picsum.photos/seed/gal16/600/400", "https://picsum.photos/seed/gal17/600/400", "https://picsum.photos/seed/gal18/600/400"},
		Status:          "offline",
		Availability:    "Busy",
		PersonalityLine: "Witty, ambitious, and knows all the best spots in the city. Your guide to an unforgettable night.",
		Verified:        true,
		ResponseTime:    "6-12 minutes",
		Theme:           Theme{Accent: "#93c5fd", AccentRGB: "147, 197, 253", BgStart: "#1e3a8a", BgEnd: "#020617", SurfaceRGB: "30, 41, 59", Text: "#eff6ff", Muted: "#dbeafe", BtnBg: "#93c5fd", BtnText: "#1e3a8a", BtnBorder: "#93c5fd", AccentSoft: "rgba(147, 197, 253, 0.2)"},
	},
	{
		ID:              7,
		Name:            "Juniper",
		Age:             26,
		City:            "Portland",
		ImageURL:        "https://picsum.photos/seed/woman7/500/700",
		Interests:       []string{"Nature", "Craft Beer", "Reading"},
		Bio:             "An old soul with a love for the great outdoors. You can find me hiking through misty forests, tending to my garden, or curled up in a cozy bookstore. Seeking a gentle, thoughtful connection with someone who appreciates the simple things.",
		Passions:        []string{"Herbalism", "Pottery", "Folk Music"},
		Values:          []string{"Sustainability", "Compassion", "Simplicity"},
		Gallery:         []string{"https://picsum.photos/seed/gal19/600/400", "https://picsum.photos/seed/gal20/600/400"},
		Status:          "online",
		Availability:    "Available for chat",
		PersonalityLine: "Loves slow conversations, bold questions, and a good cup of coffee.",
		Verified:        true,
		ResponseTime:    "3-6 minutes",
		Theme:           Theme{Accent: "#86efac", AccentRGB: "134, 239, 172", BgStart: "#14532d", BgEnd: "#020617", SurfaceRGB: "20, 83, 45", Text: "#f0fdf4", Muted: "#bbf7d0", BtnBg: "#86efac", BtnText: "#14532d", BtnBorder: "#86efac", AccentSoft: "rgba(134, 239, 172, 0.2)"},
	},
}
