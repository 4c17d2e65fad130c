package store

// SeedEvents returns the fixed demonstration dataset used when no stored
// event list exists yet (or the stored value cannot be parsed). Returns a
// fresh copy on every call so callers can mutate freely.
func SeedEvents() []Event {
	return []Event{
		{
			ID:       1,
			Title:    "Vasaros Festivalis 2025",
			Date:     "2025-07-15",
			Location: "Senamiesčio aikštė",
			Category: "music",
			Description: "Kasmetinis vasaros muzikos festivalis su įvairiomis grupėmis. " +
				"Bus atlikėjai iš visos Lietuvos, maisto mugė ir linksmybės visai šeimai.",
			Ratings: []int{5, 4, 5, 5, 4},
			Image:   "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=800&h=400&fit=crop",
		},
		{
			ID:          2,
			Title:       "Futbolo Čempionatas",
			Date:        "2025-08-20",
			Location:    "Stadionas Žalgiris",
			Category:    "sport",
			Description: "Regioninis futbolo čempionatas su dalyviais iš viso miesto ir apylinkių.",
			Ratings:     []int{4, 4, 5, 3},
			Image:       "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=800&h=400&fit=crop",
		},
		{
			ID:          3,
			Title:       "Knygų Mugė",
			Date:        "2025-09-10",
			Location:    "Kultūros centras",
			Category:    "culture",
			Description: "Daugiau nei 100 leidyklų, susitikimai su rašytojais ir edukacinės programos.",
			Ratings:     []int{5, 5, 5, 4, 5},
			Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=800&h=400&fit=crop",
		},
		{
			ID:          4,
			Title:       "Kulinarijos Festas",
			Date:        "2025-10-05",
			Location:    "Laisvės alėja",
			Category:    "food",
			Description: "Geriausių restoranų ir maisto vagonėlių festivalis, skanus maistas ir gėrimai.",
			Ratings:     []int{4, 3, 5, 4},
			Image:       "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&h=400&fit=crop",
		},
		{
			ID:          5,
			Title:       "Technologijų Konferencija",
			Date:        "2025-11-15",
			Location:    "Technopolis",
			Category:    "education",
			Description: "Naujausios technologijos ir inovacijos, paskaitos bei workshopai.",
			Ratings:     []int{5, 5, 4, 5},
			Image:       "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=800&h=400&fit=crop",
		},
		{
			ID:          6,
			Title:       "Senamiesčio Turgus",
			Date:        "2025-12-01",
			Location:    "Senamiestis",
			Category:    "other",
			Description: "Rankų darbo gaminių ir vietinių ūkininkų produktų turgus.",
			Ratings:     []int{3, 4, 4, 3},
			Image:       "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=800&h=400&fit=crop",
		},
	}
}
