// README: Built-in development dataset (Pune-area destinations).
package kb

var builtinDocuments = []Document{
	{
		Name:          "Lonavala",
		Category:      "hill",
		Tags:          []string{"hiking", "family", "romantic", "budget"},
		Description:   "Classic hill station getaway with misty viewpoints, chikki shops, and easy treks to Rajmachi and Lohagad.",
		Highlights:    []string{"Tiger Point", "Bhushi Dam", "Lohagad Fort"},
		EstimatedCost: "₹2,500 per person",
		DistanceKm:    65,
		BestFor:       []string{"weekend", "monsoon"},
	},
	{
		Name:          "Alibaug",
		Category:      "beach",
		Tags:          []string{"beach", "romantic", "family"},
		Description:   "Coastal town with clean beaches, the Kolaba sea fort, and seafood shacks; reachable by ferry from Mumbai.",
		Highlights:    []string{"Alibaug Beach", "Kolaba Fort", "Kashid Beach"},
		EstimatedCost: "₹3,500 per person",
		DistanceKm:    143,
		BestFor:       []string{"weekend", "couples"},
	},
	{
		Name:          "Sinhagad Fort",
		Category:      "heritage",
		Tags:          []string{"hiking", "heritage", "budget", "adventure"},
		Description:   "Historic hilltop fort with a short steep trek, ramparts to wander, and famous pithla-bhakri at the top.",
		Highlights:    []string{"Kalyan Darwaza", "Tanaji memorial", "sunrise trek"},
		EstimatedCost: "₹500 per person",
		DistanceKm:    35,
		BestFor:       []string{"day trip", "history buffs"},
	},
	{
		Name:          "Rajmachi",
		Category:      "trek",
		Tags:          []string{"hiking", "adventure", "camping", "budget"},
		Description:   "Twin-fort trek through forest trails, waterfalls in monsoon, and fireflies in early summer; overnight camping popular.",
		Highlights:    []string{"Shrivardhan Fort", "firefly season", "Kondhane caves"},
		EstimatedCost: "₹1,200 per person",
		DistanceKm:    80,
		BestFor:       []string{"trekkers", "camping"},
	},
	{
		Name:          "Mahabaleshwar",
		Category:      "hill",
		Tags:          []string{"romantic", "family", "luxury"},
		Description:   "Strawberry farms, panoramic ghat viewpoints, boating on Venna Lake, and colonial-era promenades.",
		Highlights:    []string{"Mapro Garden", "Arthur's Seat", "Venna Lake"},
		EstimatedCost: "₹4,000 per person",
		DistanceKm:    120,
		BestFor:       []string{"couples", "families"},
	},
	{
		Name:          "Lavasa",
		Category:      "city",
		Tags:          []string{"romantic", "cafe", "luxury", "city"},
		Description:   "Planned lakeside hill city with a waterfront promenade, European-style cafes, and water sports.",
		Highlights:    []string{"lakeside promenade", "waterfront cafes", "jet ski"},
		EstimatedCost: "₹3,000 per person",
		DistanceKm:    60,
		BestFor:       []string{"couples", "cafe hopping"},
	},
	{
		Name:          "Diveagar",
		Category:      "beach",
		Tags:          []string{"beach", "budget", "family"},
		Description:   "Quiet coastal village with an uncrowded beach, coconut groves, and homestay food; far less busy than Alibaug.",
		Highlights:    []string{"Diveagar Beach", "Suvarna Ganesh temple", "local homestays"},
		EstimatedCost: "₹2,000 per person",
		DistanceKm:    170,
		BestFor:       []string{"quiet weekends"},
	},
	{
		Name:          "Bhimashankar",
		Category:      "trek",
		Tags:          []string{"hiking", "heritage", "adventure"},
		Description:   "Jyotirlinga temple inside a wildlife sanctuary; the Ganesh Ghat and Shidi Ghat trails draw serious trekkers.",
		Highlights:    []string{"Bhimashankar temple", "Shidi Ghat ladders", "giant squirrel sanctuary"},
		EstimatedCost: "₹900 per person",
		DistanceKm:    110,
		BestFor:       []string{"trekkers", "pilgrims"},
	},
	{
		Name:          "Panchgani",
		Category:      "hill",
		Tags:          []string{"family", "romantic", "cafe"},
		Description:   "Tableland plateau views, boarding-school era charm, strawberry cream at roadside stalls, and quiet cafes.",
		Highlights:    []string{"Table Land", "Sydney Point", "Parsi Point"},
		EstimatedCost: "₹3,200 per person",
		DistanceKm:    100,
		BestFor:       []string{"families", "couples"},
	},
	{
		Name:          "Tamhini Ghat",
		Category:      "scenic",
		Tags:          []string{"adventure", "hiking", "budget"},
		Description:   "Monsoon waterfall corridor between Mulshi and the Konkan; roadside cascades and green valleys all the way.",
		Highlights:    []string{"waterfall stops", "Mulshi dam backwaters", "valley views"},
		EstimatedCost: "₹700 per person",
		DistanceKm:    55,
		BestFor:       []string{"monsoon drives"},
	},
}
