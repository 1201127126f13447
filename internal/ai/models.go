package ai

// TravelIntent captures the structured trip request parsed from user text.
type TravelIntent struct {
	// Interests are trip-category labels (beach, hiking, romantic, ...).
	Interests []string `json:"interests"`

	// BudgetPerPerson in INR. Zero when the user has not mentioned one.
	BudgetPerPerson int `json:"budget_per_person"`

	// GroupSize defaults to 1 when unspecified.
	GroupSize int `json:"group_size"`

	// DurationDays of the trip ("weekend" = 2). Zero when unknown.
	DurationDays int `json:"duration_days"`

	// AvoidList holds things the user wants to avoid (crowds, heat, ...).
	AvoidList []string `json:"avoid_list,omitempty"`

	// AccommodationNeeded is true when an overnight stay was mentioned.
	AccommodationNeeded bool `json:"accommodation_needed"`

	// RawText is the original message the intent was extracted from.
	RawText string `json:"raw_text,omitempty"`
}

// Candidate is one recommended destination awaiting user selection.
type Candidate struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	MatchScore    int      `json:"match_score"`
	Reasoning     string   `json:"reasoning"`
	Description   string   `json:"description,omitempty"`
	EstimatedCost string   `json:"estimated_cost,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`

	// DriveTime is filled from the Maps enrichment when available (e.g. "1h 20m").
	DriveTime string `json:"drive_time,omitempty"`
}

// Suggestions is the structured result of a destination-suggestion call.
type Suggestions struct {
	Candidates []Candidate `json:"destinations"`
	Summary    string      `json:"summary"`
	Tips       []string    `json:"tips,omitempty"`
}

// TimeSlot is a single scheduled entry within an itinerary day.
type TimeSlot struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
	Cost     string `json:"cost,omitempty"`
}

// DayPlan is one day of an itinerary.
type DayPlan struct {
	Day      int        `json:"day"`
	Title    string     `json:"title"`
	Schedule []TimeSlot `json:"schedule"`
	Notes    string     `json:"notes,omitempty"`
}

// Itinerary is the complete day-by-day plan for a confirmed destination.
type Itinerary struct {
	Destination        string    `json:"destination"`
	DurationDays       int       `json:"duration"`
	Days               []DayPlan `json:"days"`
	TotalEstimatedCost string    `json:"total_estimated_cost"`
	PackingList        []string  `json:"packing_list,omitempty"`
	ImportantNotes     []string  `json:"important_notes,omitempty"`
}
