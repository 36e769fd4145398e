package models

// ItineraryResponse is the validated multi-day plan returned by the AI
// provider. It is replaced wholesale on every new request.
type ItineraryResponse struct {
	TripTitle    string    `json:"tripTitle"`
	CurrencyCode string    `json:"currencyCode"`
	DailyPlans   []DayPlan `json:"dailyPlans"`
}

// DayPlan is one day of the itinerary, in itinerary order.
type DayPlan struct {
	DayNumber  int        `json:"dayNumber"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// Activity is a single visitable item within a day's plan.
type Activity struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	OpeningHours string `json:"openingHours"` // e.g. "09:00 - 17:00" or "24 Hours"
	// EstimatedCost is the provider's display string, e.g. "¥2000" or "Free".
	EstimatedCost string `json:"estimatedCost"`
	// Price is the authoritative numeric cost in the requested currency;
	// 0 means free.
	Price       float64 `json:"price"`
	Category    string  `json:"category"`    // e.g. "Food", "History"
	ImagePrompt string  `json:"imagePrompt"` // English visual search phrase
}
