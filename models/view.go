package models

// View types for the rendered planner surface. These mirror what the web
// client draws: day sections with activity cards and a budget panel.

// ActivityView is one activity card: the activity itself, the current
// (possibly user-edited) cost and an external link to verify the info.
type ActivityView struct {
	Activity
	Cost      float64 `json:"cost"`
	SearchURL string  `json:"searchUrl"`
}

// DayView is one day section.
type DayView struct {
	DayNumber  int            `json:"dayNumber"`
	Theme      string         `json:"theme"`
	Activities []ActivityView `json:"activities"`
}

// BudgetSummaryView adds locale-formatted display strings to the summary.
type BudgetSummaryView struct {
	BudgetSummary
	TotalCostDisplay  string `json:"totalCostDisplay"`
	RemainingDisplay  string `json:"remainingDisplay"`
	UserBudgetDisplay string `json:"userBudgetDisplay"`
}

// CurrencyOptionView pairs a slider config with preformatted display
// strings for the form.
type CurrencyOptionView struct {
	CurrencyOption
	MaxDisplay     string `json:"maxDisplay"`
	DefaultDisplay string `json:"defaultDisplay"`
}

// PlannerSessionView is the full session as rendered to a client.
type PlannerSessionView struct {
	SessionID    string             `json:"sessionId"`
	Status       PlannerStatus      `json:"status"`
	Error        string             `json:"error,omitempty"`
	Request      *TripInput         `json:"request,omitempty"`
	TripTitle    string             `json:"tripTitle,omitempty"`
	CurrencyCode string             `json:"currencyCode,omitempty"`
	DailyPlans   []DayView          `json:"dailyPlans,omitempty"`
	Budget       *BudgetSummaryView `json:"budget,omitempty"`
}
