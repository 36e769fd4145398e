package models

import "time"

// PlannerStatus is the load state of a planning session.
type PlannerStatus string

const (
	StatusIdle    PlannerStatus = "IDLE"
	StatusLoading PlannerStatus = "LOADING"
	StatusSuccess PlannerStatus = "SUCCESS"
	StatusError   PlannerStatus = "ERROR"
)

// PlannerSession holds the full state of one planning surface: the
// submitted trip input, the generated itinerary, the per-activity cost
// overrides and the load state machine. Cached with a TTL; nothing
// survives the session.
type PlannerSession struct {
	ID     string        `json:"id"`
	Status PlannerStatus `json:"status"`

	Input     *TripInput         `json:"input,omitempty"`
	Itinerary *ItineraryResponse `json:"itinerary,omitempty"`

	// Costs maps "<dayIndex>-<activityIndex>" to the current cost for
	// that activity. Seeded from the provider's price estimates and
	// mutated one cell at a time by user edits.
	Costs map[string]float64 `json:"costs,omitempty"`

	// ErrorMessage is the user-facing failure message while Status is
	// StatusError.
	ErrorMessage string `json:"errorMessage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserBudget returns the submitted budget ceiling, 0 before any submission.
func (s *PlannerSession) UserBudget() float64 {
	if s.Input == nil {
		return 0
	}
	return s.Input.Budget
}

// BudgetSummary is derived from the cost overrides and the budget ceiling.
// Never stored; recomputed on every read.
type BudgetSummary struct {
	TotalCost       float64 `json:"totalCost"`
	RemainingBudget float64 `json:"remainingBudget"`
	IsOverBudget    bool    `json:"isOverBudget"`
	// ProgressPercent is capped at 100 for display; IsOverBudget stays
	// truthful independent of the cap.
	ProgressPercent float64 `json:"progressPercent"`
	UserBudget      float64 `json:"userBudget"`
}
