package planner

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"tripforge/models"
)

// CostKey positions an activity inside the cost override map. The indexes
// are zero-based itinerary positions, not dayNumber.
func CostKey(dayIndex, activityIndex int) string {
	return strconv.Itoa(dayIndex) + "-" + strconv.Itoa(activityIndex)
}

// SeedCosts rebuilds the session's cost overrides wholesale from the
// itinerary, one entry per activity valued at the provider's price
// estimate. Calling it again with the same itinerary yields the same map.
func SeedCosts(sess *models.PlannerSession) {
	costs := make(map[string]float64)
	if sess.Itinerary != nil {
		for d, day := range sess.Itinerary.DailyPlans {
			for a, act := range day.Activities {
				costs[CostKey(d, a)] = act.Price
			}
		}
	}
	sess.Costs = costs
}

// CoerceCost turns a user-supplied cost edit into a number. Non-numeric or
// unparsable input stores 0; negative and arbitrarily large values pass
// through unchanged.
func CoerceCost(value any) float64 {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ComputeTotals derives the budget figures from the cost overrides and the
// submitted ceiling. Pure read; the progress percentage is capped at 100
// for display while IsOverBudget stays truthful.
func ComputeTotals(costs map[string]float64, budget float64) models.BudgetSummary {
	var total float64
	for _, c := range costs {
		total += c
	}

	remaining := budget - total
	var progress float64
	if budget > 0 {
		progress = total / budget * 100
		if progress > 100 {
			progress = 100
		}
		if progress < 0 {
			progress = 0
		}
	}

	return models.BudgetSummary{
		TotalCost:       total,
		RemainingBudget: remaining,
		IsOverBudget:    remaining < 0,
		ProgressPercent: progress,
		UserBudget:      budget,
	}
}
