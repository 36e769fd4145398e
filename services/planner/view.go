package planner

import (
	"net/url"

	"tripforge/models"
	"tripforge/utils"
)

// verifySearchSuffix is appended to the activity name when building the
// external "verify info" link.
const verifySearchSuffix = " ticket price cost"

func verifySearchURL(name string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(name+verifySearchSuffix)
}

// BuildSessionView renders a session for clients: status and error always,
// the day list and budget panel only once an itinerary exists.
func BuildSessionView(sess *models.PlannerSession) *models.PlannerSessionView {
	view := &models.PlannerSessionView{
		SessionID: sess.ID,
		Status:    sess.Status,
		Error:     sess.ErrorMessage,
		Request:   sess.Input,
	}
	if sess.Status != models.StatusSuccess || sess.Itinerary == nil {
		return view
	}

	it := sess.Itinerary
	view.TripTitle = it.TripTitle
	view.CurrencyCode = it.CurrencyCode

	days := make([]models.DayView, 0, len(it.DailyPlans))
	for d, day := range it.DailyPlans {
		activities := make([]models.ActivityView, 0, len(day.Activities))
		for a, act := range day.Activities {
			activities = append(activities, models.ActivityView{
				Activity:  act,
				Cost:      sess.Costs[CostKey(d, a)],
				SearchURL: verifySearchURL(act.Name),
			})
		}
		days = append(days, models.DayView{
			DayNumber:  day.DayNumber,
			Theme:      day.Theme,
			Activities: activities,
		})
	}
	view.DailyPlans = days

	summary := ComputeTotals(sess.Costs, sess.UserBudget())
	view.Budget = &models.BudgetSummaryView{
		BudgetSummary:     summary,
		TotalCostDisplay:  utils.FormatAmount(summary.TotalCost) + " " + it.CurrencyCode,
		RemainingDisplay:  utils.FormatAmount(summary.RemainingBudget) + " " + it.CurrencyCode,
		UserBudgetDisplay: utils.FormatAmount(summary.UserBudget) + " " + it.CurrencyCode,
	}
	return view
}
