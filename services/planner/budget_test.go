package planner

import (
	"encoding/json"
	"reflect"
	"testing"

	"tripforge/models"
)

func sampleItinerary() *models.ItineraryResponse {
	return &models.ItineraryResponse{
		TripTitle:    "Kyoto Food Pilgrimage",
		CurrencyCode: "IDR",
		DailyPlans: []models.DayPlan{
			{
				DayNumber: 1,
				Theme:     "Historical Temples",
				Activities: []models.Activity{
					{Name: "Fushimi Inari Taisha", Description: "Thousands of vermilion torii gates.", OpeningHours: "24 Hours", EstimatedCost: "Free", Price: 0, Category: "History", ImagePrompt: "Fushimi Inari torii gates"},
					{Name: "Nishiki Market", Description: "Kyoto's kitchen, street food galore.", OpeningHours: "09:00 - 18:00", EstimatedCost: "Rp 250.000", Price: 250000, Category: "Food", ImagePrompt: "Nishiki Market street food"},
				},
			},
			{
				DayNumber: 2,
				Theme:     "Tea and Gardens",
				Activities: []models.Activity{
					{Name: "Camellia Tea Ceremony", Description: "Traditional matcha ceremony.", OpeningHours: "10:00 - 17:00", EstimatedCost: "Rp 350.000", Price: 350000, Category: "Culture", ImagePrompt: "Japanese tea ceremony matcha"},
				},
			},
		},
	}
}

func newSuccessSession() *models.PlannerSession {
	sess := &models.PlannerSession{
		ID:        "test-session",
		Status:    models.StatusSuccess,
		Input:     &models.TripInput{Destination: "Kyoto, Japan", Duration: 2, Interests: "Food", Budget: 5000000, Currency: "IDR"},
		Itinerary: sampleItinerary(),
	}
	SeedCosts(sess)
	return sess
}

func TestSeedCostsMatchesPrices(t *testing.T) {
	sess := newSuccessSession()

	want := map[string]float64{
		"0-0": 0,
		"0-1": 250000,
		"1-0": 350000,
	}
	if !reflect.DeepEqual(sess.Costs, want) {
		t.Fatalf("seeded costs = %v, want %v", sess.Costs, want)
	}
}

func TestSeedCostsFreeActivityIsZero(t *testing.T) {
	sess := newSuccessSession()
	if got := sess.Costs[CostKey(0, 0)]; got != 0 {
		t.Fatalf("free activity seeded to %v, want 0", got)
	}
}

func TestSeedCostsIdempotent(t *testing.T) {
	sess := newSuccessSession()
	first := sess.Costs
	SeedCosts(sess)
	if !reflect.DeepEqual(first, sess.Costs) {
		t.Fatalf("reseeding changed costs: %v then %v", first, sess.Costs)
	}
}

func TestComputeTotalsReproducesEstimate(t *testing.T) {
	sess := newSuccessSession()
	summary := ComputeTotals(sess.Costs, sess.UserBudget())

	if summary.TotalCost != 600000 {
		t.Fatalf("TotalCost = %v, want 600000", summary.TotalCost)
	}
	if summary.RemainingBudget != 4400000 {
		t.Fatalf("RemainingBudget = %v, want 4400000", summary.RemainingBudget)
	}
	if summary.IsOverBudget {
		t.Fatal("IsOverBudget = true for spend within budget")
	}
	if summary.ProgressPercent != 12 {
		t.Fatalf("ProgressPercent = %v, want 12", summary.ProgressPercent)
	}
	if summary.UserBudget != 5000000 {
		t.Fatalf("UserBudget = %v, want the submitted 5000000", summary.UserBudget)
	}
}

func TestComputeTotalsProgressCappedAt100(t *testing.T) {
	costs := map[string]float64{"0-0": 10000}
	summary := ComputeTotals(costs, 1000) // 10x over budget

	if !summary.IsOverBudget {
		t.Fatal("IsOverBudget = false for spend 10x over budget")
	}
	if summary.ProgressPercent != 100 {
		t.Fatalf("ProgressPercent = %v, want capped at 100", summary.ProgressPercent)
	}
	if summary.RemainingBudget != -9000 {
		t.Fatalf("RemainingBudget = %v, want -9000", summary.RemainingBudget)
	}
}

func TestComputeTotalsZeroBudget(t *testing.T) {
	summary := ComputeTotals(map[string]float64{"0-0": 500}, 0)
	if summary.ProgressPercent != 0 {
		t.Fatalf("ProgressPercent = %v with zero budget, want 0", summary.ProgressPercent)
	}
	if !summary.IsOverBudget {
		t.Fatal("IsOverBudget = false with zero budget and nonzero spend")
	}
}

func TestEditSingleCellIsolation(t *testing.T) {
	sess := newSuccessSession()
	before := ComputeTotals(sess.Costs, sess.UserBudget())

	sess.Costs[CostKey(0, 1)] = 300000
	after := ComputeTotals(sess.Costs, sess.UserBudget())

	if diff := after.TotalCost - before.TotalCost; diff != 50000 {
		t.Fatalf("total changed by %v, want 50000", diff)
	}
	if sess.Costs[CostKey(0, 0)] != 0 || sess.Costs[CostKey(1, 0)] != 350000 {
		t.Fatal("editing one cell touched other cells")
	}
}

func TestCoerceCost(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  float64
	}{
		{"float", 125.5, 125.5},
		{"int", 200, 200.0},
		{"numeric string", "12500", 12500},
		{"negative string", "-50", -50},
		{"json number", json.Number("750"), 750},
		{"empty string", "", 0},
		{"non-numeric string", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceCost(tc.value); got != tc.want {
				t.Fatalf("CoerceCost(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}
