package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripforge/models"
)

// DecodeItinerary parses the provider's JSON and checks it against the
// requested schema. The checks stop at schema conformance: prices are not
// clamped, days are not reordered and dayNumber is taken as delivered.
func DecodeItinerary(raw []byte) (*models.ItineraryResponse, error) {
	var it models.ItineraryResponse
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, &GatewayError{Kind: ErrKindInvalidJSON, Op: "decode response", Err: err}
	}
	if err := validateItinerary(&it); err != nil {
		return nil, &GatewayError{Kind: ErrKindSchemaViolation, Op: "validate response", Err: err}
	}
	return &it, nil
}

func validateItinerary(it *models.ItineraryResponse) error {
	if strings.TrimSpace(it.TripTitle) == "" {
		return fmt.Errorf("missing tripTitle")
	}
	if strings.TrimSpace(it.CurrencyCode) == "" {
		return fmt.Errorf("missing currencyCode")
	}
	if len(it.DailyPlans) == 0 {
		return fmt.Errorf("dailyPlans is empty")
	}
	for i, day := range it.DailyPlans {
		if day.DayNumber < 1 {
			return fmt.Errorf("day %d: dayNumber must be positive", i+1)
		}
		if strings.TrimSpace(day.Theme) == "" {
			return fmt.Errorf("day %d: missing theme", day.DayNumber)
		}
		if len(day.Activities) == 0 {
			return fmt.Errorf("day %d: activities is empty", day.DayNumber)
		}
		for j, act := range day.Activities {
			if err := validateActivity(act); err != nil {
				return fmt.Errorf("day %d activity %d: %w", day.DayNumber, j+1, err)
			}
		}
	}
	return nil
}

func validateActivity(act models.Activity) error {
	required := map[string]string{
		"name":          act.Name,
		"description":   act.Description,
		"openingHours":  act.OpeningHours,
		"estimatedCost": act.EstimatedCost,
		"category":      act.Category,
		"imagePrompt":   act.ImagePrompt,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("missing %s", field)
		}
	}
	return nil
}
