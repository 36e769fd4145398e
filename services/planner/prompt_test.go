package planner

import (
	"strings"
	"testing"

	"tripforge/models"
)

func TestBuildItineraryPromptDeterministic(t *testing.T) {
	input := models.TripInput{Destination: "Kyoto, Japan", Duration: 3, Interests: "Food", Budget: 5000000, Currency: "IDR"}
	if BuildItineraryPrompt(input) != BuildItineraryPrompt(input) {
		t.Fatal("prompt is not deterministic for identical input")
	}
}

func TestBuildItineraryPromptEmbedsInput(t *testing.T) {
	input := models.TripInput{Destination: "Kyoto, Japan", Duration: 3, Interests: "Food", Budget: 5000000, Currency: "IDR"}
	prompt := BuildItineraryPrompt(input)

	for _, want := range []string{
		"Kyoto, Japan",
		"3 days",
		"Food",
		"5000000 IDR",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildItineraryPromptDirectives(t *testing.T) {
	input := models.TripInput{Destination: "Tokyo", Duration: 5, Interests: "Nightlife", Budget: 2000, Currency: "USD"}
	prompt := BuildItineraryPrompt(input)

	// Prices must be denominated in the requested currency, not the
	// destination's local one, and free activities must report 0.
	if !strings.Contains(prompt, "Use the 'USD' currency for every price estimate") {
		t.Fatalf("prompt missing currency directive:\n%s", prompt)
	}
	if !strings.Contains(prompt, "set price to 0") {
		t.Fatalf("prompt missing free-activity directive:\n%s", prompt)
	}
	if !strings.Contains(prompt, "imagePrompt") {
		t.Fatalf("prompt missing image prompt directive:\n%s", prompt)
	}
}

func TestItinerarySchemaRequiredFields(t *testing.T) {
	schema := itinerarySchema()

	wantTop := []string{"tripTitle", "currencyCode", "dailyPlans"}
	if len(schema.Required) != len(wantTop) {
		t.Fatalf("top-level required = %v, want %v", schema.Required, wantTop)
	}
	for i, field := range wantTop {
		if schema.Required[i] != field {
			t.Fatalf("top-level required = %v, want %v", schema.Required, wantTop)
		}
	}

	activity := schema.Properties["dailyPlans"].Items.Properties["activities"].Items
	wantActivity := map[string]bool{
		"name": true, "description": true, "openingHours": true,
		"estimatedCost": true, "price": true, "category": true, "imagePrompt": true,
	}
	if len(activity.Required) != len(wantActivity) {
		t.Fatalf("activity required = %v", activity.Required)
	}
	for _, field := range activity.Required {
		if !wantActivity[field] {
			t.Fatalf("unexpected required activity field %q", field)
		}
	}
}
