package planner

import (
	"fmt"
	"strconv"

	"tripforge/models"

	genai "github.com/google/generative-ai-go/genai"
)

// itineraryTemperature keeps decoding consistent rather than creative.
const itineraryTemperature = 0.4

// BuildItineraryPrompt turns a validated trip input into the provider
// instruction. Pure and deterministic; the schema carries the structural
// contract, the prompt carries the content directives.
func BuildItineraryPrompt(input models.TripInput) string {
	budget := strconv.FormatFloat(input.Budget, 'f', -1, 64)
	return fmt.Sprintf(`Create a detailed travel itinerary for %s.
The trip lasts %d days.
Main interests: %s.

USER BUDGET: %s %s for the entire trip.

IMPORTANT INSTRUCTIONS:
1. Tailor the recommended activities, local transport and dining options so the TOTAL estimated cost stays close to or below the user's budget.
2. VERY IMPORTANT: Use the '%s' currency for every price estimate (price and estimatedCost). Do not use the destination's local currency if it differs from '%s'. (Example: if the user picks IDR for Japan, output prices in IDR.)
3. If an activity is free, set price to 0.
4. For 'imagePrompt', give a specific English keyword phrase for visualising the place.

Return valid JSON matching the requested schema.
Make sure:
1. The 'price' field is a pure number in %s.
2. Opening hours are accurate or a reasonable estimate.
3. Place names are specific.
4. Descriptions are short but engaging.`,
		input.Destination, input.Duration, input.Interests,
		budget, input.Currency,
		input.Currency, input.Currency,
		input.Currency)
}

// itinerarySchema declares the structured output the provider must return.
// Decode-side validation in DecodeItinerary checks the same contract.
func itinerarySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tripTitle": {
				Type:        genai.TypeString,
				Description: "A catchy title for the trip.",
			},
			"currencyCode": {
				Type:        genai.TypeString,
				Description: "The currency code requested by the user (e.g., JPY, USD, IDR).",
			},
			"dailyPlans": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"dayNumber": {Type: genai.TypeInteger},
						"theme": {
							Type:        genai.TypeString,
							Description: "Main theme or focus of the day.",
						},
						"activities": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"name":        {Type: genai.TypeString},
									"description": {Type: genai.TypeString},
									"openingHours": {
										Type:        genai.TypeString,
										Description: "Opening and closing time (e.g. 09:00 - 17:00).",
									},
									"estimatedCost": {
										Type:        genai.TypeString,
										Description: "Cost estimate string for display (e.g. '¥2000' or 'Free').",
									},
									"price": {
										Type:        genai.TypeNumber,
										Description: "Numeric value of the cost in the requested currency. Use 0 if free.",
									},
									"category": {
										Type:        genai.TypeString,
										Description: "Category like Food, History, Nature, Shopping.",
									},
									"imagePrompt": {
										Type:        genai.TypeString,
										Description: "A short, descriptive English search term to find a photo of this place.",
									},
								},
								Required: []string{"name", "description", "openingHours", "estimatedCost", "price", "category", "imagePrompt"},
							},
						},
					},
					Required: []string{"dayNumber", "theme", "activities"},
				},
			},
		},
		Required: []string{"tripTitle", "currencyCode", "dailyPlans"},
	}
}
