package planner

import (
	"context"
	"fmt"
	"strings"

	"tripforge/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ItineraryGateway performs the single outbound call per submission to the
// generative model. Implementations make exactly one attempt; retrying is
// the user's job.
type ItineraryGateway interface {
	GenerateItinerary(ctx context.Context, input models.TripInput) (*models.ItineraryResponse, error)
}

// GeminiGateway calls Gemini with structured JSON output enabled.
type GeminiGateway struct {
	model *genai.GenerativeModel
}

func NewGeminiGateway(ctx context.Context, apiKey, modelName string) (*GeminiGateway, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(itineraryTemperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = itinerarySchema()
	return &GeminiGateway{model: model}, nil
}

func (g *GeminiGateway) GenerateItinerary(ctx context.Context, input models.TripInput) (*models.ItineraryResponse, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(BuildItineraryPrompt(input)))
	if err != nil {
		return nil, &GatewayError{Kind: ErrKindProvider, Op: "generate content", Err: err}
	}

	raw := responseText(resp)
	if strings.TrimSpace(raw) == "" {
		return nil, &GatewayError{Kind: ErrKindEmptyResponse, Op: "read candidates"}
	}
	return DecodeItinerary([]byte(raw))
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}
	return sb.String()
}
