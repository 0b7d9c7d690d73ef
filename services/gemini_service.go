package services

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/NutritionScanner/nutrivision-backend/models"
)

const geminiModel = "gemini-2.0-flash"

// Summarizer produces a nutritional summary record for a food item.
// The production implementation is GeminiService; tests substitute a
// deterministic fake.
type Summarizer interface {
	Summarize(ctx context.Context, foodItem string) (models.NutritionRecord, error)
}

// GeminiService generates nutrition summaries with a Vertex AI Gemini
// model constrained to the canonical record schema, so the response is
// parsed JSON rather than prose.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, projectID, location string, opts ...option.ClientOption) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = nutritionSchema()

	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

// Summarize asks the model for a structured breakdown of foodItem.
// Transport and auth failures propagate; a response without a usable
// structured payload degrades to the placeholder record instead.
func (s *GeminiService) Summarize(ctx context.Context, foodItem string) (models.NutritionRecord, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(summaryPrompt(foodItem)))
	if err != nil {
		return models.NutritionRecord{}, fmt.Errorf("failed to call Gemini: %w", err)
	}

	return decodeSummary(foodItem, candidateText(resp)), nil
}

// summaryPrompt builds the deterministic instruction for one food item.
func summaryPrompt(foodItem string) string {
	return fmt.Sprintf(`Provide a structured nutritional breakdown for %[1]s in JSON format.
Use this schema:
{
    "food_item": "%[1]s",
    "summary": "Brief nutritional and health benefits summary",
    "calories": "Calories per 100g",
    "protein": "Protein content in grams per 100g",
    "carbohydrates": "Carbs content in grams per 100g",
    "fats": "Fat content in grams per 100g",
    "fiber": "Fiber content in grams per 100g",
    "sugar": "Sugar content in grams per 100g",
    "health_rating": "Healthy / Moderate / Unhealthy",
    "average_serving_size": "Typical serving size in grams",
    "calories_per_serving": "Calories in one average serving",
    "serving_notes": "Short note on what one serving looks like"
}`, foodItem)
}

// nutritionSchema constrains generation to the canonical record shape.
func nutritionSchema() *genai.Schema {
	str := func() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"food_item":            str(),
			"summary":              str(),
			"calories":             str(),
			"protein":              str(),
			"carbohydrates":        str(),
			"fats":                 str(),
			"fiber":                str(),
			"sugar":                str(),
			"health_rating":        str(),
			"average_serving_size": str(),
			"calories_per_serving": str(),
			"serving_notes":        str(),
		},
		Required: []string{
			"food_item", "summary", "calories", "protein",
			"carbohydrates", "fats", "fiber", "sugar", "health_rating",
		},
	}
}

// candidateText extracts the first text part of the first candidate,
// or "" when the response carries no content.
func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	if txt, ok := content.Parts[0].(genai.Text); ok {
		return string(txt)
	}
	return ""
}

// decodeSummary parses the structured payload. An absent or undecodable
// payload is the documented degraded-success path: the caller gets a
// placeholder record with the query echoed verbatim, not an error.
func decodeSummary(foodItem, text string) models.NutritionRecord {
	if text == "" {
		return models.PlaceholderRecord(foodItem)
	}

	var rec models.NutritionRecord
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return models.PlaceholderRecord(foodItem)
	}
	if rec.FoodItem == "" {
		rec.FoodItem = foodItem
	}
	rec.FillPlaceholders()
	return rec
}
