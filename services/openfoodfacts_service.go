package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NutritionScanner/nutrivision-backend/models"
)

const openFoodFactsAPI = "https://world.openfoodfacts.org/api/v2/product/"

// OpenFoodFactsService looks up packaged-food nutrition by barcode.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: openFoodFactsAPI,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type productResponse struct {
	Product *struct {
		ProductName     string         `json:"product_name"`
		Nutriments      map[string]any `json:"nutriments"`
		NutriscoreGrade string         `json:"nutriscore_grade"`
		IngredientsText string         `json:"ingredients_text"`
	} `json:"product"`
}

// Lookup fetches the product record and normalizes it. A non-200
// response yields ErrProductNotFound; a payload without a product key
// yields ErrIncompleteData rather than a partially filled record.
func (s *OpenFoodFactsService) Lookup(ctx context.Context, barcode string) (models.NutritionRecord, error) {
	var zero models.NutritionRecord

	u := fmt.Sprintf("%s%s.json", s.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to build OpenFoodFacts request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("failed to call OpenFoodFacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zero, ErrProductNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("failed to read OpenFoodFacts response: %w", err)
	}

	var pr productResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return zero, fmt.Errorf("failed to parse OpenFoodFacts JSON: %w", err)
	}
	if pr.Product == nil {
		return zero, ErrIncompleteData
	}

	p := pr.Product
	name := p.ProductName
	if name == "" {
		name = "Unknown"
	}

	rec := models.NutritionRecord{
		FoodItem:      name,
		Calories:      nutrientString(p.Nutriments, "energy-kcal_100g"),
		Protein:       nutrientString(p.Nutriments, "proteins_100g"),
		Fats:          nutrientString(p.Nutriments, "fat_100g"),
		Carbohydrates: nutrientString(p.Nutriments, "carbohydrates_100g"),
		Fiber:         nutrientString(p.Nutriments, "fiber_100g"),
		Sugar:         nutrientString(p.Nutriments, "sugars_100g"),
		HealthRating:  ratingFromNutriscore(p.NutriscoreGrade),
		Nutriscore:    p.NutriscoreGrade,
		Ingredients:   p.IngredientsText,
	}
	rec.FillPlaceholders()
	return rec, nil
}

// nutrientString formats a nutriment value as text. OpenFoodFacts mixes
// numbers and strings in the nutriments object; anything absent or
// unrecognized becomes the placeholder.
func nutrientString(nutriments map[string]any, key string) string {
	switch v := nutriments[key].(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		if v != "" {
			return v
		}
	case json.Number:
		return v.String()
	}
	return models.PlaceholderValue
}

// ratingFromNutriscore maps the a-e grade to the canonical rating.
func ratingFromNutriscore(grade string) string {
	switch strings.ToLower(grade) {
	case "a", "b":
		return "Healthy"
	case "c":
		return "Moderate"
	case "d", "e":
		return "Unhealthy"
	default:
		return models.PlaceholderRating
	}
}
