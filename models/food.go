package models

// Placeholder values used when an upstream omits a field. Every field of
// a NutritionRecord is always populated, consumers never check for
// missing keys.
const (
	PlaceholderValue  = "N/A"
	PlaceholderRating = "Unknown"
)

// NutritionRecord is the canonical nutrition shape returned by every
// lookup path. Nutrient values are strings carrying numeric-with-unit
// text per 100g.
type NutritionRecord struct {
	FoodItem           string `json:"food_item"`
	Summary            string `json:"summary"`
	Calories           string `json:"calories"`
	Protein            string `json:"protein"`
	Carbohydrates      string `json:"carbohydrates"`
	Fats               string `json:"fats"`
	Fiber              string `json:"fiber"`
	Sugar              string `json:"sugar"`
	HealthRating       string `json:"health_rating"`
	AverageServingSize string `json:"average_serving_size"`
	CaloriesPerServing string `json:"calories_per_serving"`
	ServingNotes       string `json:"serving_notes"`
	Nutriscore         string `json:"nutriscore"`
	Ingredients        string `json:"ingredients"`
}

// PlaceholderRecord returns a fully placeholder-filled record for the
// given food item. Used as the degraded-success fallback when a model
// returns no structured payload.
func PlaceholderRecord(foodItem string) NutritionRecord {
	return NutritionRecord{
		FoodItem:           foodItem,
		Summary:            PlaceholderValue,
		Calories:           PlaceholderValue,
		Protein:            PlaceholderValue,
		Carbohydrates:      PlaceholderValue,
		Fats:               PlaceholderValue,
		Fiber:              PlaceholderValue,
		Sugar:              PlaceholderValue,
		HealthRating:       PlaceholderRating,
		AverageServingSize: PlaceholderValue,
		CaloriesPerServing: PlaceholderValue,
		ServingNotes:       PlaceholderValue,
		Nutriscore:         PlaceholderValue,
		Ingredients:        PlaceholderValue,
	}
}

// FillPlaceholders replaces any empty field with its placeholder so the
// record invariant holds even for partially filled upstream payloads.
func (r *NutritionRecord) FillPlaceholders() {
	for _, f := range []*string{
		&r.Summary, &r.Calories, &r.Protein, &r.Carbohydrates,
		&r.Fats, &r.Fiber, &r.Sugar,
		&r.AverageServingSize, &r.CaloriesPerServing, &r.ServingNotes,
		&r.Nutriscore, &r.Ingredients,
	} {
		if *f == "" {
			*f = PlaceholderValue
		}
	}
	if r.HealthRating == "" {
		r.HealthRating = PlaceholderRating
	}
}

// ClassificationResult is the top prediction of an image classifier.
// Confidence is 0 when the upstream shape omits a score.
type ClassificationResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}
