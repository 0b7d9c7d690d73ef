package services

import (
	"context"

	"github.com/NutritionScanner/nutrivision-backend/models"
)

// NutritionService routes a single text query to the right lookup:
// packaged foods carry a barcode, fresh foods get an AI summary. It has
// no retry logic of its own; retries live in the called services.
type NutritionService struct {
	off    *OpenFoodFactsService
	gemini Summarizer
}

func NewNutritionService(off *OpenFoodFactsService, gemini Summarizer) *NutritionService {
	return &NutritionService{off: off, gemini: gemini}
}

// Lookup treats query as a barcode iff it is all digits and longer than
// six characters, otherwise as a free-text food name.
func (s *NutritionService) Lookup(ctx context.Context, query string) (models.NutritionRecord, error) {
	if IsBarcode(query) {
		return s.off.Lookup(ctx, query)
	}
	return s.gemini.Summarize(ctx, query)
}

// IsBarcode reports whether query consists only of decimal digits and
// has more than six of them.
func IsBarcode(query string) bool {
	if len(query) <= 6 {
		return false
	}
	for _, r := range query {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
