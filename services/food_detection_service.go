package services

import (
	"context"
	"fmt"
	"os"

	"github.com/NutritionScanner/nutrivision-backend/models"
	"github.com/NutritionScanner/nutrivision-backend/utils"
)

// FoodDetectionService classifies an uploaded image with the matching
// hosted model and enriches the predicted label into a full nutrition
// record.
type FoodDetectionService struct {
	food     *InferenceClient
	fruitVeg *InferenceClient
	gemini   Summarizer
	hub      *DetectionHub
}

// NewFoodDetectionService wires the two model clients and the
// summarizer. hub may be nil when no realtime feed is attached.
func NewFoodDetectionService(food, fruitVeg *InferenceClient, gemini Summarizer, hub *DetectionHub) *FoodDetectionService {
	return &FoodDetectionService{food: food, fruitVeg: fruitVeg, gemini: gemini, hub: hub}
}

// DetectFoodItem classifies a prepared-food image.
func (s *FoodDetectionService) DetectFoodItem(ctx context.Context, imagePath string) (models.NutritionRecord, error) {
	return s.detect(ctx, s.food, imagePath)
}

// DetectFruitVegetable classifies a fruit or vegetable image.
func (s *FoodDetectionService) DetectFruitVegetable(ctx context.Context, imagePath string) (models.NutritionRecord, error) {
	return s.detect(ctx, s.fruitVeg, imagePath)
}

func (s *FoodDetectionService) detect(ctx context.Context, client *InferenceClient, imagePath string) (models.NutritionRecord, error) {
	var zero models.NutritionRecord

	image, err := os.ReadFile(imagePath)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, ErrImageNotFound
		}
		return zero, fmt.Errorf("failed to read image: %w", err)
	}

	result, err := client.Classify(ctx, image, utils.ContentTypeForImage(imagePath))
	if err != nil {
		return zero, err
	}

	rec, err := s.gemini.Summarize(ctx, result.Label)
	if err != nil {
		return zero, err
	}

	if s.hub != nil {
		s.hub.Broadcast(DetectionEvent{
			Kind:       "detection.completed",
			Label:      result.Label,
			Confidence: result.Confidence,
			Record:     rec,
		})
	}
	return rec, nil
}
