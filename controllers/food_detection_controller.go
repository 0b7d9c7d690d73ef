package controllers

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/NutritionScanner/nutrivision-backend/models"
	"github.com/NutritionScanner/nutrivision-backend/services"
	"github.com/NutritionScanner/nutrivision-backend/utils"

	"github.com/gin-gonic/gin"
)

const uploadDir = "static"

type FoodDetectionController struct {
	svc *services.FoodDetectionService
}

func NewFoodDetectionController(svc *services.FoodDetectionService) *FoodDetectionController {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("[WARN] could not create upload dir %s: %v", uploadDir, err)
	}
	return &FoodDetectionController{svc: svc}
}

// POST /food-detection/food-item (multipart "file")
func (fc *FoodDetectionController) ClassifyFoodItem(c *gin.Context) {
	fc.classify(c, fc.svc.DetectFoodItem)
}

// POST /food-detection/fruit-vegetable (multipart "file")
func (fc *FoodDetectionController) ClassifyFruitVegetable(c *gin.Context) {
	fc.classify(c, fc.svc.DetectFruitVegetable)
}

func (fc *FoodDetectionController) classify(c *gin.Context, detect func(ctx context.Context, path string) (models.NutritionRecord, error)) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	// Scratch copy on disk for the duration of the request only.
	path := utils.ScratchImagePath(uploadDir, file.Filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload: " + err.Error()})
		return
	}
	defer os.Remove(path)

	rec, err := detect(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}
