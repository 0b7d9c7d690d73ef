package controllers

import (
	"net/http"

	"github.com/NutritionScanner/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
)

type AISummaryController struct {
	gemini services.Summarizer
}

func NewAISummaryController(gemini services.Summarizer) *AISummaryController {
	return &AISummaryController{gemini: gemini}
}

// GET /ai-summary/:food_item
func (ac *AISummaryController) GetFoodSummary(c *gin.Context) {
	foodItem := c.Param("food_item")

	rec, err := ac.gemini.Summarize(c.Request.Context(), foodItem)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}
