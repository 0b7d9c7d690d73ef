package controllers

import (
	"errors"
	"net/http"

	"github.com/NutritionScanner/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{svc: svc}
}

// GET /nutrition/:food_item_or_barcode
//
// Barcodes go to the packaged-food database, everything else to the AI
// summary.
func (nc *NutritionController) FetchNutrition(c *gin.Context) {
	query := c.Param("food_item_or_barcode")

	rec, err := nc.svc.Lookup(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, services.ErrIncompleteData):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Incomplete data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}
