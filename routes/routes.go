package routes

import (
	"net/http"

	"github.com/NutritionScanner/nutrivision-backend/config"
	"github.com/NutritionScanner/nutrivision-backend/controllers"
	"github.com/NutritionScanner/nutrivision-backend/middlewares"
	"github.com/NutritionScanner/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers. The summarizer is passed
// in so main owns the Gemini client lifecycle and tests can run the
// router against a fake.
func SetupRouter(cfg *config.AppConfig, db *gorm.DB, gemini services.Summarizer) *gin.Engine {
	r := gin.Default()

	hub := services.NewDetectionHub()

	foodClient := services.NewInferenceClient(services.FoodModelURL, cfg.HuggingFaceToken)
	fruitVegClient := services.NewInferenceClient(services.FruitVegModelURL, cfg.HuggingFaceToken)
	detection := services.NewFoodDetectionService(foodClient, fruitVegClient, gemini, hub)
	nutrition := services.NewNutritionService(services.NewOpenFoodFactsService(), gemini)

	authCtl := controllers.NewAuthController(services.NewAuthService(db, cfg.JWTSecret))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	detectionCtl := controllers.NewFoodDetectionController(detection)
	nutritionCtl := controllers.NewNutritionController(nutrition)
	summaryCtl := controllers.NewAISummaryController(gemini)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to NutriVision API"})
	})

	fd := r.Group("/food-detection")
	{
		fd.POST("/food-item", detectionCtl.ClassifyFoodItem)
		fd.POST("/fruit-vegetable", detectionCtl.ClassifyFruitVegetable)
	}

	r.GET("/nutrition/:food_item_or_barcode", nutritionCtl.FetchNutrition)
	r.GET("/ai-summary/:food_item", summaryCtl.GetFoodSummary)

	r.POST("/register", authCtl.Register)
	r.POST("/login", authCtl.Login)
	r.GET("/user", userCtl.GetUser)

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		ws.GET("/detections", realtimeCtl.DetectionsWS)
	}

	return r
}
