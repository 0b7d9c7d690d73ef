package main

import (
	"context"
	"log"

	"github.com/NutritionScanner/nutrivision-backend/config"
	"github.com/NutritionScanner/nutrivision-backend/routes"
	"github.com/NutritionScanner/nutrivision-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	config.InitDB()

	gemini, err := services.NewGeminiService(context.Background(), cfg.GoogleProjectID, cfg.GoogleLocation)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}
	defer gemini.Close()

	r := routes.SetupRouter(cfg, config.DB, gemini)
	r.Run(":8080")
}
