package config

import (
	"fmt"
	"log"
	"os"

	"github.com/NutritionScanner/nutrivision-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// AppConfig carries every secret the services need. Loaded once at
// startup so a missing credential kills the process before it serves
// traffic instead of failing on the first upstream call.
type AppConfig struct {
	HuggingFaceToken string
	GoogleProjectID  string
	GoogleLocation   string
	JWTSecret        string
}

// Load reads .env (when present) and validates the required secrets.
func Load() (*AppConfig, error) {
	// .env is optional in deployed environments, the variables may
	// already be set on the process.
	_ = godotenv.Load()

	cfg := &AppConfig{
		HuggingFaceToken: os.Getenv("HUGGINGFACE_TOKEN"),
		GoogleProjectID:  os.Getenv("GOOGLE_PROJECT_ID"),
		GoogleLocation:   os.Getenv("GOOGLE_LOCATION"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	missing := []string{}
	if cfg.HuggingFaceToken == "" {
		missing = append(missing, "HUGGINGFACE_TOKEN")
	}
	if cfg.GoogleProjectID == "" {
		missing = append(missing, "GOOGLE_PROJECT_ID")
	}
	if cfg.GoogleLocation == "" {
		missing = append(missing, "GOOGLE_LOCATION")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %v", missing)
	}

	return cfg, nil
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(&models.User{})
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
