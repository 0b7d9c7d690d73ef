package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/NutritionScanner/nutrivision-backend/models"
	"github.com/NutritionScanner/nutrivision-backend/utils"
)

// RegisterInput carries credentials plus the optional profile fields
// collected at registration.
type RegisterInput struct {
	Username          string  `json:"username" binding:"required"`
	Password          string  `json:"password" binding:"required"`
	Gender            string  `json:"gender"`
	Age               int     `json:"age"`
	HeightCM          float64 `json:"height_cm"`
	CurrentWeight     float64 `json:"current_weight"`
	GoalWeight        float64 `json:"goal_weight"`
	GoalType          string  `json:"goal_type"`
	WeightChangeSpeed float64 `json:"weight_change_speed"`
}

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret)}
}

// Register hashes the password and inserts the account inside one
// transaction, so a failed insert leaves no partial row. The plaintext
// password is never stored or logged.
func (s *AuthService) Register(input RegisterInput) error {
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:          input.Username,
		Password:          hashed,
		Gender:            input.Gender,
		Age:               input.Age,
		HeightCM:          input.HeightCM,
		CurrentWeight:     input.CurrentWeight,
		GoalWeight:        input.GoalWeight,
		GoalType:          input.GoalType,
		WeightChangeSpeed: input.WeightChangeSpeed,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login verifies credentials and issues a 7-day session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.Username, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
