package services

import (
	"gorm.io/gorm"

	"github.com/NutritionScanner/nutrivision-backend/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetUserProfile returns the account fields without the password hash.
// Lookup is by username only with no ownership check; any caller can
// fetch any profile by name. Known gap carried over until the access
// model is decided.
func (s *UserService) GetUserProfile(username string) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	return map[string]interface{}{
		"id":                  user.ID,
		"username":            user.Username,
		"gender":              user.Gender,
		"age":                 user.Age,
		"height_cm":           user.HeightCM,
		"current_weight":      user.CurrentWeight,
		"goal_weight":         user.GoalWeight,
		"goal_type":           user.GoalType,
		"weight_change_speed": user.WeightChangeSpeed,
	}, nil
}
