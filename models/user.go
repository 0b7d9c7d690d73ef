package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	// Optional profile fields collected at registration.
	Gender            string
	Age               int
	HeightCM          float64
	CurrentWeight     float64
	GoalWeight        float64
	GoalType          string
	WeightChangeSpeed float64
}
