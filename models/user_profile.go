package models

import (
	"gorm.io/gorm"
)

// Per-user fitness attributes, one row per user.
type UserProfile struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null"`
	Weight        float64 `gorm:"not null"`
	Height        float64 `gorm:"not null"`
	BodyType      string  `gorm:"size:30;not null"`
	FitnessGoal   string  `gorm:"size:50;not null"`
	ActivityLevel string  `gorm:"size:50;not null"`
}
