package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"size:50;not null"`
	Email    string `gorm:"size:100;uniqueIndex;not null"`
	Password string `gorm:"size:255;not null"`

	Profile *UserProfile `gorm:"constraint:OnDelete:CASCADE"`
	Entries []FoodEntry  `gorm:"constraint:OnDelete:CASCADE"`
}
