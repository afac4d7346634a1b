package models

import (
	"time"

	"gorm.io/gorm"
)

// One recognized meal photo. Rows are insert-only: entries are never
// updated after creation, and they go away only when the owning user does.
type FoodEntry struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	ImagePath  string `gorm:"size:255;not null"`
	FoodName   string `gorm:"size:150;not null"`
	Calories   *float64 // NULL when the label has no calorie reference
	Confidence float64
	CreatedOn  time.Time `gorm:"index"`
}
