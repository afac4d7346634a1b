package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Weight        float64 `json:"weight" binding:"required"`
	Height        float64 `json:"height" binding:"required"`
	BodyType      string  `json:"body_type" binding:"required"`
	FitnessGoal   string  `json:"fitness_goal" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
}

func GetUserProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, errors.New("profile not found")
	}
	return &profile, nil
}

// UpsertUserProfile creates the user's profile if it does not exist yet,
// otherwise updates it in place. Returns whether a new profile was created.
func UpsertUserProfile(userID uint, input ProfileInput) (bool, error) {
	var profile models.UserProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{
			UserID:        userID,
			Weight:        input.Weight,
			Height:        input.Height,
			BodyType:      input.BodyType,
			FitnessGoal:   input.FitnessGoal,
			ActivityLevel: input.ActivityLevel,
		}
		if err := config.DB.Create(&profile).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	profile.Weight = input.Weight
	profile.Height = input.Height
	profile.BodyType = input.BodyType
	profile.FitnessGoal = input.FitnessGoal
	profile.ActivityLevel = input.ActivityLevel

	if err := config.DB.Save(&profile).Error; err != nil {
		return false, err
	}
	return false, nil
}
