package services

import (
	"time"

	"backend/config"
	"backend/models"
)

// RecordEntry persists one recognition result as an immutable entry owned
// by userID. The id is server-assigned and created_on is the current UTC
// time; nothing updates the row afterwards.
func RecordEntry(userID uint, imageRef string, result RecognitionResult) (*models.FoodEntry, error) {
	entry := &models.FoodEntry{
		UserID:     userID,
		ImagePath:  imageRef,
		FoodName:   result.FoodName,
		Calories:   result.Calories,
		Confidence: result.Confidence,
		CreatedOn:  time.Now().UTC(),
	}

	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntriesForUser returns all of one user's entries, most recent first.
// Entries sharing a timestamp come back in insertion order; ids are
// monotonic, so the secondary sort keeps the listing stable.
func ListEntriesForUser(userID uint) ([]models.FoodEntry, error) {
	entries := []models.FoodEntry{}
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_on DESC, id ASC").
		Find(&entries).Error
	return entries, err
}
