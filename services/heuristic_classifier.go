package services

import (
	"path/filepath"
	"strings"

	"backend/utils"
)

// ClassifyByFilename guesses the food from the uploaded file's name. It is
// the fallback path when no model is available or the model fails, so it
// never fails itself: no match is reported as UnknownFood.
//
// The calorie table is scanned in definition order and the first key found
// as a substring wins; that tie-break is part of the table's contract.
func ClassifyByFilename(imagePath string) RecognitionResult {
	fname := strings.ToLower(filepath.Base(imagePath))

	for _, e := range utils.CalorieEntries() {
		if strings.Contains(fname, e.Key) {
			calories := e.Calories
			return RecognitionResult{
				FoodName:   e.Key,
				Calories:   &calories,
				Confidence: 0.5,
			}
		}
	}

	return UnknownResult()
}
