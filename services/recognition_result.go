package services

// UnknownFood is the sentinel food name for images no classifier could
// identify. It is a valid terminal outcome, not an error.
const UnknownFood = "unknown"

// RecognitionResult is what either classifier produces for one upload.
// FoodName is always set (UnknownFood at worst), Calories is nil exactly
// when the name has no calorie reference, and Confidence is 0 for unknown
// food and the producing classifier's certainty otherwise.
type RecognitionResult struct {
	FoodName   string   `json:"food_name"`
	Calories   *float64 `json:"calories"`
	Confidence float64  `json:"confidence"`
}

// UnknownResult returns the result used when no classifier recognizes the image.
func UnknownResult() RecognitionResult {
	return RecognitionResult{FoodName: UnknownFood, Calories: nil, Confidence: 0.0}
}
