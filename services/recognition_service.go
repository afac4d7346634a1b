package services

import (
	"log"
)

// RecognitionService decides between the model-backed classifier and the
// filename heuristic. Recognition never fails its caller: whatever goes
// wrong on the model path, the heuristic produces a usable (possibly
// "unknown") result, so logging a meal never depends on model availability.
type RecognitionService struct {
	model func() (imageClassifier, error)
}

func NewRecognitionService() *RecognitionService {
	return &RecognitionService{model: sharedFoodClassifier}
}

// Recognize classifies the stored image at imagePath.
func (s *RecognitionService) Recognize(imagePath string) RecognitionResult {
	clf, err := s.model()
	if err != nil {
		// Model permanently disabled (construction failed); already logged once.
		return ClassifyByFilename(imagePath)
	}

	result, err := clf.Classify(imagePath)
	if err != nil {
		// Per-call inference failure, the model stays available for later calls.
		log.Printf("model inference failed for %s, using filename heuristic: %v", imagePath, err)
		return ClassifyByFilename(imagePath)
	}

	return result
}
