package utils

// CalorieEntry pairs a canonical food key with its expected calories.
type CalorieEntry struct {
	Key      string
	Calories float64
}

// calorieTable is the built-in calorie reference for common foods. It is a
// slice rather than a map because definition order is part of the contract:
// the filename heuristic scans it in order and the first matching key wins.
var calorieTable = []CalorieEntry{
	{"apple", 95.0},
	{"banana", 105.0},
	{"pizza", 285.0},
	{"sandwich", 250.0},
	{"salad", 150.0},
	{"burger", 354.0},
	{"rice", 206.0},
	{"egg", 78.0},
}

// LookupCalories returns the reference calories for a canonical food key.
func LookupCalories(key string) (float64, bool) {
	for _, e := range calorieTable {
		if e.Key == key {
			return e.Calories, true
		}
	}
	return 0, false
}

// CalorieEntries returns the reference table in definition order.
// Callers must not mutate the returned slice.
func CalorieEntries() []CalorieEntry {
	return calorieTable
}
