package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCalories(t *testing.T) {
	cal, ok := LookupCalories("pizza")
	assert.True(t, ok)
	assert.InDelta(t, 285.0, cal, 0.001)

	cal, ok = LookupCalories("egg")
	assert.True(t, ok)
	assert.InDelta(t, 78.0, cal, 0.001)

	_, ok = LookupCalories("french_fries")
	assert.False(t, ok)

	_, ok = LookupCalories("")
	assert.False(t, ok)
}

// The table's definition order is a contract: the filename heuristic scans
// it in order and the first matching key wins.
func TestCalorieEntriesOrder(t *testing.T) {
	keys := make([]string, 0, len(CalorieEntries()))
	for _, e := range CalorieEntries() {
		keys = append(keys, e.Key)
	}

	assert.Equal(t, []string{"apple", "banana", "pizza", "sandwich", "salad", "burger", "rice", "egg"}, keys)
}

func TestCalorieEntriesConsistentWithLookup(t *testing.T) {
	for _, e := range CalorieEntries() {
		cal, ok := LookupCalories(e.Key)
		assert.True(t, ok, e.Key)
		assert.Equal(t, e.Calories, cal, e.Key)
	}
}
