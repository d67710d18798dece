package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TheSubMish/nutrify-v2-sub000/models"
)

func TestRelocate(t *testing.T) {
	orig := models.Meal{
		Title:     "salmon bowl",
		Type:      "dinner",
		Date:      date(2025, 3, 1),
		StartTime: "18:00",
		EndTime:   "18:45",
		Calories:  620,
	}

	dest := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC) // time-of-day is discarded
	moved := Relocate(orig, dest, "09:00")

	assert.Equal(t, date(2025, 3, 5), moved.Date)
	assert.Equal(t, "09:00", moved.StartTime)
	// duration collapses: end equals start after a move
	assert.Equal(t, "09:00", moved.EndTime)

	// everything else carries over
	assert.Equal(t, orig.Title, moved.Title)
	assert.Equal(t, orig.Type, moved.Type)
	assert.Equal(t, orig.Calories, moved.Calories)

	// pure: the input is untouched
	assert.Equal(t, "18:00", orig.StartTime)
	assert.Equal(t, "18:45", orig.EndTime)
	assert.Equal(t, date(2025, 3, 1), orig.Date)
}
