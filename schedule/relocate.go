package schedule

import (
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/models"
)

// Relocate returns a copy of the meal moved to the destination day and slot.
// Both start and end collapse to the slot boundary, so the original duration
// is not preserved. Persisting the result is the caller's job.
func Relocate(m models.Meal, day time.Time, slot string) models.Meal {
	moved := m
	moved.Date = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	moved.StartTime = slot
	moved.EndTime = slot
	return moved
}
