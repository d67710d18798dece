package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSubMish/nutrify-v2-sub000/models"
	"github.com/TheSubMish/nutrify-v2-sub000/schedule"
	"github.com/TheSubMish/nutrify-v2-sub000/utils"
)

func validInput() MealInput {
	return MealInput{
		Title:     "grilled chicken",
		Type:      "lunch",
		Date:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "12:30",
		EndTime:   "13:00",
		Calories:  450,
		Protein:   38,
		Carbs:     20,
		Fat:       22,
	}
}

func TestValidateMealInput(t *testing.T) {
	assert.NoError(t, validateMealInput(validInput()))

	cases := []struct {
		name   string
		mutate func(*MealInput)
	}{
		{"empty title", func(in *MealInput) { in.Title = "" }},
		{"unknown type", func(in *MealInput) { in.Type = "brunch" }},
		{"zero date", func(in *MealInput) { in.Date = time.Time{} }},
		{"bad start time", func(in *MealInput) { in.StartTime = "noonish" }},
		{"bad end time", func(in *MealInput) { in.EndTime = "25:99" }},
		{"negative calories", func(in *MealInput) { in.Calories = -1 }},
		{"negative protein", func(in *MealInput) { in.Protein = -0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			err := validateMealInput(in)

			var verr *utils.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

// A relocated meal must land on its destination day view even when the
// server's zone is not UTC: the destination day arrives as a UTC-midnight
// parse of "YYYY-MM-DD" while stored meals sit at local midnight.
func TestRelocatedMealAppearsOnDestinationDayView(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	restore := time.Local
	time.Local = loc
	defer func() { time.Local = restore }()

	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	meal := models.Meal{
		UserID:    1,
		Title:     "oatmeal",
		Type:      "breakfast",
		Date:      dayStartLocal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		StartTime: "07:00",
		EndTime:   "07:30",
	}

	moved := schedule.Relocate(meal, dayStartLocal(day), "09:00")

	grid := schedule.ForDay([]models.Meal{moved}, dayStartLocal(day), schedule.DefaultSlots())
	if assert.Len(t, grid["09:00"], 1) {
		assert.Equal(t, "oatmeal", grid["09:00"][0].Title)
	}
}

func TestValidSlot(t *testing.T) {
	assert.True(t, validSlot("06:00"))
	assert.True(t, validSlot("21:30"))
	assert.False(t, validSlot("22:00")) // off the grid
	assert.False(t, validSlot("09:15")) // not a slot boundary
	assert.False(t, validSlot(""))
}
