package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSubMish/nutrify-v2-sub000/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func meal(title, mealType string, day time.Time, start string) models.Meal {
	return models.Meal{Title: title, Type: mealType, Date: day, StartTime: start, EndTime: start}
}

func TestSlotForContainment(t *testing.T) {
	slots := DefaultSlots()

	// off-boundary start lands in the containing slot, not dropped
	slot, ok := SlotFor("08:15", slots)
	require.True(t, ok)
	assert.Equal(t, "08:00", slot)

	// exact boundary
	slot, ok = SlotFor("08:00", slots)
	require.True(t, ok)
	assert.Equal(t, "08:00", slot)

	// final slot is open-ended: anything after 21:30 is absorbed there
	slot, ok = SlotFor("23:45", slots)
	require.True(t, ok)
	assert.Equal(t, "21:30", slot)

	// before the grid opens there is no containing slot
	_, ok = SlotFor("05:10", slots)
	assert.False(t, ok)

	// malformed time
	_, ok = SlotFor("8am", slots)
	assert.False(t, ok)
}

func TestForDay(t *testing.T) {
	slots := DefaultSlots()
	d1 := date(2025, 3, 1)
	d2 := date(2025, 3, 2)

	meals := []models.Meal{
		meal("oats", "breakfast", d1, "08:15"),
		meal("salad", "lunch", d1, "12:30"),
		meal("toast", "breakfast", d2, "08:00"),
	}

	got := ForDay(meals, d1, slots)
	require.Len(t, got["08:00"], 1)
	assert.Equal(t, "oats", got["08:00"][0].Title)
	require.Len(t, got["12:30"], 1)
	assert.Equal(t, "salad", got["12:30"][0].Title)

	// the other day's meal never shows up, whatever its time
	for slot, ms := range got {
		for _, m := range ms {
			assert.NotEqual(t, "toast", m.Title, "slot %s", slot)
		}
	}
}

func TestForDayStableOrder(t *testing.T) {
	slots := DefaultSlots()
	d := date(2025, 3, 1)
	meals := []models.Meal{
		meal("first", "snack", d, "10:00"),
		meal("second", "snack", d, "10:10"),
		meal("third", "snack", d, "10:20"),
	}
	got := ForDay(meals, d, slots)
	require.Len(t, got["10:00"], 3)
	assert.Equal(t, "first", got["10:00"][0].Title)
	assert.Equal(t, "second", got["10:00"][1].Title)
	assert.Equal(t, "third", got["10:00"][2].Title)
}

func TestForWeekExcludesPrecedingDays(t *testing.T) {
	slots := DefaultSlots()
	weekStart := date(2025, 3, 2) // Sunday

	meals := []models.Meal{
		meal("saturday dinner", "dinner", date(2025, 3, 1), "19:00"),
		meal("sunday lunch", "lunch", weekStart, "12:00"),
		meal("next sunday", "lunch", date(2025, 3, 9), "12:00"),
	}

	got := ForWeek(meals, weekStart, slots)
	require.Len(t, got, 7)

	require.Contains(t, got, "2025-03-02")
	require.Len(t, got["2025-03-02"]["12:00"], 1)
	assert.Equal(t, "sunday lunch", got["2025-03-02"]["12:00"][0].Title)

	// the preceding Saturday and the following week are both out
	assert.NotContains(t, got, "2025-03-01")
	assert.NotContains(t, got, "2025-03-09")
}

func TestTypeFilterCommutesWithDayFilter(t *testing.T) {
	slots := DefaultSlots()
	d := date(2025, 3, 1)
	meals := []models.Meal{
		meal("oats", "breakfast", d, "08:00"),
		meal("salad", "lunch", d, "12:00"),
		meal("soup", "lunch", date(2025, 3, 2), "12:00"),
		meal("curry", "dinner", d, "19:00"),
	}

	typeFirst := ForDay(FilterType(meals, "lunch"), d, slots)

	dayFirst := make(map[string][]models.Meal)
	for slot, ms := range ForDay(meals, d, slots) {
		if kept := FilterType(ms, "lunch"); len(kept) > 0 {
			dayFirst[slot] = kept
		}
	}

	assert.Equal(t, dayFirst, typeFirst)
	require.Len(t, typeFirst["12:00"], 1)
	assert.Equal(t, "salad", typeFirst["12:00"][0].Title)
}

func TestFilterTypeEmptyKeepsAll(t *testing.T) {
	meals := []models.Meal{
		meal("a", "breakfast", date(2025, 3, 1), "08:00"),
		meal("b", "lunch", date(2025, 3, 1), "12:00"),
	}
	assert.Equal(t, meals, FilterType(meals, ""))
	assert.Len(t, FilterType(meals, "Lunch"), 1) // case-insensitive
}
