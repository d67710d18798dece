package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/models"
)

const dayKeyFormat = "2006-01-02"

// SlotFor returns the slot label whose range contains the given "HH:MM"
// start time. Membership is [slot, nextSlot); the final slot is open-ended,
// so anything starting at or after it is absorbed there. Containment, not
// exact label equality, is the rule: a meal at 08:15 lands in 08:00.
func SlotFor(start string, slots []string) (string, bool) {
	if len(slots) == 0 {
		return "", false
	}
	m, ok := parseHHMM(start)
	if !ok {
		return "", false
	}
	for i, s := range slots {
		lo, _ := parseHHMM(s)
		if i == len(slots)-1 {
			if m >= lo {
				return s, true
			}
			return "", false
		}
		hi, _ := parseHHMM(slots[i+1])
		if m >= lo && m < hi {
			return s, true
		}
	}
	return "", false
}

// ForDay partitions the meals falling on day into their slots. Order within
// a slot follows input order. Meals starting before the first slot are not
// placed.
func ForDay(meals []models.Meal, day time.Time, slots []string) map[string][]models.Meal {
	out := make(map[string][]models.Meal, len(slots))
	for _, m := range meals {
		if !sameDay(m.Date, day) {
			continue
		}
		if slot, ok := SlotFor(m.StartTime, slots); ok {
			out[slot] = append(out[slot], m)
		}
	}
	return out
}

// ForWeek partitions meals over the seven days starting at weekStart into a
// day-keyed ("2006-01-02") map of slot assignments. Meals dated before
// weekStart or on/after weekStart+7d are excluded.
func ForWeek(meals []models.Meal, weekStart time.Time, slots []string) map[string]map[string][]models.Meal {
	out := make(map[string]map[string][]models.Meal, 7)
	for d := 0; d < 7; d++ {
		day := weekStart.AddDate(0, 0, d)
		out[day.Format(dayKeyFormat)] = make(map[string][]models.Meal)
	}
	for _, m := range meals {
		key := m.Date.Format(dayKeyFormat)
		dayMap, ok := out[key]
		if !ok {
			continue
		}
		if slot, ok := SlotFor(m.StartTime, slots); ok {
			dayMap[slot] = append(dayMap[slot], m)
		}
	}
	return out
}

// FilterType keeps only meals of the given type ("" keeps everything).
// Independent of the day/slot filters and commutes with them.
func FilterType(meals []models.Meal, mealType string) []models.Meal {
	if mealType == "" {
		return meals
	}
	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if strings.EqualFold(m.Type, mealType) {
			out = append(out, m)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func parseHHMM(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
