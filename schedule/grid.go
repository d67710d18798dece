package schedule

import (
	"errors"
	"fmt"
)

// Calendar defaults: half-hour slots from 06:00 up to (not including) 22:00.
const (
	DefaultStartHour   = 6
	DefaultEndHour     = 22
	DefaultIntervalMin = 30
)

// ErrInvalidRange means the grid configuration itself is broken. With fixed
// constants it can only fire at startup, so callers treat it as fatal.
var ErrInvalidRange = errors.New("slot grid: end must be after start and interval positive")

// Slots returns the ordered "HH:MM" labels covering [startHour, endHour)
// at the given interval, with no gaps or overlaps.
func Slots(startHour, endHour, intervalMin int) ([]string, error) {
	if endHour <= startHour || intervalMin <= 0 {
		return nil, ErrInvalidRange
	}
	if startHour < 0 || endHour > 24 {
		return nil, ErrInvalidRange
	}

	startMin := startHour * 60
	endMin := endHour * 60
	out := make([]string, 0, (endMin-startMin)/intervalMin)
	for m := startMin; m < endMin; m += intervalMin {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out, nil
}

// DefaultSlots returns the standard 33-slot grid (06:00 … 21:30).
func DefaultSlots() []string {
	slots, err := Slots(DefaultStartHour, DefaultEndHour, DefaultIntervalMin)
	if err != nil {
		panic(err) // unreachable with the constants above
	}
	return slots
}
