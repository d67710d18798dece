package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsStandardGrid(t *testing.T) {
	slots, err := Slots(6, 22, 30)
	require.NoError(t, err)

	assert.Len(t, slots, 33)
	assert.Equal(t, "06:00", slots[0])
	assert.Equal(t, "21:30", slots[len(slots)-1])

	// strictly increasing, no gaps
	for i := 1; i < len(slots); i++ {
		prev, ok := parseHHMM(slots[i-1])
		require.True(t, ok)
		cur, ok := parseHHMM(slots[i])
		require.True(t, ok)
		assert.Equal(t, prev+30, cur, "slot %d", i)
	}
}

func TestSlotsZeroPadding(t *testing.T) {
	slots, err := Slots(6, 10, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"06:00", "06:30", "07:00", "07:30", "08:00", "08:30", "09:00", "09:30"}, slots)
}

func TestSlotsInvalidRange(t *testing.T) {
	cases := []struct {
		name                string
		start, end, interval int
	}{
		{"end equals start", 8, 8, 30},
		{"end before start", 22, 6, 30},
		{"zero interval", 6, 22, 0},
		{"negative interval", 6, 22, -15},
		{"end past midnight", 6, 25, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Slots(tc.start, tc.end, tc.interval)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots()
	assert.Len(t, slots, 33)
	assert.Equal(t, "06:00", slots[0])
	assert.Equal(t, "21:30", slots[32])
}
