package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 78)
	require.NoError(t, err)
	assert.InDelta(t, 25.5, bmi, 0.05)
	assert.Equal(t, "Overweight", BMICategory(bmi))
}

func TestCalculateBMIRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name           string
		height, weight float64
	}{
		{"height too small", 10, 78},
		{"height too large", 400, 78},
		{"weight zero", 175, 0},
		{"weight too large", 175, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateBMI(tc.height, tc.weight)
			require.Error(t, err)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Reason)
		})
	}
}

func TestBMICategoryThresholds(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Normal weight", BMICategory(24.9))
	assert.Equal(t, "Overweight", BMICategory(25.0))
	assert.Equal(t, "Overweight", BMICategory(29.9))
	assert.Equal(t, "Obese", BMICategory(30.0))
}

func TestIdealWeight(t *testing.T) {
	// 175 cm = 68.9 in, 8.9 in over five feet
	male, err := IdealWeight(175, "male")
	require.NoError(t, err)
	assert.InDelta(t, 50.0+2.3*(175/2.54-60), male, 0.01)

	female, err := IdealWeight(175, "female")
	require.NoError(t, err)
	assert.InDelta(t, 45.5+2.3*(175/2.54-60), female, 0.01)
	assert.Less(t, female, male)

	// unknown selector takes the female branch
	other, err := IdealWeight(175, "")
	require.NoError(t, err)
	assert.Equal(t, female, other)

	_, err = IdealWeight(20, "male")
	assert.Error(t, err)
}

func TestCheckMacroSplit(t *testing.T) {
	ok := CheckMacroSplit(30, 40, 30)
	assert.Equal(t, 100.0, ok.Total)
	assert.True(t, ok.Balanced)

	short := CheckMacroSplit(30, 40, 20)
	assert.Equal(t, 90.0, short.Total)
	assert.False(t, short.Balanced)
}
