package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPctCapsAtHundred(t *testing.T) {
	assert.Equal(t, 50.0, pct(1100, 2200))
	assert.Equal(t, 100.0, pct(3000, 2200))
	assert.Equal(t, 0.0, pct(500, 0), "no goal means no percentage")
}

func TestNutrientProgress(t *testing.T) {
	p := nutrientProgress(123.456, 200)
	assert.Equal(t, 123.46, p["consumed"])
	assert.Equal(t, 200.0, p["goal"])
	assert.Equal(t, 61.73, p["percent"])
}
