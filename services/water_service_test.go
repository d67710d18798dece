package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The upsert payload must be a map so a reset to zero glasses survives the
// update path; GORM drops zero-valued struct fields from Assign.
func TestWaterColumnsKeepsZero(t *testing.T) {
	cols := waterColumns(0)
	glasses, ok := cols["glasses"]
	assert.True(t, ok, "glasses column must always be present")
	assert.Equal(t, 0.0, glasses)

	assert.Equal(t, 8.0, waterColumns(8)["glasses"])
}
