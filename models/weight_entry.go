package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightEntry is append-only; history is read in recorded order.
type WeightEntry struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	RecordedAt time.Time `gorm:"index;not null" json:"recorded_at"`
	WeightKg   float64   `gorm:"not null" json:"weight_kg"`
}
