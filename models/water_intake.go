package models

import (
	"time"

	"gorm.io/gorm"
)

type WaterIntake struct {
	gorm.Model
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	Date    time.Time `gorm:"index;not null" json:"date"` // local midnight
	Glasses float64   `json:"glasses"`
}
