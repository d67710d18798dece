package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is one planned or logged eating occasion on the calendar.
// StartTime/EndTime are zero-padded "HH:MM" strings so they map directly
// onto the half-hour slot grid.
type Meal struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Type      string    `gorm:"size:16" json:"type"` // breakfast|lunch|dinner|snack
	Date      time.Time `gorm:"index;not null" json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
}
