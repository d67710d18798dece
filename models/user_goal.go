package models

import "gorm.io/gorm"

// UserGoal holds each user's targets. One row per user; latest write wins.
type UserGoal struct {
	gorm.Model
	UserID       uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	TargetWeight float64 `json:"target_weight"` // kg
	WeeklyChange float64 `json:"weekly_change"` // kg/week, negative = loss
	Calories     float64 `json:"calories"`      // kcal/day
	Protein      float64 `json:"protein"`       // g/day
	Carbs        float64 `json:"carbs"`         // g/day
	Fat          float64 `json:"fat"`           // g/day
}
