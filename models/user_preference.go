package models

import "gorm.io/gorm"

// UserPreference is the single schema shared by the read and write paths.
// Both sides marshal through this struct, so a field renamed here is renamed
// everywhere at once. SchemaVersion is bumped on incompatible changes.
type UserPreference struct {
	gorm.Model
	UserID        uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	SchemaVersion int    `gorm:"default:1" json:"schema_version"`
	DietType      string `gorm:"size:32" json:"diet_type"` // e.g. "vegetarian", "keto"
	Restrictions  string `gorm:"type:text" json:"restrictions"` // comma-separated
	Allergies     string `gorm:"type:text" json:"allergies"`    // comma-separated
	MealReminder  bool   `json:"meal_reminder"`
	WaterGoal     float64 `json:"water_goal"` // glasses/day
}
