package services

import (
	"errors"

	"github.com/TheSubMish/nutrify-v2-sub000/config"
	"github.com/TheSubMish/nutrify-v2-sub000/models"

	"gorm.io/gorm"
)

// PreferenceInput mirrors models.UserPreference field for field so the read
// and write paths cannot drift apart.
type PreferenceInput struct {
	DietType     string  `json:"diet_type"`
	Restrictions string  `json:"restrictions"`
	Allergies    string  `json:"allergies"`
	MealReminder bool    `json:"meal_reminder"`
	WaterGoal    float64 `json:"water_goal"`
}

func GetPreferences(userID uint) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := config.DB.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserPreference{UserID: userID, SchemaVersion: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func UpdatePreferences(userID uint, input PreferenceInput) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := config.DB.Where("user_id = ?", userID).First(&pref).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pref.UserID = userID
	pref.SchemaVersion = 1
	pref.DietType = input.DietType
	pref.Restrictions = input.Restrictions
	pref.Allergies = input.Allergies
	pref.MealReminder = input.MealReminder
	pref.WaterGoal = input.WaterGoal

	if err := config.DB.Save(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}
