// services/goal_service.go
package services

import (
	"errors"

	"github.com/TheSubMish/nutrify-v2-sub000/config"
	"github.com/TheSubMish/nutrify-v2-sub000/models"

	"gorm.io/gorm"
)

// UpsertGoal keeps a single goal row per user; the latest write wins.
func UpsertGoal(userID uint, targetWeight, weeklyChange, calories, protein, carbs, fat float64) (*models.UserGoal, error) {
	var goal models.UserGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.UserGoal{
			UserID:       userID,
			TargetWeight: targetWeight,
			WeeklyChange: weeklyChange,
			Calories:     calories,
			Protein:      protein,
			Carbs:        carbs,
			Fat:          fat,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.TargetWeight = targetWeight
	goal.WeeklyChange = weeklyChange
	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetGoal returns the user's goal, or an empty goal when none is set yet.
func GetGoal(userID uint) (*models.UserGoal, error) {
	var goal models.UserGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserGoal{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
