package services

import (
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/config"
	"github.com/TheSubMish/nutrify-v2-sub000/models"

	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// waterColumns builds the Assign payload as a map: struct-based assigns make
// GORM skip zero fields, which would drop a reset to 0 glasses on the update
// path.
func waterColumns(glasses float64) map[string]interface{} {
	return map[string]interface{}{"glasses": glasses}
}

// UpsertWaterIntake sets today's glass counter for the user.
func UpsertWaterIntake(userID uint, glasses float64) error {
	start := dayStartLocal(time.Now())

	entry := models.WaterIntake{
		UserID:  userID,
		Date:    start,
		Glasses: glasses,
	}

	// Upsert by (user_id, date @ local midnight)
	return config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(waterColumns(glasses)).
		FirstOrCreate(&entry).Error
}

func GetWaterIntake(userID uint) (float64, error) {
	return GetWaterIntakeByDate(userID, time.Now())
}

func GetWaterIntakeByDate(userID uint, date time.Time) (float64, error) {
	start := dayStartLocal(date)

	var entry models.WaterIntake
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&entry).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return entry.Glasses, nil
}
