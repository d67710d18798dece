// services/meal_service.go
package services

import (
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/models"
	"github.com/TheSubMish/nutrify-v2-sub000/schedule"
	"github.com/TheSubMish/nutrify-v2-sub000/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealInput struct {
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
}

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

func validateMealInput(in MealInput) error {
	if in.Title == "" {
		return &utils.ValidationError{Reason: "title is required"}
	}
	if !mealTypes[in.Type] {
		return &utils.ValidationError{Reason: "type must be one of breakfast, lunch, dinner, snack"}
	}
	if in.Date.IsZero() {
		return &utils.ValidationError{Reason: "date is required"}
	}
	if _, err := time.Parse("15:04", in.StartTime); err != nil {
		return &utils.ValidationError{Reason: "start_time must be HH:MM"}
	}
	if _, err := time.Parse("15:04", in.EndTime); err != nil {
		return &utils.ValidationError{Reason: "end_time must be HH:MM"}
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return &utils.ValidationError{Reason: "nutrition values must be non-negative"}
	}
	return nil
}

func (s *MealService) AddMeal(userID uint, in MealInput) (*models.Meal, error) {
	if err := validateMealInput(in); err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:    userID,
		Title:     in.Title,
		Type:      in.Type,
		Date:      dayStartLocal(in.Date),
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Calories:  in.Calories,
		Protein:   in.Protein,
		Carbs:     in.Carbs,
		Fat:       in.Fat,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC, start_time ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) UpdateMeal(userID, mealID uint, in MealInput) (*models.Meal, error) {
	if err := validateMealInput(in); err != nil {
		return nil, err
	}

	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}

	meal.Title = in.Title
	meal.Type = in.Type
	meal.Date = dayStartLocal(in.Date)
	meal.StartTime = in.StartTime
	meal.EndTime = in.EndTime
	meal.Calories = in.Calories
	meal.Protein = in.Protein
	meal.Carbs = in.Carbs
	meal.Fat = in.Fat

	if err := s.db.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	return s.db.Delete(&meal).Error
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	// normalize to local midnight so callers can pass dates in any location
	from, to = dayStartLocal(from), dayStartLocal(to)

	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, start_time ASC").
		Find(&meals).Error
	return meals, err
}

// RelocateMeal moves a meal to the destination day and slot (drag-and-drop).
// The destination must be one of the grid's slot labels.
func (s *MealService) RelocateMeal(userID, mealID uint, day time.Time, slot string) (*models.Meal, error) {
	if !validSlot(slot) {
		return nil, &utils.ValidationError{Reason: "destination slot is not on the grid"}
	}

	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}

	// meals are stored at local midnight; the destination day must match or
	// the moved meal would miss the day-view partition on non-UTC servers
	moved := schedule.Relocate(meal, dayStartLocal(day), slot)
	if err := s.db.Save(&moved).Error; err != nil {
		return nil, err
	}
	return &moved, nil
}

func validSlot(slot string) bool {
	for _, s := range schedule.DefaultSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// DaySchedule returns the day-view grid keyed by slot label, optionally
// restricted to one meal type.
func (s *MealService) DaySchedule(userID uint, day time.Time, mealType string) (map[string][]models.Meal, error) {
	start := dayStartLocal(day)
	meals, err := s.ListMealsByDateRange(userID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	meals = schedule.FilterType(meals, mealType)
	return schedule.ForDay(meals, start, schedule.DefaultSlots()), nil
}

// WeekSchedule returns the week-view grid keyed by day then slot.
func (s *MealService) WeekSchedule(userID uint, weekStart time.Time, mealType string) (map[string]map[string][]models.Meal, error) {
	start := dayStartLocal(weekStart)
	meals, err := s.ListMealsByDateRange(userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	meals = schedule.FilterType(meals, mealType)
	return schedule.ForWeek(meals, start, schedule.DefaultSlots()), nil
}
