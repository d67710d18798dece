package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/config"
	"github.com/TheSubMish/nutrify-v2-sub000/services"

	"github.com/gin-gonic/gin"
)

func mealIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return 0, false
	}
	return uint(id), true
}

func LogMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	mealSvc := services.NewMealService(config.DB)

	meal, err := mealSvc.AddMeal(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	if hub != nil {
		hub.BroadcastScheduleUpdate(userID, "meal.created", meal)
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	userID := currentUserID(c)
	mealSvc := services.NewMealService(config.DB)

	// optional date-range narrowing: ?from=YYYY-MM-DD&to=YYYY-MM-DD
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err1 := time.Parse("2006-01-02", fromStr)
		to, err2 := time.Parse("2006-01-02", toStr)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		meals, err := mealSvc.ListMealsByDateRange(userID, from, to.AddDate(0, 0, 1))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	meals, err := mealSvc.ListMeals(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func GetMeal(c *gin.Context) {
	id, ok := mealIDParam(c)
	if !ok {
		return
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.GetMeal(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func UpdateMeal(c *gin.Context) {
	id, ok := mealIDParam(c)
	if !ok {
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	mealSvc := services.NewMealService(config.DB)

	meal, err := mealSvc.UpdateMeal(userID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	if hub != nil {
		hub.BroadcastScheduleUpdate(userID, "meal.updated", meal)
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	id, ok := mealIDParam(c)
	if !ok {
		return
	}

	userID := currentUserID(c)
	mealSvc := services.NewMealService(config.DB)

	if err := mealSvc.DeleteMeal(userID, id); err != nil {
		respondError(c, err)
		return
	}

	if hub != nil {
		hub.BroadcastScheduleUpdate(userID, "meal.deleted", gin.H{"id": id})
	}
	c.Status(http.StatusNoContent)
}

// GetSchedule renders the calendar grid. ?view=day|week (default day),
// ?date=YYYY-MM-DD anchors the day or the week start, ?type filters by meal
// type.
func GetSchedule(c *gin.Context) {
	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	userID := currentUserID(c)
	mealType := c.Query("type")
	mealSvc := services.NewMealService(config.DB)

	switch c.DefaultQuery("view", "day") {
	case "day":
		grid, err := mealSvc.DaySchedule(userID, date, mealType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"view": "day", "date": dateStr, "slots": grid})
	case "week":
		grid, err := mealSvc.WeekSchedule(userID, date, mealType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"view": "week", "week_start": dateStr, "days": grid})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be day or week"})
	}
}

// RelocateMeal handles the drag-and-drop move of a meal to a new day/slot.
func RelocateMeal(c *gin.Context) {
	id, ok := mealIDParam(c)
	if !ok {
		return
	}

	var input struct {
		Day  string `json:"day" binding:"required"`
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := time.Parse("2006-01-02", input.Day)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day format. Use YYYY-MM-DD"})
		return
	}

	userID := currentUserID(c)
	mealSvc := services.NewMealService(config.DB)

	meal, err := mealSvc.RelocateMeal(userID, id, day, input.Slot)
	if err != nil {
		respondError(c, err)
		return
	}

	if hub != nil {
		hub.BroadcastScheduleUpdate(userID, "meal.relocated", meal)
	}
	c.JSON(http.StatusOK, meal)
}
