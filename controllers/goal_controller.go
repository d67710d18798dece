// controllers/goal_controller.go
package controllers

import (
	"net/http"

	"github.com/TheSubMish/nutrify-v2-sub000/services"
	"github.com/TheSubMish/nutrify-v2-sub000/utils"

	"github.com/gin-gonic/gin"
)

func GetGoal(c *gin.Context) {
	goal, err := services.GetGoal(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func UpdateGoal(c *gin.Context) {
	var req struct {
		TargetWeight float64  `json:"target_weight"`
		WeeklyChange float64  `json:"weekly_change"`
		Calories     float64  `json:"calories"`
		Protein      *float64 `json:"protein"`
		Carbs        *float64 `json:"carbs"`
		Fat          *float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// default missing macros to 0
	protein, carbs, fat := 0.0, 0.0, 0.0
	if req.Protein != nil {
		protein = *req.Protein
	}
	if req.Carbs != nil {
		carbs = *req.Carbs
	}
	if req.Fat != nil {
		fat = *req.Fat
	}

	goal, err := services.UpsertGoal(
		currentUserID(c),
		req.TargetWeight,
		req.WeeklyChange,
		req.Calories,
		protein,
		carbs,
		fat,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// CheckMacroSplit is advisory: it reports whether the percentages sum to 100
// but never blocks saving a goal.
func CheckMacroSplit(c *gin.Context) {
	var req struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fat     float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, utils.CheckMacroSplit(req.Protein, req.Carbs, req.Fat))
}
