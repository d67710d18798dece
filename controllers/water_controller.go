package controllers

import (
	"net/http"

	"github.com/TheSubMish/nutrify-v2-sub000/services"

	"github.com/gin-gonic/gin"
)

func GetWater(c *gin.Context) {
	glasses, err := services.GetWaterIntake(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"glasses": glasses})
}

func UpdateWater(c *gin.Context) {
	var input struct {
		Glasses float64 `json:"glasses"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Glasses < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "glasses must be non-negative"})
		return
	}

	if err := services.UpsertWaterIntake(currentUserID(c), input.Glasses); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
