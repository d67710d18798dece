package controllers

import (
	"net/http"
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/config"
	"github.com/TheSubMish/nutrify-v2-sub000/services"

	"github.com/gin-gonic/gin"
)

func AddWeight(c *gin.Context) {
	var input struct {
		WeightKg   float64 `json:"weight_kg" binding:"required"`
		RecordedAt string  `json:"recorded_at"` // optional, YYYY-MM-DD or RFC3339
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var recordedAt time.Time
	if input.RecordedAt != "" {
		var err error
		recordedAt, err = time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			recordedAt, err = time.Parse("2006-01-02", input.RecordedAt)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recorded_at"})
			return
		}
	}

	svc := services.NewWeightService(config.DB)
	entry, err := svc.AddEntry(currentUserID(c), input.WeightKg, recordedAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func ListWeights(c *gin.Context) {
	svc := services.NewWeightService(config.DB)
	entries, err := svc.ListEntries(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func GetWeightSummary(c *gin.Context) {
	svc := services.NewWeightService(config.DB)
	summary, err := svc.Summary(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
