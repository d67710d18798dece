package controllers

import (
	"net/http"
	"strconv"

	"github.com/TheSubMish/nutrify-v2-sub000/services"

	"github.com/gin-gonic/gin"
)

var (
	chatSvc   *services.ChatService
	visionSvc *services.VisionService
)

// InitChat wires the shared assistant dependencies; called once from main.
func InitChat(chat *services.ChatService, vision *services.VisionService) {
	chatSvc = chat
	visionSvc = vision
}

func Chat(c *gin.Context) {
	if chatSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant not configured"})
		return
	}

	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := chatSvc.Ask(c.Request.Context(), currentUserID(c), input.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func ChatHistory(c *gin.Context) {
	if chatSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	msgs, err := chatSvc.History(currentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// NutritionLookup prefills the meal form with the assistant's macro estimate
// for a food name.
func NutritionLookup(c *gin.Context) {
	if chatSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant not configured"})
		return
	}

	var input struct {
		Food string `json:"food" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	facts, err := chatSvc.NutritionLookup(c.Request.Context(), currentUserID(c), input.Food)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, facts)
}

// PhotoLookup labels a meal photo and feeds the top label into the macro
// estimate path.
func PhotoLookup(c *gin.Context) {
	if chatSvc == nil || visionSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant not configured"})
		return
	}

	var input struct {
		Image string `json:"image" binding:"required"` // data URI
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	labels, err := visionSvc.RecognizeLabels(c.Request.Context(), input.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(labels) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no food detected"})
		return
	}

	facts, err := chatSvc.NutritionLookup(c.Request.Context(), currentUserID(c), labels[0])
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels, "nutrition": facts})
}
