package controllers

import (
	"net/http"

	"github.com/TheSubMish/nutrify-v2-sub000/services"

	"github.com/gin-gonic/gin"
)

func GetPreferences(c *gin.Context) {
	pref, err := services.GetPreferences(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pref)
}

func UpdatePreferences(c *gin.Context) {
	var input services.PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref, err := services.UpdatePreferences(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pref)
}
