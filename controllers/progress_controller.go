package controllers

import (
	"net/http"
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/config"
	"github.com/TheSubMish/nutrify-v2-sub000/services"

	"github.com/gin-gonic/gin"
)

// parseRange reads ?from / ?to, defaulting to the last seven days.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -6)
	to := now

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from'. Use YYYY-MM-DD"})
			return from, to, false
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to'. Use YYYY-MM-DD"})
			return from, to, false
		}
		to = t
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must not precede 'from'"})
		return from, to, false
	}
	return from, to, true
}

func GetProgressSummary(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	svc := services.NewProgressService(config.DB)
	summary, err := svc.Summary(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func GetMacroSeries(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	svc := services.NewProgressService(config.DB)
	series, err := svc.MacroSeries(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func GetWeightSeries(c *gin.Context) {
	svc := services.NewWeightService(config.DB)
	entries, err := svc.ListEntries(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
