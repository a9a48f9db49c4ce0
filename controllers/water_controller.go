package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Armand9999/fitness-app/config"
	"github.com/Armand9999/fitness-app/services"
)

// GetWater returns the day's intake row (zero glasses if nothing logged).
func GetWater(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = services.LocalDate(time.Now(), user.Location())
	}

	waterSvc := services.NewWaterService(config.DB)
	intake, err := waterSvc.Get(user.ID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, intake)
}

// UpdateWater upserts the day's consumed-glass count.
func UpdateWater(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		Glasses *int   `json:"glasses" binding:"required"`
		Date    string `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := body.Date
	if date == "" {
		date = services.LocalDate(time.Now(), user.Location())
	}

	waterSvc := services.NewWaterService(config.DB)
	intake, err := waterSvc.Set(user.ID, date, *body.Glasses)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, intake)
}
