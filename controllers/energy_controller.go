package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Armand9999/fitness-app/config"
	"github.com/Armand9999/fitness-app/services"
)

type EstimateInput struct {
	Age           *float64 `json:"age" binding:"required"`
	Weight        *float64 `json:"weight" binding:"required"`
	Height        *float64 `json:"height" binding:"required"`
	Gender        *string  `json:"gender" binding:"required"`
	ActivityLevel *string  `json:"activity_level" binding:"required"`
}

// EstimateEnergy computes the caller's TDEE and appends it to their estimate
// history. Missing or mistyped fields fail before any computation.
func EstimateEnergy(c *gin.Context) {
	var input EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	energySvc := services.NewEnergyService(config.DB)
	est, err := energySvc.RecordEstimate(user.ID, *input.Weight, *input.Height, *input.Age, *input.Gender, *input.ActivityLevel)
	if err != nil {
		log.Printf("energy estimate user=%d: %v", user.ID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tde": est.Value, "method": est.Method})
}

// EnergyHistory lists the caller's past estimates, newest first.
func EnergyHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	energySvc := services.NewEnergyService(config.DB)
	rows, err := energySvc.History(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"estimates": rows})
}
