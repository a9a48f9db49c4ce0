package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Armand9999/fitness-app/config"
	"github.com/Armand9999/fitness-app/services"
)

// CompleteWorkout records a finished session against the week's progress.
func CompleteWorkout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		Name            string              `json:"name" binding:"required"`
		DurationMinutes int                 `json:"duration_minutes" binding:"required"`
		Exercises       []services.Exercise `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workoutSvc := services.NewWorkoutService(config.DB)
	session, err := workoutSvc.Complete(user.ID, body.Name, body.DurationMinutes, body.Exercises)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}
