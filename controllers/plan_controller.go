package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Armand9999/fitness-app/config"
	"github.com/Armand9999/fitness-app/models"
	"github.com/Armand9999/fitness-app/services"
)

// planRequest resolves the kind/date/duration triple shared by the plan
// handlers. Defaults to the user-local "today".
func planRequest(c *gin.Context) (user *models.User, kind, date string, duration int, ok bool) {
	user, ok = currentUser(c)
	if !ok {
		return
	}

	kind = c.Param("kind")
	if kind != models.PlanKindWorkout && kind != models.PlanKindMeal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be workout or meal"})
		return nil, "", "", 0, false
	}

	date = c.Query("date")
	if date == "" {
		date = services.LocalDate(time.Now(), user.Location())
	}

	duration = 30
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive integer"})
			return nil, "", "", 0, false
		}
		duration = parsed
	}
	return user, kind, date, duration, true
}

// GetPlan returns the day's plan, generating it on first request. Repeat
// calls for the same day return the cached plan unchanged.
func GetPlan(c *gin.Context) {
	user, kind, date, duration, ok := planRequest(c)
	if !ok {
		return
	}

	planSvc := services.NewPlanService(config.DB)
	var (
		plan *models.DailyPlan
		err  error
	)
	if kind == models.PlanKindWorkout {
		plan, err = planSvc.GetOrCreateWorkout(c.Request.Context(), user, date, duration)
	} else {
		plan, err = planSvc.GetOrCreateMeal(c.Request.Context(), user, date)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// RegeneratePlan discards the day's plan and generates a fresh one.
func RegeneratePlan(c *gin.Context) {
	user, kind, date, duration, ok := planRequest(c)
	if !ok {
		return
	}

	planSvc := services.NewPlanService(config.DB)
	var (
		plan *models.DailyPlan
		err  error
	)
	if kind == models.PlanKindWorkout {
		plan, err = planSvc.RegenerateWorkout(c.Request.Context(), user, date, duration)
	} else {
		plan, err = planSvc.RegenerateMeal(c.Request.Context(), user, date)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
