package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Armand9999/fitness-app/controllers"
	"github.com/Armand9999/fitness-app/middlewares"
	"github.com/Armand9999/fitness-app/services"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	progress := controllers.NewProgressController(hub)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.POST("/energy/estimate", controllers.EstimateEnergy)
		api.GET("/energy/history", controllers.EnergyHistory)

		api.GET("/plans/:kind", controllers.GetPlan)
		api.POST("/plans/:kind/regenerate", controllers.RegeneratePlan)

		api.GET("/water", controllers.GetWater)
		api.PUT("/water", controllers.UpdateWater)

		api.POST("/workouts/complete", controllers.CompleteWorkout)

		api.GET("/progress/weekly", controllers.WeeklyProgress)
		api.GET("/progress/ws", progress.ProgressWS)
	}

	return r
}
