package main

import (
	"github.com/Armand9999/fitness-app/config"
	"github.com/Armand9999/fitness-app/routes"
	"github.com/Armand9999/fitness-app/services"
)

func main() {
	config.InitDB()
	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(hub)
	r.Run(":8080")
}
