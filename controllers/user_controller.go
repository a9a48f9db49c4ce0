package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Armand9999/fitness-app/config"
	"github.com/Armand9999/fitness-app/services"
)

func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	userSvc := services.NewUserService(config.DB)
	profile, err := userSvc.GetProfile(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	updated, err := userSvc.UpdateProfile(user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully", "user_id": updated.UserID})
}
