package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := services.GetUserProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weight":         profile.Weight,
		"height":         profile.Height,
		"body_type":      profile.BodyType,
		"fitness_goal":   profile.FitnessGoal,
		"activity_level": profile.ActivityLevel,
	})
}

func UpsertProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := services.UpsertUserProfile(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Profile created"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
