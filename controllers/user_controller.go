package controllers

import (
	"net/http"

	"github.com/AmitC04/fitlife-lk/services"
	"github.com/AmitC04/fitlife-lk/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user, err := services.GetUserByID(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, services.UserResponse(user))
}

func UpdateProfile(c *gin.Context) {
	var input services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, services.UserResponse(user))
}

// GetMetrics returns the derived physiological numbers for the
// dashboard: BMR, BMI with category, TDEE and the daily calorie goal.
func GetMetrics(c *gin.Context) {
	user, err := services.GetUserByID(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	bmr := utils.CalculateBMR(user.WeightKg, user.HeightCm, user.Age, user.Sex)
	bmi := utils.CalculateBMI(user.WeightKg, user.HeightCm)
	tdee := utils.CalculateTDEE(bmr, user.ActivityFactor)

	c.JSON(http.StatusOK, gin.H{
		"bmr":         bmr,
		"bmi":         bmi,
		"bmiCategory": utils.CategorizeBMI(bmi),
		"tdee":        tdee,
		"calorieGoal": utils.CalorieGoal(tdee, user.Goal),
	})
}
