package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AmitC04/fitlife-lk/services"
	"github.com/AmitC04/fitlife-lk/utils"

	"github.com/gin-gonic/gin"
)

type DietController struct {
	Plans *services.PlanService
}

func NewDietController(plans *services.PlanService) *DietController {
	return &DietController{Plans: plans}
}

type generateDietRequest struct {
	MealTime string `json:"mealTime"`
	MenuText string `json:"menuText"`
}

// Generate builds a meal plan for the current (or requested) meal slot.
// The plan is ephemeral: computed per request and never stored.
func (dc *DietController) Generate(c *gin.Context) {
	user, err := services.GetUserByID(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var req generateDietRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}

	mealTime := req.MealTime
	if mealTime == "" {
		mealTime = services.MealTimeAt(time.Now())
	}

	bmr := utils.CalculateBMR(user.WeightKg, user.HeightCm, user.Age, user.Sex)
	tdee := utils.CalculateTDEE(bmr, user.ActivityFactor)
	calorieGoal := utils.CalorieGoal(tdee, user.Goal)

	prompt := services.BuildDietPrompt(user, mealTime, calorieGoal, req.MenuText)

	dietPlan, raw, err := dc.Plans.GeneratePlan(prompt)
	if err != nil {
		if errors.Is(err, services.ErrResponseUnparseable) || errors.Is(err, services.ErrResponseMalformed) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse AI response", "raw": raw})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate diet plan", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "dietPlan": dietPlan, "calorieGoal": calorieGoal})
}
