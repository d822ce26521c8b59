package controllers

import (
	"errors"
	"net/http"

	"github.com/AmitC04/fitlife-lk/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Plans *services.PlanService
}

func NewExerciseController(plans *services.PlanService) *ExerciseController {
	return &ExerciseController{Plans: plans}
}

type generateWorkoutRequest struct {
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
}

// Generate builds a six-exercise workout plan and annotates each
// exercise with a demo video id.
func (ec *ExerciseController) Generate(c *gin.Context) {
	user, err := services.GetUserByID(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var req generateWorkoutRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}
	if req.Difficulty == "" {
		req.Difficulty = "Beginner"
	}

	prompt := services.BuildWorkoutPrompt(user, req.Difficulty)

	workoutPlan, raw, err := ec.Plans.GeneratePlan(prompt)
	if err != nil {
		if errors.Is(err, services.ErrResponseUnparseable) || errors.Is(err, services.ErrResponseMalformed) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse AI response", "raw": raw})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate exercise plan", "error": err.Error()})
		return
	}

	services.AnnotateExerciseVideos(workoutPlan)

	c.JSON(http.StatusOK, gin.H{"success": true, "workoutPlan": workoutPlan})
}
