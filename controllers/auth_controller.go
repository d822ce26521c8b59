package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AmitC04/fitlife-lk/config"
	"github.com/AmitC04/fitlife-lk/models"
	"github.com/AmitC04/fitlife-lk/services"
	"github.com/AmitC04/fitlife-lk/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=6"`
	Age             int      `json:"age" binding:"required,gt=0"`
	Sex             string   `json:"sex" binding:"required,oneof=Male Female Other"`
	WeightKg        float64  `json:"weightKg" binding:"required,gt=0"`
	HeightCm        float64  `json:"heightCm" binding:"required,gt=0"`
	Goal            string   `json:"goal" binding:"required,oneof='Weight Loss' 'Weight Gain' 'Maintain Fitness' 'Build Muscle'"`
	ActivityFactor  float64  `json:"activityFactor"`
	Conditions      []string `json:"conditions"`
	BodyPain        string   `json:"bodyPain"`
	StrengthenParts []string `json:"strengthenParts"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := services.RegisterUser(services.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Age:             req.Age,
		Sex:             req.Sex,
		WeightKg:        req.WeightKg,
		HeightCm:        req.HeightCm,
		Goal:            req.Goal,
		ActivityFactor:  req.ActivityFactor,
		Conditions:      req.Conditions,
		BodyPain:        req.BodyPain,
		StrengthenParts: req.StrengthenParts,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration"})
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": services.UserResponse(user)})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": services.UserResponse(user)})
}

func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	// Deliberately the same reply whether or not the account exists.
	user, err := services.FindUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset code has been sent"})
		return
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	config.DB.Save(user)

	if err := utils.SendResetEmail(user.Email, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send reset code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset code has been sent"})
}

func ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	var user models.User
	result := config.DB.Where("reset_token = ?", req.Token).First(&user)
	if result.Error != nil || user.ResetToken == "" || time.Now().After(user.ResetTokenExp) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	user.PasswordHash = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	config.DB.Save(&user)

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
