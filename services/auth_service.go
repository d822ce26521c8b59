package services

import (
	"errors"
	"strings"

	"github.com/AmitC04/fitlife-lk/config"
	"github.com/AmitC04/fitlife-lk/models"
	"github.com/AmitC04/fitlife-lk/utils"
)

var ErrEmailTaken = errors.New("email already registered")

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	Age             int
	Sex             string
	WeightKg        float64
	HeightCm        float64
	Goal            string
	ActivityFactor  float64
	Conditions      []string
	BodyPain        string
	StrengthenParts []string
}

// RegisterUser creates a new account with a hashed password. The
// controller has already validated the enum and range invariants.
func RegisterUser(input RegisterInput) (*models.User, error) {
	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	activityFactor := input.ActivityFactor
	if activityFactor <= 0 {
		activityFactor = models.DefaultActivityFactor
	}
	bodyPain := input.BodyPain
	if strings.TrimSpace(bodyPain) == "" {
		bodyPain = "None"
	}

	user := models.User{
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    hashed,
		Age:             input.Age,
		Sex:             input.Sex,
		WeightKg:        input.WeightKg,
		HeightCm:        input.HeightCm,
		Goal:            input.Goal,
		ActivityFactor:  activityFactor,
		Conditions:      strings.Join(input.Conditions, ","),
		BodyPain:        bodyPain,
		StrengthenParts: strings.Join(input.StrengthenParts, ","),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks credentials and returns the matching user.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("invalid credentials")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, errors.New("invalid credentials")
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
