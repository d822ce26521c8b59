package services

import (
	"errors"
	"strings"

	"github.com/AmitC04/fitlife-lk/config"
	"github.com/AmitC04/fitlife-lk/models"
)

// ProfileUpdateInput carries the fields a user may change after
// registration. Pointers distinguish "absent" from zero values.
type ProfileUpdateInput struct {
	WeightKg        *float64  `json:"weightKg"`
	HeightCm        *float64  `json:"heightCm"`
	Goal            *string   `json:"goal"`
	Conditions      *[]string `json:"conditions"`
	BodyPain        *string   `json:"bodyPain"`
	StrengthenParts *[]string `json:"strengthenParts"`
	ActivityFactor  *float64  `json:"activityFactor"`
}

func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// UpdateUserProfile applies only the allowed, supplied fields.
func UpdateUserProfile(userID uint, input ProfileUpdateInput) (*models.User, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.WeightKg != nil && *input.WeightKg > 0 {
		user.WeightKg = *input.WeightKg
	}
	if input.HeightCm != nil && *input.HeightCm > 0 {
		user.HeightCm = *input.HeightCm
	}
	if input.Goal != nil && *input.Goal != "" {
		user.Goal = *input.Goal
	}
	if input.Conditions != nil {
		user.Conditions = strings.Join(*input.Conditions, ",")
	}
	if input.BodyPain != nil && *input.BodyPain != "" {
		user.BodyPain = *input.BodyPain
	}
	if input.StrengthenParts != nil {
		user.StrengthenParts = strings.Join(*input.StrengthenParts, ",")
	}
	if input.ActivityFactor != nil && *input.ActivityFactor > 0 {
		user.ActivityFactor = *input.ActivityFactor
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UserResponse is the wire shape of a user, password hash excluded.
func UserResponse(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":               u.ID,
		"name":             u.Name,
		"email":            u.Email,
		"age":              u.Age,
		"sex":              u.Sex,
		"weightKg":         u.WeightKg,
		"heightCm":         u.HeightCm,
		"goal":             u.Goal,
		"activityFactor":   u.ActivityFactor,
		"conditions":       u.ConditionsList(),
		"bodyPain":         u.BodyPain,
		"strengthenParts":  u.StrengthenPartsList(),
		"uploadedMenuPath": u.UploadedMenuPath,
	}
}
