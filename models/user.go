package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Allowed values for User.Sex and User.Goal. The register endpoint
// validates against these; everything downstream trusts them.
const (
	SexMale   = "Male"
	SexFemale = "Female"
	SexOther  = "Other"
)

const (
	GoalWeightLoss      = "Weight Loss"
	GoalWeightGain      = "Weight Gain"
	GoalMaintainFitness = "Maintain Fitness"
	GoalBuildMuscle     = "Build Muscle"
)

// DefaultActivityFactor is the sedentary multiplier, applied when a
// user never picked one.
const DefaultActivityFactor = 1.2

type User struct {
	gorm.Model
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	Age            int     `gorm:"not null"`
	Sex            string  `gorm:"size:10;not null"`
	WeightKg       float64 `gorm:"not null"`
	HeightCm       float64 `gorm:"not null"`
	Goal           string  `gorm:"size:20;not null"`
	ActivityFactor float64 `gorm:"default:1.2"`

	// Comma-joined sets; see ConditionsList / StrengthenPartsList.
	Conditions      string `gorm:"type:text"`
	StrengthenParts string `gorm:"type:text"`
	BodyPain        string `gorm:"type:text;default:None"`

	UploadedMenuPath string `gorm:"size:500"`

	ResetToken    string
	ResetTokenExp time.Time
}

func (u *User) ConditionsList() []string {
	return splitCommaList(u.Conditions)
}

func (u *User) StrengthenPartsList() []string {
	return splitCommaList(u.StrengthenParts)
}

func splitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
