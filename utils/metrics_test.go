package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		sex      string
		want     int
	}{
		{"male", 70, 175, 25, "Male", 1674},
		{"female", 60, 165, 30, "Female", 1320},
		{"other uses female constant", 60, 165, 30, "Other", 1320},
		{"heavier male", 90, 180, 40, "Male", 1830},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateBMR(tt.weightKg, tt.heightCm, tt.age, tt.sex))
		})
	}
}

func TestCalculateBMI(t *testing.T) {
	assert.Equal(t, 22.9, CalculateBMI(70, 175))
	assert.Equal(t, 22.0, CalculateBMI(60, 165.14))
}

func TestCategorizeBMI(t *testing.T) {
	tests := []struct {
		bmi   float64
		label string
	}{
		{17.9, "Underweight"},
		{18.5, "Normal"},
		{24.9, "Normal"},
		{25, "Overweight"},
		{29.9, "Overweight"},
		{30, "Obese"},
		{30.1, "Obese"},
	}
	for _, tt := range tests {
		cat := CategorizeBMI(tt.bmi)
		assert.Equal(t, tt.label, cat.Label, "bmi %v", tt.bmi)
		assert.NotEmpty(t, cat.Color)
	}
}

func TestCalculateTDEE(t *testing.T) {
	assert.Equal(t, 2593, CalculateTDEE(1673, 1.55))
	// zero factor falls back to sedentary
	assert.Equal(t, 2008, CalculateTDEE(1673, 0))
}

func TestCalorieGoal(t *testing.T) {
	tdee := CalculateTDEE(1673, 1.55)
	assert.Equal(t, 2093, CalorieGoal(tdee, "Weight Loss"))
	assert.Equal(t, 3093, CalorieGoal(tdee, "Weight Gain"))
	assert.Equal(t, 2593, CalorieGoal(tdee, "Maintain Fitness"))
	assert.Equal(t, 2593, CalorieGoal(tdee, "Build Muscle"))
}
