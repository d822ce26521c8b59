package utils

import (
	"math"

	"github.com/AmitC04/fitlife-lk/models"
)

// CalculateBMR uses the Mifflin-St Jeor formula. Weight in kilograms,
// height in centimeters. Any sex other than Male gets the -161 constant.
func CalculateBMR(weightKg, heightCm float64, age int, sex string) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == models.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// CalculateBMI expects weight in kilograms and height in centimeters,
// rounded to one decimal place.
func CalculateBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0
	return math.Round(weightKg/(h*h)*10) / 10
}

// BMICategory is a classified BMI with the color the client renders it in.
type BMICategory struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// CategorizeBMI buckets a BMI value per the WHO adult cutoffs.
// Lower bounds are inclusive, upper bounds exclusive.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMICategory{Label: "Underweight", Color: "#60a5fa"}
	case bmi < 25:
		return BMICategory{Label: "Normal", Color: "#4ade80"}
	case bmi < 30:
		return BMICategory{Label: "Overweight", Color: "#facc15"}
	default:
		return BMICategory{Label: "Obese", Color: "#f87171"}
	}
}

// CalculateTDEE scales an already-rounded BMR by the activity factor.
// A zero or negative factor falls back to sedentary (1.2).
func CalculateTDEE(bmr int, activityFactor float64) int {
	if activityFactor <= 0 {
		activityFactor = models.DefaultActivityFactor
	}
	return int(math.Round(float64(bmr) * activityFactor))
}

// CalorieGoal adjusts TDEE for the user's goal: a 500 kcal deficit for
// Weight Loss, a 500 kcal surplus for Weight Gain, unchanged otherwise.
func CalorieGoal(tdee int, goal string) int {
	switch goal {
	case models.GoalWeightLoss:
		return tdee - 500
	case models.GoalWeightGain:
		return tdee + 500
	default:
		return tdee
	}
}
