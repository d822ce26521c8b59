package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/AmitC04/fitlife-lk/models"
)

// Meal time windows (local wall clock). Anything outside them is Dinner.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealSnacks    = "Snacks"
	MealDinner    = "Dinner"
)

// MealTimeAt picks the meal slot for a point in time.
func MealTimeAt(t time.Time) string {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	switch {
	case hour >= 6 && hour < 10.5:
		return MealBreakfast
	case hour >= 10.5 && hour < 15:
		return MealLunch
	case hour >= 15 && hour < 18:
		return MealSnacks
	case hour >= 18 && hour < 22:
		return MealDinner
	default:
		return MealDinner
	}
}

// BuildDietPrompt renders the nutritionist prompt for one meal. It is a
// pure string transform: the caller supplies the computed calorie goal
// and any extracted menu text. When menuText is empty but the user has
// a menu file on record, the model is only asked for general options.
func BuildDietPrompt(user *models.User, mealTime string, calorieGoal int, menuText string) string {
	var menuContext string
	if strings.TrimSpace(menuText) != "" {
		menuContext = fmt.Sprintf("\n\nThe user has uploaded their mess/hostel menu. Here is the extracted text from it:\n\"\"\"\n%s\n\"\"\"\nPlease suggest specific items FROM this menu with appropriate portions.", menuText)
	} else if user.UploadedMenuPath != "" {
		menuContext = "\nNote: User has a menu uploaded but no text was extracted. Suggest general healthy options."
	}

	var b strings.Builder
	b.WriteString("You are a professional nutritionist and dietitian. Create a personalized meal plan.\n\n")
	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", user.Name)
	fmt.Fprintf(&b, "- Age: %d years\n", user.Age)
	fmt.Fprintf(&b, "- Sex: %s\n", user.Sex)
	fmt.Fprintf(&b, "- Weight: %g kg\n", user.WeightKg)
	fmt.Fprintf(&b, "- Height: %g cm\n", user.HeightCm)
	fmt.Fprintf(&b, "- Goal: %s\n", user.Goal)
	fmt.Fprintf(&b, "- Medical Conditions: %s\n", joinOrDefault(user.ConditionsList(), "None"))
	fmt.Fprintf(&b, "- Physical Pain/Limitations: %s\n", orDefault(user.BodyPain, "None"))
	fmt.Fprintf(&b, "- Daily Calorie Target: %d kcal\n", calorieGoal)
	fmt.Fprintf(&b, "- Current Meal: %s\n", mealTime)
	b.WriteString(menuContext)
	b.WriteString("\n\nPlease provide:\n")
	fmt.Fprintf(&b, "1. A personalized %s meal plan with specific food items and quantities\n", mealTime)
	b.WriteString("2. Calorie count for each item and total calories for this meal\n")
	b.WriteString("3. Macronutrient breakdown (Protein / Carbs / Fats in grams)\n")
	b.WriteString("4. 2-3 health tips specific to their medical conditions and goal\n")
	b.WriteString("5. Foods to AVOID for this meal given their conditions\n\n")
	b.WriteString("Format your response as JSON with this exact structure:\n")
	fmt.Fprintf(&b, `{
  "mealTime": "%s",
  "totalCalories": <number>,
  "items": [
    { "name": "<food item>", "quantity": "<quantity>", "calories": <number>, "protein": <number>, "carbs": <number>, "fats": <number> }
  ],
  "macros": { "protein": <total grams>, "carbs": <total grams>, "fats": <total grams> },
  "tips": ["<tip1>", "<tip2>", "<tip3>"],
  "avoid": ["<food1>", "<food2>"],
  "note": "<any special note for this user>"
}`, mealTime)
	return b.String()
}

// BuildWorkoutPrompt renders the personal-trainer prompt. Exactly six
// exercises are demanded so the client layout stays stable.
func BuildWorkoutPrompt(user *models.User, difficulty string) string {
	var b strings.Builder
	b.WriteString("You are a certified personal trainer. Create a safe and effective workout plan.\n\n")
	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Age: %d\n", user.Age)
	fmt.Fprintf(&b, "- Sex: %s\n", user.Sex)
	fmt.Fprintf(&b, "- Weight: %g kg\n", user.WeightKg)
	fmt.Fprintf(&b, "- Height: %g cm\n", user.HeightCm)
	fmt.Fprintf(&b, "- Goal: %s\n", user.Goal)
	fmt.Fprintf(&b, "- Body Parts to Strengthen: %s\n", joinOrDefault(user.StrengthenPartsList(), "Full Body"))
	fmt.Fprintf(&b, "- Physical Pain/Limitations: %s\n", orDefault(user.BodyPain, "None"))
	fmt.Fprintf(&b, "- Medical Conditions: %s\n", joinOrDefault(user.ConditionsList(), "None"))
	fmt.Fprintf(&b, "- Difficulty Level: %s\n", difficulty)
	b.WriteString("\nProvide exactly 6 exercises tailored to this person. For each exercise, give safe modifications if they have pain.\n\n")
	b.WriteString("Respond ONLY with valid JSON in this exact format:\n")
	fmt.Fprintf(&b, `{
  "difficulty": "%s",
  "totalDuration": "<e.g. 40-50 minutes>",
  "exercises": [
    {
      "name": "<Exercise Name>",
      "sets": <number>,
      "reps": "<e.g. 12 or 30 seconds>",
      "description": "<2-3 sentence description of how to perform>",
      "targetMuscles": ["<muscle1>", "<muscle2>"],
      "modification": "<modification if user has pain or limitation>",
      "calories": <estimated calories burned>
    }
  ],
  "warmup": "<2-3 sentence warmup recommendation>",
  "cooldown": "<2-3 sentence cooldown recommendation>",
  "tips": ["<tip1>", "<tip2>"]
}`, difficulty)
	return b.String()
}

func joinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
