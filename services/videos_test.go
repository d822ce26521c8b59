package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVideoID(t *testing.T) {
	assert.Equal(t, "aclHkVaku9U", ResolveVideoID("Barbell Squats"))
	assert.Equal(t, "IODxDxX7oi4", ResolveVideoID("Incline PUSH-UPS"))
	assert.Equal(t, "ASdvSqZdv2s", ResolveVideoID("Side Plank Hold"))
}

func TestResolveVideoIDFirstMatchWins(t *testing.T) {
	// "Lunges" is listed before "Walking", so the Lunges video wins.
	assert.Equal(t, "QOVaHwm-Q6U", ResolveVideoID("Walking Lunges"))
	// "Squats" is listed before "Lunges".
	assert.Equal(t, "aclHkVaku9U", ResolveVideoID("Squats into Lunges"))
}

func TestResolveVideoIDDefault(t *testing.T) {
	assert.Equal(t, defaultVideoID, ResolveVideoID("Unknown Move"))
	assert.Equal(t, defaultVideoID, ResolveVideoID(""))
}

func TestAnnotateExerciseVideos(t *testing.T) {
	plan := map[string]interface{}{
		"difficulty": "Beginner",
		"exercises": []interface{}{
			map[string]interface{}{"name": "Push-ups", "sets": float64(3)},
			map[string]interface{}{"name": "Something Exotic"},
		},
	}

	AnnotateExerciseVideos(plan)

	exercises := plan["exercises"].([]interface{})
	first := exercises[0].(map[string]interface{})
	second := exercises[1].(map[string]interface{})
	assert.Equal(t, "IODxDxX7oi4", first["videoId"])
	assert.Equal(t, float64(3), first["sets"], "other fields untouched")
	assert.Equal(t, defaultVideoID, second["videoId"])
}

func TestAnnotateExerciseVideosTolerantOfShape(t *testing.T) {
	assert.NotPanics(t, func() {
		AnnotateExerciseVideos(map[string]interface{}{})
		AnnotateExerciseVideos(map[string]interface{}{"exercises": "not a list"})
		AnnotateExerciseVideos(map[string]interface{}{"exercises": []interface{}{"not an object"}})
	})
}
