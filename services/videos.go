package services

import "strings"

type exerciseVideo struct {
	key string
	id  string
}

// exerciseVideos maps canonical exercise names to YouTube video ids.
// Matching is substring-based, so order matters: entries are checked
// top to bottom and the first key contained in the exercise name wins.
var exerciseVideos = []exerciseVideo{
	{"Push-ups", "IODxDxX7oi4"},
	{"Squats", "aclHkVaku9U"},
	{"Plank", "ASdvSqZdv2s"},
	{"Lunges", "QOVaHwm-Q6U"},
	{"Deadlift", "op9kVnSso6Q"},
	{"Bicep Curls", "ykJmrZ5v0Oo"},
	{"Shoulder Press", "qEwKCR5JCog"},
	{"Mountain Climbers", "nmwgirgXLYM"},
	{"Jumping Jacks", "c4DAnQ6DtF8"},
	{"Pull-ups", "eGo4IYlbE5g"},
	{"Tricep Dips", "6kALZikXxLc"},
	{"Crunches", "MKmrqcoCZ-M"},
	{"Leg Raises", "JB2oyawG9KQ"},
	{"Glute Bridge", "OUgsJ8-Vi0E"},
	{"Burpees", "dZgVxmf6jkA"},
	{"Yoga", "v7AYKMP6rOE"},
	{"Stretching", "L_xrDAtykMI"},
	{"Swimming", "gh5mAtmeR3Y"},
	{"Cycling", "LFfApT_7CJ0"},
	{"Walking", "njeZ29umqVE"},
}

const defaultVideoID = "aclHkVaku9U"

// ResolveVideoID finds a demo video for an exercise by case-insensitive
// substring match against the table above, falling back to a default.
func ResolveVideoID(exerciseName string) string {
	name := strings.ToLower(exerciseName)
	for _, v := range exerciseVideos {
		if strings.Contains(name, strings.ToLower(v.key)) {
			return v.id
		}
	}
	return defaultVideoID
}

// AnnotateExerciseVideos adds a videoId to every exercise entry of a
// parsed workout plan, in place. Entries that are not objects or have
// no name string are left untouched.
func AnnotateExerciseVideos(plan map[string]interface{}) {
	exercises, ok := plan["exercises"].([]interface{})
	if !ok {
		return
	}
	for _, e := range exercises {
		ex, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := ex["name"].(string)
		ex["videoId"] = ResolveVideoID(name)
	}
}
