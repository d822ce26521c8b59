package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionsList(t *testing.T) {
	u := &User{Conditions: "Diabetes, Hypertension ,,Asthma"}
	assert.Equal(t, []string{"Diabetes", "Hypertension", "Asthma"}, u.ConditionsList())

	u = &User{}
	assert.Empty(t, u.ConditionsList())
	assert.NotNil(t, u.ConditionsList())
}

func TestStrengthenPartsList(t *testing.T) {
	u := &User{StrengthenParts: "Chest,Core"}
	assert.Equal(t, []string{"Chest", "Core"}, u.StrengthenPartsList())
}
