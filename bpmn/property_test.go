package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetProperty(t *testing.T) {
	task := &Task{}
	task.SetID("Activity_1")
	task.SetName("Review")

	v, ok := GetProperty(task, PropertyID)
	assert.True(t, ok)
	assert.Equal(t, "Activity_1", v)

	v, ok = GetProperty(task, PropertyName)
	assert.True(t, ok)
	assert.Equal(t, "Review", v)

	_, ok = GetProperty(task, "documentation")
	assert.False(t, ok)

	_, ok = GetProperty(nil, PropertyName)
	assert.False(t, ok)
}

func TestSetProperty(t *testing.T) {
	gw := &ExclusiveGateway{}

	assert.NoError(t, SetProperty(gw, PropertyName, "Approved?"))
	assert.Equal(t, "Approved?", gw.GetName())

	assert.NoError(t, SetProperty(gw, PropertyID, "Gateway_approved"))
	assert.Equal(t, "Gateway_approved", gw.GetID())

	assert.Error(t, SetProperty(gw, PropertyID, ""))
	assert.Error(t, SetProperty(gw, PropertyID, "has space"))
	assert.Equal(t, "Gateway_approved", gw.GetID())

	assert.Error(t, SetProperty(gw, "unknown", "x"))
	assert.Error(t, SetProperty(nil, PropertyName, "x"))
}
