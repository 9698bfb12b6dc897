package systems

import (
	"testing"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/stretchr/testify/assert"
)

func TestGetActionEdges(t *testing.T) {
	var input components.InputData

	input.Current[cfg.ActionCharge] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(&input, cfg.ActionCharge))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(&input, cfg.ActionCharge))

	input.Current[cfg.ActionCharge] = false
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(&input, cfg.ActionCharge))

	assert.Equal(t, components.ActionState{}, GetAction(&input, cfg.ActionRecall))
}

func TestAdvanceInputKeepsHeldActions(t *testing.T) {
	e := newTestWorld(t)

	PressAction(e, cfg.ActionSpawnHexling, true)
	AdvanceInput(e)

	state := GetAction(getOrCreateInput(e), cfg.ActionSpawnHexling)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)
}
