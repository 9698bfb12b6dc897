package systems

import (
	"testing"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/systems/factory"
	"github.com/automoto/hexcloud/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// tick rolls the input forward with the given actions held and runs the
// control and event systems once.
func tick(e *ecs.ECS, held ...cfg.ActionID) {
	AdvanceInput(e)
	for id := cfg.ActionNone; id < cfg.ActionCount; id++ {
		PressAction(e, id, false)
	}
	for _, id := range held {
		PressAction(e, id, true)
	}
	run(e, UpdateControls, UpdateEvents)
}

func TestMoveActionsSetVelocity(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 0, 0)

	tick(e, cfg.ActionMoveUp, cfg.ActionMoveRight)
	vel := components.Velocity.Get(player)
	assert.Equal(t, cfg.Player.Speed, vel.X)
	assert.Equal(t, cfg.Player.Speed, vel.Y, "up is positive y")

	tick(e, cfg.ActionMoveDown, cfg.ActionMoveLeft)
	assert.Equal(t, -cfg.Player.Speed, vel.X)
	assert.Equal(t, -cfg.Player.Speed, vel.Y)

	tick(e)
	assert.Zero(t, vel.X)
	assert.Zero(t, vel.Y)
}

func TestChargeAndRecallActions(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 0, 0)
	game := mustGame(t, e)

	tick(e, cfg.ActionCharge)
	assert.Equal(t, cfg.Charging, game.HexlingMode)
	assert.Equal(t, cfg.Player.ChargeColor, components.Shape.Get(player).Color)
	assert.NotNil(t, components.Player.Get(player).Flip)

	tick(e)
	tick(e, cfg.ActionRecall)
	assert.Equal(t, cfg.Recalling, game.HexlingMode)
	assert.Equal(t, cfg.Player.RecallColor, components.Shape.Get(player).Color)
}

func TestFlipTogglesOnRelease(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 0, 0)
	game := mustGame(t, e)
	require.Equal(t, cfg.Recalling, game.HexlingMode)

	tick(e, cfg.ActionFlip)
	assert.Equal(t, cfg.Recalling, game.HexlingMode, "press alone does nothing")
	tick(e)
	assert.Equal(t, cfg.Charging, game.HexlingMode)

	tick(e, cfg.ActionFlip)
	tick(e)
	assert.Equal(t, cfg.Recalling, game.HexlingMode)
}

func TestSpawnHoldProducesOneHexlingPerHold(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 0, 0)
	SetDelta(e, 0.125)

	for range 11 {
		tick(e, cfg.ActionSpawnHexling)
	}
	assert.Zero(t, count(e.World, tags.Hexling))

	tick(e, cfg.ActionSpawnHexling)
	assert.Equal(t, 1, count(e.World, tags.Hexling))
	assert.NotNil(t, components.Player.Get(player).Spin)

	for range 20 {
		tick(e, cfg.ActionSpawnHexling)
	}
	assert.Equal(t, 1, count(e.World, tags.Hexling), "holding longer does not spawn again")

	tick(e)
	data := components.Player.Get(player)
	assert.Zero(t, data.SpawnHeldMS)
	assert.False(t, data.SpawnLatched)

	for range 12 {
		tick(e, cfg.ActionSpawnHexling)
	}
	assert.Equal(t, 2, count(e.World, tags.Hexling))
}

func TestSpawnHoldResetsOnEarlyRelease(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 0, 0)
	SetDelta(e, 0.125)

	for range 11 {
		tick(e, cfg.ActionSpawnHexling)
	}
	tick(e)
	for range 11 {
		tick(e, cfg.ActionSpawnHexling)
	}

	assert.Zero(t, count(e.World, tags.Hexling))
}

func TestSpawnedHexlingSitsNearPlayer(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 100, -50)

	SpawnHexlingEvent.Publish(e.World, SpawnHexling{})
	UpdateEvents(e)

	hexling, ok := tags.Hexling.First(e.World)
	require.True(t, ok)
	x, y := centerOf(hexling)
	for _, off := range []float64{x - 100, y + 50} {
		if off < 0 {
			off = -off
		}
		assert.GreaterOrEqual(t, off, cfg.Hexling.SpawnMinOffset)
		assert.LessOrEqual(t, off, cfg.Hexling.SpawnMaxOffset)
	}

	tint := components.Shape.Get(hexling).Color
	assert.GreaterOrEqual(t, tint.G, cfg.Hexling.ColorMinGreen)
	assert.LessOrEqual(t, tint.R, cfg.Hexling.ColorMaxRedBlue)
	assert.LessOrEqual(t, tint.B, cfg.Hexling.ColorMaxRedBlue)
}

func TestSpawnFailsWhenBoxedIn(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 0, 0)
	step := 2 * cfg.Room.ColliderHalf
	for x := -120.0; x <= 120; x += step {
		for y := -120.0; y <= 120; y += step {
			factory.CreateWall(e, x, y, 0, cfg.White)
		}
	}

	SpawnHexlingEvent.Publish(e.World, SpawnHexling{})
	UpdateEvents(e)

	assert.Zero(t, count(e.World, tags.Hexling))
}
