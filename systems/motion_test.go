package systems

import (
	"math"
	"testing"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestChargingHexlingWithoutTargetFleesPlayer(t *testing.T) {
	vx, vy, returning := HexlingVelocity(cfg.Charging, HexlingSteer{X: 100, Y: 0})

	assert.InDelta(t, cfg.Hexling.Speed, vx, 1e-9)
	assert.InDelta(t, 0, vy, 1e-9)
	assert.False(t, returning)
}

func TestChargingHexlingChasesTarget(t *testing.T) {
	vx, vy, _ := HexlingVelocity(cfg.Charging, HexlingSteer{
		X: 0, Y: 0,
		PlayerX: 100, PlayerY: 0,
		TargetX: 0, TargetY: -40, HasTarget: true,
	})

	assert.InDelta(t, 0, vx, 1e-9)
	assert.InDelta(t, -cfg.Hexling.Speed, vy, 1e-9)
}

func TestRecallHysteresis(t *testing.T) {
	far := cfg.Hexling.MaxPlayerDistance + 5
	band := (cfg.Hexling.MinPlayerDistance + cfg.Hexling.MaxPlayerDistance) / 2
	near := cfg.Hexling.MinPlayerDistance - 5

	vx, _, returning := HexlingVelocity(cfg.Recalling, HexlingSteer{X: far})
	assert.True(t, returning)
	assert.InDelta(t, -cfg.Hexling.Speed, vx, 1e-9)

	vx, _, returning = HexlingVelocity(cfg.Recalling, HexlingSteer{X: band, Returning: true})
	assert.True(t, returning, "keeps coming inside the band")
	assert.InDelta(t, -cfg.Hexling.Speed, vx, 1e-9)

	vx, _, returning = HexlingVelocity(cfg.Recalling, HexlingSteer{X: band})
	assert.False(t, returning, "a resting hexling stays put inside the band")
	assert.Zero(t, vx)

	vx, _, returning = HexlingVelocity(cfg.Recalling, HexlingSteer{X: near, Returning: true})
	assert.False(t, returning)
	assert.Zero(t, vx)
}

func TestRecallClearsTargetsOnRoundTrip(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 0, 0)
	hexling := factory.CreateHexling(e, 70, 0, cfg.LightGreen)
	enemy := factory.CreateEnemy(e, 100, 0, 100, 0)
	game := mustGame(t, e)

	RecallEvent.Publish(e.World, Recall{})
	UpdateEvents(e)
	assert.Equal(t, cfg.Recalling, game.HexlingMode)

	ChargeEvent.Publish(e.World, Charge{})
	UpdateEvents(e)
	assert.Equal(t, cfg.Charging, game.HexlingMode)

	UpdateHexlingTargets(e)
	assert.Equal(t, []donburi.Entity{enemy.Entity()}, components.Combat.Get(hexling).Targets)

	RecallEvent.Publish(e.World, Recall{})
	UpdateEvents(e)
	assert.Equal(t, cfg.Recalling, game.HexlingMode)
	assert.Empty(t, components.Combat.Get(hexling).Targets)
}

func TestHexlingMotionFollowsSharedMode(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 0, 0)
	hexling := factory.CreateHexling(e, 0, 100, cfg.LightGreen)

	UpdateHexlingMotion(e)
	vel := components.Velocity.Get(hexling)
	assert.InDelta(t, -cfg.Hexling.Speed, vel.Y, 1e-9, "recalling from beyond the far threshold")
	assert.True(t, components.Hexling.Get(hexling).Returning)

	mustGame(t, e).HexlingMode = cfg.Charging
	UpdateHexlingMotion(e)
	assert.InDelta(t, cfg.Hexling.Speed, vel.Y, 1e-9, "charging away from the player")
	assert.False(t, components.Hexling.Get(hexling).Returning)
}

func TestEnemyOrbitsAnchorWithoutTarget(t *testing.T) {
	e := newTestWorld(t)
	enemy := factory.CreateEnemy(e, 100, 0, 0, 0)

	UpdateEnemyMotion(e)

	vel := components.Velocity.Get(enemy)
	assert.InDelta(t, cfg.Enemy.OrbitSpeed, math.Hypot(vel.X, vel.Y), 1e-9)
	assert.InDelta(t, 0, vel.X*100, 1e-9, "velocity is tangent to the anchor")
}

func TestEnemyChasesPrimaryTarget(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 0, 0)
	enemy := factory.CreateEnemy(e, 0, 150, 0, 150)
	components.Combat.Get(enemy).Targets = []donburi.Entity{player.Entity()}

	UpdateEnemyMotion(e)

	vel := components.Velocity.Get(enemy)
	assert.InDelta(t, 0, vel.X, 1e-9)
	assert.InDelta(t, -cfg.Enemy.AggroSpeed, vel.Y, 1e-9)
}

func TestEnemyWithStaleTargetKeepsVelocity(t *testing.T) {
	e := newTestWorld(t)
	hexling := factory.CreateHexling(e, 0, 0, cfg.LightGreen)
	enemy := factory.CreateEnemy(e, 50, 0, 0, 0)
	stale := hexling.Entity()
	e.World.Remove(stale)

	components.Combat.Get(enemy).Targets = []donburi.Entity{stale}
	components.Velocity.SetValue(enemy, components.VelocityData{X: 3, Y: 4})

	assert.NotPanics(t, func() { UpdateEnemyMotion(e) })
	assert.Equal(t, components.VelocityData{X: 3, Y: 4}, *components.Velocity.Get(enemy))
}

func TestEnemiesSpin(t *testing.T) {
	e := newTestWorld(t)
	enemy := factory.CreateEnemy(e, 0, 0, 0, 50)

	UpdateEnemyMotion(e)

	assert.InDelta(t, cfg.Enemy.SpinRate*testStep, components.Shape.Get(enemy).Rotation, 1e-9)
}
