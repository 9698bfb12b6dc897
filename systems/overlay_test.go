package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/systems/factory"
	"github.com/automoto/hexcloud/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func TestDebrisExpiresAfterLifetime(t *testing.T) {
	e := newTestWorld(t)
	pieces := factory.CreateDebrisBurst(e, 0, 0, rand.New(rand.NewPCG(1, 2)))
	require.Len(t, pieces, cfg.Debris.Count)
	before := make([]float64, len(pieces))
	for i, p := range pieces {
		before[i] = components.Shape.Get(p).Rotation
	}
	SetDelta(e, 0.5)

	UpdateDebris(e)
	for i, p := range pieces {
		if components.Debris.Get(p).Spin != 0 {
			assert.NotEqual(t, before[i], components.Shape.Get(p).Rotation)
		}
	}
	UpdateDebris(e)
	assert.Empty(t, GetOrCreateAudio(e).PendingSFX)
	assert.Equal(t, cfg.Debris.Count, count(e.World, tags.Debris))

	UpdateDebris(e)
	assert.Equal(t, []cfg.SoundID{cfg.SoundDebris}, GetOrCreateAudio(e).PendingSFX)
	UpdateRemovals(e)
	assert.Zero(t, count(e.World, tags.Debris))
}

func TestFogTracksLightSources(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 40, 60)
	hexling := factory.CreateHexling(e, 10, 20, cfg.LightGreen)

	UpdateFog(e)
	entry, ok := components.Fog.First(e.World)
	require.True(t, ok)
	fog := components.Fog.Get(entry)
	assert.True(t, fog.HasPlayer)
	assert.InDelta(t, 40, fog.Player.X, 1e-9)
	assert.InDelta(t, 60, fog.Player.Y, 1e-9)
	require.Contains(t, fog.Hexlings, hexling.Entity())

	MarkForRemoval(hexling)
	MarkForRemoval(player)
	UpdateFog(e)
	assert.False(t, fog.HasPlayer)
	assert.Empty(t, fog.Hexlings)
}

func TestCameraHoldsWithinFollowDistance(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, cfg.Camera.FollowDistance-1, 0)

	UpdateCamera(e)
	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)
	assert.False(t, camera.Moving)
	assert.Zero(t, camera.Position.X)

	moveTo(player, 500, 0)
	UpdateCamera(e)
	assert.True(t, camera.Moving)
	assert.InDelta(t, cfg.Camera.Speed*testStep, camera.Position.X, 1e-9)
	assert.InDelta(t, 0, camera.Position.Y, 1e-9)
}

func TestWorldToScreenFlipsY(t *testing.T) {
	e := newTestWorld(t)
	cx, cy := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2

	x, y := WorldToScreen(e, 0, 0)
	assert.Equal(t, cx, x)
	assert.Equal(t, cy, y)

	x, y = WorldToScreen(e, 10, 10)
	assert.Equal(t, cx+10, x)
	assert.Equal(t, cy-10, y, "world up is screen up")
}

func TestTweensSettleShape(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 0, 0)
	data := components.Player.Get(player)
	shape := components.Shape.Get(player)
	data.Flip = gween.New(0, 2*math.Pi, 0.2, ease.InOutQuad)
	data.Spin = gween.New(0, 2*math.Pi, 0.2, ease.OutCubic)

	SetDelta(e, 0.05)
	UpdateTweens(e)
	assert.Less(t, shape.ScaleX, 1.0)
	assert.Greater(t, shape.Rotation, 0.0)

	SetDelta(e, 1)
	UpdateTweens(e)
	assert.Nil(t, data.Flip)
	assert.Nil(t, data.Spin)
	assert.Equal(t, 1.0, shape.ScaleX)
	assert.Zero(t, shape.Rotation)
}

func TestPauseStopsGameplay(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 0, 0)
	game := mustGame(t, e)
	pause := NewUpdatePause(nil, nil)
	gameplay := WithGameplayChecks(UpdatePositions)
	components.Velocity.Get(player).X = 60

	frame := func(held ...cfg.ActionID) {
		AdvanceInput(e)
		for id := cfg.ActionNone; id < cfg.ActionCount; id++ {
			PressAction(e, id, false)
		}
		for _, id := range held {
			PressAction(e, id, true)
		}
		run(e, pause, gameplay)
	}

	frame(cfg.ActionPause)
	assert.Equal(t, cfg.ModePaused, game.Mode)
	x, _ := centerOf(player)
	assert.Zero(t, x)

	frame()
	frame(cfg.ActionMenuDown)
	assert.Equal(t, components.MenuExit, GetOrCreatePause(e).SelectedOption)
	frame()
	frame(cfg.ActionMenuDown)
	assert.Equal(t, components.MenuResume, GetOrCreatePause(e).SelectedOption, "selection wraps")

	frame()
	frame(cfg.ActionMenuSelect)
	assert.Equal(t, cfg.ModePlaying, game.Mode)
	x, _ = centerOf(player)
	assert.InDelta(t, 1, x, 1e-9)
}

func TestPauseKeyResumes(t *testing.T) {
	e := newTestWorld(t)
	game := mustGame(t, e)
	pause := NewUpdatePause(nil, nil)

	for _, want := range []cfg.GameMode{cfg.ModePaused, cfg.ModePlaying} {
		AdvanceInput(e)
		PressAction(e, cfg.ActionPause, true)
		run(e, pause)
		assert.Equal(t, want, game.Mode)
		AdvanceInput(e)
		PressAction(e, cfg.ActionPause, false)
		run(e, pause)
	}
}

func TestSoundQueueKeepsOrder(t *testing.T) {
	e := newTestWorld(t)

	PlaySFX(e, cfg.SoundMenuSelect)
	PlayChord(e, cfg.Sound.SpawnChord)

	want := append([]cfg.SoundID{cfg.SoundMenuSelect}, cfg.Sound.SpawnChord...)
	assert.Equal(t, want, GetOrCreateAudio(e).PendingSFX)
}

func TestVolumeConversion(t *testing.T) {
	assert.Equal(t, cfg.Audio.MinVolumeDB, ClampVolumeDB(-500))
	assert.Equal(t, cfg.Audio.MaxVolumeDB, ClampVolumeDB(500))
	assert.Equal(t, -12.0, ClampVolumeDB(-12))

	assert.Zero(t, DBToGain(cfg.Audio.MinVolumeDB))
	assert.InDelta(t, 1, DBToGain(0), 1e-12)
	assert.InDelta(t, 10, DBToGain(20), 1e-9)
	assert.InDelta(t, 0.5012, DBToGain(-6), 1e-4)
}
