package systems

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/systems/factory"
	"github.com/automoto/hexcloud/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Charge switches every hexling into charging mode.
type Charge struct{}

// Recall switches every hexling into recalling mode and drops their targets.
type Recall struct{}

// SpawnHexling asks for one hexling next to the player.
type SpawnHexling struct{}

var (
	ChargeEvent       = events.NewEventType[Charge]()
	RecallEvent       = events.NewEventType[Recall]()
	SpawnHexlingEvent = events.NewEventType[SpawnHexling]()
)

// RegisterEventHandlers subscribes the gameplay handlers on the world. Call
// once per world.
func RegisterEventHandlers(e *ecs.ECS) {
	ChargeEvent.Subscribe(e.World, func(w donburi.World, _ Charge) {
		onCharge(e)
	})
	RecallEvent.Subscribe(e.World, func(w donburi.World, _ Recall) {
		onRecall(e)
	})
	SpawnHexlingEvent.Subscribe(e.World, func(w donburi.World, _ SpawnHexling) {
		spawnHexling(e)
	})
}

// UpdateEvents delivers every event queued this tick. Each event is handled
// once and then discarded.
func UpdateEvents(e *ecs.ECS) {
	ChargeEvent.ProcessEvents(e.World)
	RecallEvent.ProcessEvents(e.World)
	SpawnHexlingEvent.ProcessEvents(e.World)
}

func onCharge(e *ecs.ECS) {
	game, ok := GetGame(e)
	if !ok {
		return
	}
	game.HexlingMode = cfg.Charging
	flipPlayer(e, cfg.Player.ChargeColor)
	PlayChord(e, cfg.Sound.ChargeChord)
}

func onRecall(e *ecs.ECS) {
	game, ok := GetGame(e)
	if !ok {
		return
	}
	game.HexlingMode = cfg.Recalling
	tags.Hexling.Each(e.World, func(entry *donburi.Entry) {
		components.Combat.Get(entry).ClearTargets()
	})
	flipPlayer(e, cfg.Player.RecallColor)
	PlayChord(e, cfg.Sound.RecallChord)
}

func flipPlayer(e *ecs.ECS, tint color.RGBA) {
	player, ok := findPlayer(e.World)
	if !ok {
		return
	}
	components.Shape.Get(player).Color = tint
	components.Player.Get(player).Flip = gween.New(0, 2*math.Pi, float32(cfg.Player.FlipSeconds), ease.InOutQuad)
}

// spawnHexling tries a few random offsets around the player and places a
// hexling at the first one clear of walls. Spawning silently fails when no
// attempt finds room.
func spawnHexling(e *ecs.ECS) {
	player, ok := findPlayer(e.World)
	if !ok {
		return
	}
	game, ok := GetGame(e)
	if !ok {
		return
	}

	px, py := centerOf(player)
	space := getSpace(e.World)
	size := cfg.Hexling.Radius * 2

	for range cfg.Hexling.SpawnAttempts {
		x := px + spawnOffset(game.Rand)
		y := py + spawnOffset(game.Rand)
		if space != nil && !isPositionClear(space, x, y, size) {
			continue
		}

		factory.CreateHexling(e, x, y, hexlingTint(game.Rand))
		components.Player.Get(player).Spin = gween.New(0, 2*math.Pi, float32(cfg.Player.SpinSeconds), ease.OutCubic)
		PlayChord(e, cfg.Sound.SpawnChord)
		return
	}
}

func spawnOffset(rng *rand.Rand) float64 {
	off := cfg.Hexling.SpawnMinOffset + rng.Float64()*(cfg.Hexling.SpawnMaxOffset-cfg.Hexling.SpawnMinOffset)
	if rng.IntN(2) == 0 {
		return -off
	}
	return off
}

// hexlingTint picks a random green-dominant colour.
func hexlingTint(rng *rand.Rand) color.RGBA {
	minG := int(cfg.Hexling.ColorMinGreen)
	maxRB := int(cfg.Hexling.ColorMaxRedBlue) + 1
	return color.RGBA{
		R: uint8(rng.IntN(maxRB)),
		G: uint8(minG + rng.IntN(256-minG)),
		B: uint8(rng.IntN(maxRB)),
		A: 255,
	}
}
