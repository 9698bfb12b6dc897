package factory

import (
	"math/rand/v2"

	"github.com/automoto/hexcloud/archetypes"
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the singleton holding mode state, the clock, the input
// buffers and the audio queue. The RNG is seeded so a run is reproducible.
func CreateGame(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	var chacha [32]byte
	for i := range 8 {
		chacha[i] = byte(seed >> (8 * i))
	}

	components.Game.SetValue(game, components.GameData{
		Mode:        cfg.ModePlaying,
		HexlingMode: cfg.Recalling,
		Cooldown:    cfg.Combat.Cooldown,
		Rand:        rand.New(rand.NewChaCha8(chacha)),
	})
	components.Clock.SetValue(game, components.ClockData{
		Delta: 1 / float64(cfg.C.TPS),
	})
	components.Audio.SetValue(game, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return game
}
