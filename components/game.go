package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/hexcloud/config"
	"github.com/yohamta/donburi"
)

// GameData is the per-world singleton holding mode state.
type GameData struct {
	Mode        cfg.GameMode
	HexlingMode cfg.HexlingMode
	Cooldown    cfg.CooldownMode

	Survived float64 // seconds spent in ModePlaying
	Defeated int     // enemies destroyed

	Rand *rand.Rand
}

var Game = donburi.NewComponentType[GameData]()

// ClockData holds the frame delta in seconds for the current tick.
type ClockData struct {
	Delta float64
}

var Clock = donburi.NewComponentType[ClockData]()
