package systems

import (
	cfg "github.com/automoto/hexcloud/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock stamps the fixed tick duration and counts time survived.
func UpdateClock(e *ecs.ECS) {
	dt := 1 / float64(ebiten.TPS())
	SetDelta(e, dt)

	if game, ok := GetGame(e); ok && game.Mode == cfg.ModePlaying {
		game.Survived += dt
	}
}
