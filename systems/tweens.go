package systems

import (
	"math"

	"github.com/automoto/hexcloud/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances the player's flip and spin tweens. A finished tween
// is dropped and the shape settles back to rest.
func UpdateTweens(e *ecs.ECS) {
	player, ok := findPlayer(e.World)
	if !ok {
		return
	}
	data := components.Player.Get(player)
	shape := components.Shape.Get(player)
	dt := float32(Delta(e))

	if data.Flip != nil {
		v, done := data.Flip.Update(dt)
		shape.ScaleX = math.Cos(float64(v))
		if done {
			data.Flip = nil
			shape.ScaleX = 1
		}
	}
	if data.Spin != nil {
		v, done := data.Spin.Update(dt)
		shape.Rotation = float64(v)
		if done {
			data.Spin = nil
			shape.Rotation = 0
		}
	}
}
