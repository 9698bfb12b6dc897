package systems

import (
	"math"

	"github.com/automoto/hexcloud/components"
	"github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera trails the player. The camera holds still while the player
// stays within FollowDistance and otherwise closes in at Camera.Speed.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := findPlayer(e.World)
	if !ok {
		camera.Moving = false
		return // no player (could be dead), skip camera update
	}
	px, py := centerOf(playerEntry)

	dist := gamemath.Distance(camera.Position.X, camera.Position.Y, px, py)
	camera.Moving = dist > config.Camera.FollowDistance
	if !camera.Moving {
		return
	}

	step := math.Min(config.Camera.Speed*Delta(e), dist)
	dx, dy := gamemath.Direction(camera.Position.X, camera.Position.Y, px, py)
	camera.Position.X += dx * step
	camera.Position.Y += dy * step
}

// WorldToScreen maps a world position (y up) to screen pixels around the
// camera.
func WorldToScreen(e *ecs.ECS, x, y float64) (float64, float64) {
	var camX, camY float64
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		camX, camY = camera.Position.X, camera.Position.Y
	}
	return x - camX + float64(config.C.Width)/2, camY - y + float64(config.C.Height)/2
}
