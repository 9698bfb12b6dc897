package factory

import (
	"image/color"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/hexcloud/config"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// RoomBricks lays bricks along the perimeter of the room, leaving an exit in
// the middle third of every side.
func RoomBricks(r cfg.RoomConfig) []dmath.Vec2 {
	left, top := r.OriginX, r.OriginY
	right, bottom := r.OriginX+r.Width, r.OriginY-r.Height

	var bricks []dmath.Vec2
	for off := 0.0; off <= r.Width; off += r.BrickSpacing {
		if inExit(off, r.Width) {
			continue
		}
		bricks = append(bricks,
			dmath.Vec2{X: left + off, Y: top},
			dmath.Vec2{X: left + off, Y: bottom},
		)
	}
	for off := r.BrickSpacing; off < r.Height; off += r.BrickSpacing {
		if inExit(off, r.Height) {
			continue
		}
		bricks = append(bricks,
			dmath.Vec2{X: left, Y: top - off},
			dmath.Vec2{X: right, Y: top - off},
		)
	}
	return bricks
}

func inExit(offset, length float64) bool {
	return offset > length/3 && offset < 2*length/3
}

// CreateRoom spawns the room walls with a random tint and rotation per brick.
func CreateRoom(ecs *ecs.ECS, rng *rand.Rand) {
	for _, b := range RoomBricks(cfg.Room) {
		tint := color.RGBA{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			A: 255,
		}
		CreateWall(ecs, b.X, b.Y, rng.Float64()*2*math.Pi, tint)
	}
}
