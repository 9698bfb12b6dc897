package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/hexcloud/archetypes"
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDebrisBurst spawns cfg.Debris.Count inert pieces radiating evenly
// from (x, y). Debris never joins the resolv space.
func CreateDebrisBurst(ecs *ecs.ECS, x, y float64, rng *rand.Rand) []*donburi.Entry {
	n := cfg.Debris.Count
	pieces := make([]*donburi.Entry, 0, n)
	size := cfg.Debris.Radius * 2

	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		piece := archetypes.Debris.Spawn(ecs)

		obj := components.NewCenteredObject(x, y, size, size)
		obj.Data = piece
		components.Object.SetValue(piece, components.ObjectData{Object: obj})

		components.Velocity.SetValue(piece, components.VelocityData{
			X: math.Cos(angle) * cfg.Debris.Speed,
			Y: math.Sin(angle) * cfg.Debris.Speed,
		})
		components.Debris.SetValue(piece, components.DebrisData{
			Timer: cfg.Debris.Lifetime,
			Spin:  (rng.Float64()*2 - 1) * cfg.Debris.MaxSpin,
		})
		components.Shape.SetValue(piece, components.ShapeData{
			Sides:    cfg.Debris.Sides,
			Radius:   cfg.Debris.Radius,
			Color:    cfg.Debris.Color,
			Rotation: rng.Float64() * 2 * math.Pi,
			ScaleX:   1,
		})
		pieces = append(pieces, piece)
	}
	return pieces
}
