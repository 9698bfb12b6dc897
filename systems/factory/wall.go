package factory

import (
	"image/color"

	"github.com/automoto/hexcloud/archetypes"
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/collide"
	"github.com/automoto/hexcloud/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns one static brick centred on (x, y).
func CreateWall(ecs *ecs.ECS, x, y, rotation float64, tint color.RGBA) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	half := cfg.Room.ColliderHalf
	obj := components.NewCenteredObject(x, y, half*2, half*2, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	components.Collider.SetValue(wall, components.ColliderData{
		Shape: collide.Box,
		HalfW: half,
		HalfH: half,
	})
	components.Shape.SetValue(wall, components.ShapeData{
		Sides:    cfg.Room.BrickSides,
		Radius:   cfg.Room.BrickRadius,
		Color:    tint,
		Rotation: rotation,
		ScaleX:   1,
	})

	addToSpace(ecs, obj)
	return wall
}
