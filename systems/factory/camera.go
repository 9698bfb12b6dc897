package factory

import (
	"github.com/automoto/hexcloud/archetypes"
	"github.com/automoto/hexcloud/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
}

func CreateFog(ecs *ecs.ECS) {
	fog := archetypes.Fog.Spawn(ecs)
	components.Fog.Set(fog, &components.FogData{
		Hexlings: map[donburi.Entity]math.Vec2{},
	})
}
