package factory

import (
	"github.com/automoto/hexcloud/archetypes"
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateDefaultSpace sizes the space from the room configuration.
func CreateDefaultSpace(ecs *ecs.ECS) *donburi.Entry {
	return CreateSpace(ecs, cfg.Room.SpaceWidth, cfg.Room.SpaceHeight, cfg.Room.SpaceCell, cfg.Room.SpaceCell)
}

// addToSpace registers obj with the world's space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
