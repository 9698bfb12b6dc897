package archetypes

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Collider,
		components.Velocity,
		components.Combat,
		components.Shape,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Collider,
		components.Velocity,
		components.Combat,
		components.Shape,
	)
	// Hexlings carry the Wall tag so they share the wall collision channel.
	Hexling = newArchetype(
		tags.Hexling,
		tags.Wall,
		components.Hexling,
		components.Object,
		components.Collider,
		components.Velocity,
		components.Combat,
		components.Shape,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Collider,
		components.Shape,
	)
	Debris = newArchetype(
		tags.Debris,
		components.Debris,
		components.Object,
		components.Velocity,
		components.Shape,
	)
	Space = newArchetype(
		components.Space,
	)
	Game = newArchetype(
		components.Game,
		components.Clock,
		components.Audio,
		components.Input,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Fog = newArchetype(
		components.Fog,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
