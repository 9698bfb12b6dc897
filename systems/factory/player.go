package factory

import (
	"github.com/automoto/hexcloud/archetypes"
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/collide"
	"github.com/automoto/hexcloud/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Radius * 2
	obj := components.NewCenteredObject(x, y, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{})
	components.Collider.SetValue(player, components.ColliderData{
		Shape:  collide.Circle,
		Radius: cfg.Player.Radius,
	})
	components.Combat.SetValue(player, components.CombatStatsData{
		Faction:     cfg.Friendly,
		AggroRadius: cfg.Player.AggroRadius,
		AttackRange: cfg.Player.AttackRange,
		AttackRate:  cfg.Player.AttackRate,
		BaseDamage:  cfg.Player.BaseDamage,
		Health:      cfg.Player.Health,
		MaxHealth:   cfg.Player.Health,
	})
	components.Shape.SetValue(player, components.ShapeData{
		Sides:  cfg.Player.Sides,
		Radius: cfg.Player.Radius,
		Color:  cfg.Player.RecallColor,
		ScaleX: 1,
	})

	addToSpace(ecs, obj)
	return player
}
