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

func CreateHexling(ecs *ecs.ECS, x, y float64, tint color.RGBA) *donburi.Entry {
	hexling := archetypes.Hexling.Spawn(ecs)

	size := cfg.Hexling.Radius * 2
	obj := components.NewCenteredObject(x, y, size, size, tags.ResolvHexling)
	obj.Data = hexling
	components.Object.SetValue(hexling, components.ObjectData{Object: obj})

	components.Hexling.SetValue(hexling, components.HexlingData{})
	components.Collider.SetValue(hexling, components.ColliderData{
		Shape:  collide.Circle,
		Radius: cfg.Hexling.Radius,
	})
	components.Combat.SetValue(hexling, components.CombatStatsData{
		Faction:     cfg.Friendly,
		AggroRadius: cfg.Hexling.AggroRadius,
		AttackRange: cfg.Hexling.AttackRange,
		AttackRate:  cfg.Hexling.AttackRate,
		BaseDamage:  cfg.Hexling.BaseDamage,
		Health:      cfg.Hexling.Health,
		MaxHealth:   cfg.Hexling.Health,
	})
	components.Shape.SetValue(hexling, components.ShapeData{
		Sides:  cfg.Hexling.Sides,
		Radius: cfg.Hexling.Radius,
		Color:  tint,
		ScaleX: 1,
	})

	addToSpace(ecs, obj)
	return hexling
}
