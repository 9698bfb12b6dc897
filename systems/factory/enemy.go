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

// CreateEnemy spawns a hostile combatant that idles around the anchor point.
func CreateEnemy(ecs *ecs.ECS, x, y, anchorX, anchorY float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	size := cfg.Enemy.Radius * 2
	obj := components.NewCenteredObject(x, y, size, size, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		AnchorX:    anchorX,
		AnchorY:    anchorY,
		OrbitSpeed: cfg.Enemy.OrbitSpeed,
		AggroSpeed: cfg.Enemy.AggroSpeed,
		SpinRate:   cfg.Enemy.SpinRate,
	})
	components.Collider.SetValue(enemy, components.ColliderData{
		Shape:  collide.Circle,
		Radius: cfg.Enemy.Radius,
	})
	components.Combat.SetValue(enemy, components.CombatStatsData{
		Faction:     cfg.Hostile,
		AggroRadius: cfg.Enemy.AggroRadius,
		AttackRange: cfg.Enemy.AttackRange,
		AttackRate:  cfg.Enemy.AttackRate,
		BaseDamage:  cfg.Enemy.BaseDamage,
		Health:      cfg.Enemy.Health,
		MaxHealth:   cfg.Enemy.Health,
	})
	components.Shape.SetValue(enemy, components.ShapeData{
		Sides:  cfg.Enemy.Sides,
		Radius: cfg.Enemy.Radius,
		Color:  cfg.Enemy.Color,
		ScaleX: 1,
	})

	addToSpace(ecs, obj)
	return enemy
}

// CreateEnemies spawns one enemy per configured spawn point.
func CreateEnemies(ecs *ecs.ECS) {
	for _, s := range cfg.Enemy.Spawns {
		CreateEnemy(ecs, s.X, s.Y, s.AnchorX, s.AnchorY)
	}
}
