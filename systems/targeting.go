package systems

import (
	"math"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/targeting"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyTargets lets every hostile combatant pick up friendly
// combatants inside its aggro radius. The player is always kept first.
func UpdateEnemyTargets(e *ecs.ECS) {
	player, ok := findPlayer(e.World)
	if !ok {
		return
	}
	acquireTargets(e.World,
		(*components.CombatStatsData).IsHostile,
		(*components.CombatStatsData).IsFriendly,
		player.Entity(), true)
}

// UpdateHexlingTargets lets hexlings pick up hostile combatants while they
// are charging. Recalling hexlings hold no targets.
func UpdateHexlingTargets(e *ecs.ECS) {
	game, ok := GetGame(e)
	if !ok || game.HexlingMode != cfg.Charging {
		return
	}
	acquireTargets(e.World,
		(*components.CombatStatsData).IsFriendly,
		(*components.CombatStatsData).IsHostile,
		0, false)
}

// acquireTargets runs one targeting pass for every hunter with a positive
// aggro radius, drawing candidates from the live prey.
func acquireTargets(w donburi.World, hunter, prey func(*components.CombatStatsData) bool, priority donburi.Entity, hasPriority bool) {
	var candidates []targeting.Candidate[donburi.Entity]
	components.Combat.Each(w, func(entry *donburi.Entry) {
		stats := components.Combat.Get(entry)
		if !prey(stats) || !stats.Alive() || isMarked(entry) || !entry.HasComponent(components.Object) {
			return
		}
		x, y := centerOf(entry)
		candidates = append(candidates, targeting.Candidate[donburi.Entity]{ID: entry.Entity(), X: x, Y: y})
	})

	components.Combat.Each(w, func(entry *donburi.Entry) {
		stats := components.Combat.Get(entry)
		if !hunter(stats) || stats.AggroRadius <= 0 || isMarked(entry) {
			return
		}
		x, y := centerOf(entry)
		stats.Targets = targeting.Acquire(stats.Targets, entry.Entity(), x, y, stats.AggroRadius, candidates)
		targeting.Sort(stats.Targets, priority, hasPriority, distanceFrom(w, x, y))
	})
}

// distanceFrom measures how far a live entity is from (x, y). Entities that
// no longer resolve report false.
func distanceFrom(w donburi.World, x, y float64) func(donburi.Entity) (float64, bool) {
	return func(id donburi.Entity) (float64, bool) {
		tx, ty, ok := positionOf(w, id)
		if !ok {
			return 0, false
		}
		return math.Hypot(tx-x, ty-y), true
	}
}
