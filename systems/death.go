package systems

import (
	"slices"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/systems/factory"
	"github.com/automoto/hexcloud/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths marks every combatant at or below zero health for removal.
// An enemy leaves a debris burst, the player ends the round. Entities that
// are already marked are skipped, so effects fire once per death.
func UpdateDeaths(e *ecs.ECS) {
	var dead []*donburi.Entry
	components.Combat.Each(e.World, func(entry *donburi.Entry) {
		if !components.Combat.Get(entry).Alive() && !isMarked(entry) {
			dead = append(dead, entry)
		}
	})
	if len(dead) == 0 {
		return
	}

	game, _ := GetGame(e)
	for _, entry := range dead {
		if !entry.Valid() || isMarked(entry) {
			continue
		}
		switch {
		case entry.HasComponent(tags.Enemy):
			x, y := centerOf(entry)
			if game != nil {
				factory.CreateDebrisBurst(e, x, y, game.Rand)
				game.Defeated++
			}
			PlayChord(e, cfg.Sound.EnemyDeath)
		case entry.HasComponent(tags.Player):
			EnterGameOver(e)
		}
		MarkForRemoval(entry)
	}
}

// UpdateRemovals despawns everything marked this tick. References held in
// target lists and the fog map are purged first so no system sees a
// dangling entity next tick. Runs last in the pipeline.
func UpdateRemovals(e *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.Despawn.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	if len(doomed) == 0 {
		return
	}

	gone := make(map[donburi.Entity]struct{}, len(doomed))
	for _, entry := range doomed {
		gone[entry.Entity()] = struct{}{}
	}
	isGone := func(id donburi.Entity) bool {
		_, ok := gone[id]
		return ok
	}

	components.Combat.Each(e.World, func(entry *donburi.Entry) {
		stats := components.Combat.Get(entry)
		stats.Targets = slices.DeleteFunc(stats.Targets, isGone)
	})
	if fogEntry, ok := components.Fog.First(e.World); ok {
		fog := components.Fog.Get(fogEntry)
		for id := range gone {
			delete(fog.Hexlings, id)
		}
	}

	for _, entry := range doomed {
		if entry.HasComponent(components.Object) {
			if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.World.Remove(entry.Entity())
	}
}
