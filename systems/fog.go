package systems

import (
	"github.com/automoto/hexcloud/components"
	"github.com/automoto/hexcloud/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateFog records the light sources for this tick: the player and every
// live hexling. Stale hexling entries are dropped.
func UpdateFog(e *ecs.ECS) {
	entry, ok := components.Fog.First(e.World)
	if !ok {
		return
	}
	fog := components.Fog.Get(entry)
	if fog.Hexlings == nil {
		fog.Hexlings = map[donburi.Entity]math.Vec2{}
	}

	if player, ok := findPlayer(e.World); ok {
		x, y := centerOf(player)
		fog.Player = math.Vec2{X: x, Y: y}
		fog.HasPlayer = true
	} else {
		fog.HasPlayer = false
	}

	for id := range fog.Hexlings {
		if _, ok := liveEntry(e.World, id); !ok {
			delete(fog.Hexlings, id)
		}
	}
	tags.Hexling.Each(e.World, func(hexling *donburi.Entry) {
		if isMarked(hexling) {
			return
		}
		x, y := centerOf(hexling)
		fog.Hexlings[hexling.Entity()] = math.Vec2{X: x, Y: y}
	})
}
