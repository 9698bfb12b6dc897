package systems

import (
	"github.com/automoto/hexcloud/components"
	"github.com/automoto/hexcloud/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetGame returns the world's game singleton.
func GetGame(e *ecs.ECS) (*components.GameData, bool) {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Game.Get(entry), true
}

// Delta returns the duration of the current tick in seconds.
func Delta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

// SetDelta overrides the duration of the current tick.
func SetDelta(e *ecs.ECS, dt float64) {
	if entry, ok := components.Clock.First(e.World); ok {
		components.Clock.Get(entry).Delta = dt
	}
}

func getSpace(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// liveEntry resolves an entity that still exists and is not marked for removal.
func liveEntry(w donburi.World, entity donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(entity) {
		return nil, false
	}
	entry := w.Entry(entity)
	if entry.HasComponent(tags.Despawn) {
		return nil, false
	}
	return entry, true
}

// positionOf returns the centre of a live entity that has a body.
func positionOf(w donburi.World, entity donburi.Entity) (float64, float64, bool) {
	entry, ok := liveEntry(w, entity)
	if !ok || !entry.HasComponent(components.Object) {
		return 0, 0, false
	}
	x, y := components.Object.Get(entry).Center()
	return x, y, true
}

func centerOf(entry *donburi.Entry) (float64, float64) {
	return components.Object.Get(entry).Center()
}

func isMarked(entry *donburi.Entry) bool {
	return entry.HasComponent(tags.Despawn)
}

// MarkForRemoval flags an entry to be removed by UpdateRemovals. Marking is
// idempotent and must not happen while iterating a query over the entry.
func MarkForRemoval(entry *donburi.Entry) {
	if entry.Valid() && !entry.HasComponent(tags.Despawn) {
		entry.AddComponent(tags.Despawn)
	}
}

// findPlayer returns the live player entry.
func findPlayer(w donburi.World) (*donburi.Entry, bool) {
	entry, ok := tags.Player.First(w)
	if !ok || isMarked(entry) {
		return nil, false
	}
	return entry, true
}
