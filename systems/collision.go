package systems

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/collide"
	"github.com/automoto/hexcloud/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused between ticks to avoid allocations
var (
	colliderEntries []*donburi.Entry
	colliderBodies  []collide.Body
)

// UpdateCollisionDetection rebuilds every collider's contact list from a
// pairwise overlap pass. Both sides of an overlapping pair see the contact.
func UpdateCollisionDetection(e *ecs.ECS) {
	colliderEntries = colliderEntries[:0]
	colliderBodies = colliderBodies[:0]

	components.Collider.Each(e.World, func(entry *donburi.Entry) {
		col := components.Collider.Get(entry)
		col.Contacts = col.Contacts[:0]
		if isMarked(entry) || !entry.HasComponent(components.Object) {
			return
		}
		x, y := centerOf(entry)
		colliderEntries = append(colliderEntries, entry)
		colliderBodies = append(colliderBodies, collide.Body{
			X:      x,
			Y:      y,
			Shape:  col.Shape,
			Radius: col.Radius,
			HalfW:  col.HalfW,
			HalfH:  col.HalfH,
		})
	})

	for i, contacts := range collide.Detect(colliderBodies) {
		col := components.Collider.Get(colliderEntries[i])
		for _, c := range contacts {
			col.Contacts = append(col.Contacts, components.Contact{
				Other: colliderEntries[c.Other].Entity(),
				Side:  c.Side,
			})
		}
	}
}

// UpdatePlayerCollisions nudges the player's velocity away from every
// wall-tagged body it overlaps.
func UpdatePlayerCollisions(e *ecs.ECS) {
	player, ok := findPlayer(e.World)
	if !ok {
		return
	}
	vel := components.Velocity.Get(player)
	for _, c := range components.Collider.Get(player).Contacts {
		if !isWall(e.World, c.Other) {
			continue
		}
		dx, dy := collide.Push(c.Side)
		vel.X += dx * cfg.Player.WallNudge
		vel.Y += dy * cfg.Player.WallNudge
	}
}

// UpdateHexlingCollisions displaces hexlings out of walls and out of each
// other by one step of their speed per contact.
func UpdateHexlingCollisions(e *ecs.ECS) {
	step := cfg.Hexling.Speed * Delta(e)
	tags.Hexling.Each(e.World, func(entry *donburi.Entry) {
		if isMarked(entry) {
			return
		}
		obj := components.Object.Get(entry)
		for _, c := range components.Collider.Get(entry).Contacts {
			if !isWall(e.World, c.Other) {
				continue
			}
			dx, dy := collide.Push(c.Side)
			obj.Translate(dx*step, dy*step)
		}
	})
}

func isWall(w donburi.World, entity donburi.Entity) bool {
	other, ok := liveEntry(w, entity)
	return ok && other.HasComponent(tags.Wall)
}

// isPositionClear reports whether a square of the given size centred on
// (x, y) would sit clear of solid bodies.
func isPositionClear(space *resolv.Space, x, y, size float64) bool {
	tempObj := components.NewCenteredObject(x, y, size, size)
	space.Add(tempObj)
	defer space.Remove(tempObj)

	return tempObj.Check(0, 0, tags.ResolvSolid) == nil
}
