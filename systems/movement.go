package systems

import (
	"github.com/automoto/hexcloud/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePositions integrates velocity into position and syncs the resolv
// space for bodies that live in it.
func UpdatePositions(e *ecs.ECS) {
	dt := Delta(e)
	components.Velocity.Each(e.World, func(entry *donburi.Entry) {
		if isMarked(entry) {
			return
		}
		vel := components.Velocity.Get(entry)
		obj := components.Object.Get(entry)
		obj.Translate(vel.X*dt, vel.Y*dt)
		if obj.Space != nil {
			obj.Update()
		}
	})
}
