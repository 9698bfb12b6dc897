package systems

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebris spins debris pieces and expires them once their timer runs out.
func UpdateDebris(e *ecs.ECS) {
	dt := Delta(e)
	var expired []*donburi.Entry

	components.Debris.Each(e.World, func(entry *donburi.Entry) {
		if isMarked(entry) {
			return
		}
		debris := components.Debris.Get(entry)
		shape := components.Shape.Get(entry)
		shape.Rotation = gamemath.WrapAngle(shape.Rotation + debris.Spin*dt)

		debris.Timer -= dt
		if debris.Timer <= 0 {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		MarkForRemoval(entry)
	}
	if len(expired) > 0 {
		PlaySFX(e, cfg.SoundDebris)
	}
}
