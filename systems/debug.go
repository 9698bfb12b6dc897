package systems

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/collide"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider and draws a line from each combatant to
// its primary target. Enabled with -debug.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawDebug {
		return
	}

	components.Collider.Each(ecs.World, func(entry *donburi.Entry) {
		if isMarked(entry) || !entry.HasComponent(components.Object) {
			return
		}
		col := components.Collider.Get(entry)
		wx, wy := centerOf(entry)
		x, y := WorldToScreen(ecs, wx, wy)

		clr := cfg.HUD.DebugColor
		if len(col.Contacts) > 0 {
			clr = cfg.Red
		}
		switch col.Shape {
		case collide.Circle:
			vector.StrokeCircle(screen, float32(x), float32(y), float32(col.Radius), 1, clr, false)
		case collide.Box:
			vector.StrokeRect(screen,
				float32(x-col.HalfW), float32(y-col.HalfH),
				float32(col.HalfW*2), float32(col.HalfH*2),
				1, clr, false)
		}
	})

	components.Combat.Each(ecs.World, func(entry *donburi.Entry) {
		target, ok := components.Combat.Get(entry).Primary()
		if !ok || isMarked(entry) {
			return
		}
		tx, ty, ok := positionOf(ecs.World, target)
		if !ok {
			return
		}
		wx, wy := centerOf(entry)
		x0, y0 := WorldToScreen(ecs, wx, wy)
		x1, y1 := WorldToScreen(ecs, tx, ty)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, cfg.HUD.DebugTarget, false)
	})
}
