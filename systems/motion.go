package systems

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/gamemath"
	"github.com/automoto/hexcloud/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyMotion chases the primary target or, with no target, circles
// the enemy's anchor. A primary target that no longer exists leaves the
// velocity untouched for this tick.
func UpdateEnemyMotion(e *ecs.ECS) {
	dt := Delta(e)
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if isMarked(entry) {
			return
		}
		enemy := components.Enemy.Get(entry)
		shape := components.Shape.Get(entry)
		shape.Rotation = gamemath.WrapAngle(shape.Rotation + enemy.SpinRate*dt)

		vel := components.Velocity.Get(entry)
		x, y := centerOf(entry)

		target, ok := components.Combat.Get(entry).Primary()
		if !ok {
			vel.X, vel.Y = gamemath.Orbit(x, y, enemy.AnchorX, enemy.AnchorY, enemy.OrbitSpeed)
			return
		}
		tx, ty, ok := positionOf(e.World, target)
		if !ok {
			return
		}
		vel.X, vel.Y = gamemath.Toward(x, y, tx, ty, enemy.AggroSpeed)
	})
}

// HexlingSteer holds what the hexling motion policy looks at.
type HexlingSteer struct {
	X, Y             float64
	PlayerX, PlayerY float64

	TargetX, TargetY float64
	HasTarget        bool

	// Returning is the hysteresis flag carried over from the last tick
	Returning bool
}

// HexlingVelocity decides a hexling's velocity for the given mode and
// reports the updated returning flag.
//
// Recalling hexlings head for the player once they drift past
// MaxPlayerDistance and keep coming until they are within
// MinPlayerDistance, then stop. Charging hexlings chase their primary
// target, or move straight away from the player when they have none.
func HexlingVelocity(mode cfg.HexlingMode, s HexlingSteer) (vx, vy float64, returning bool) {
	speed := cfg.Hexling.Speed

	if mode == cfg.Charging {
		if s.HasTarget {
			vx, vy = gamemath.Toward(s.X, s.Y, s.TargetX, s.TargetY, speed)
			return vx, vy, false
		}
		vx, vy = gamemath.Away(s.X, s.Y, s.PlayerX, s.PlayerY, speed)
		return vx, vy, false
	}

	dist := gamemath.Distance(s.X, s.Y, s.PlayerX, s.PlayerY)
	returning = s.Returning
	switch {
	case dist > cfg.Hexling.MaxPlayerDistance:
		returning = true
	case dist <= cfg.Hexling.MinPlayerDistance:
		returning = false
	}
	if !returning {
		return 0, 0, false
	}
	vx, vy = gamemath.Toward(s.X, s.Y, s.PlayerX, s.PlayerY, speed)
	return vx, vy, true
}

// UpdateHexlingMotion steers every hexling according to the shared mode.
func UpdateHexlingMotion(e *ecs.ECS) {
	game, ok := GetGame(e)
	if !ok {
		return
	}
	player, ok := findPlayer(e.World)
	if !ok {
		return
	}
	px, py := centerOf(player)

	tags.Hexling.Each(e.World, func(entry *donburi.Entry) {
		if isMarked(entry) {
			return
		}
		stats := components.Combat.Get(entry)
		if game.HexlingMode == cfg.Recalling {
			stats.ClearTargets()
		}

		hexling := components.Hexling.Get(entry)
		x, y := centerOf(entry)
		steer := HexlingSteer{X: x, Y: y, PlayerX: px, PlayerY: py, Returning: hexling.Returning}

		if target, ok := stats.Primary(); ok {
			tx, ty, live := positionOf(e.World, target)
			if !live {
				return
			}
			steer.TargetX, steer.TargetY, steer.HasTarget = tx, ty, true
		}

		vel := components.Velocity.Get(entry)
		vel.X, vel.Y, hexling.Returning = HexlingVelocity(game.HexlingMode, steer)
	})
}
