package systems

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/shared/gamemath"
	"github.com/automoto/hexcloud/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveAttack runs one attack step of attacker against target at the given
// distance and reports whether damage landed. A ready attacker with a live
// target in range hits and re-arms; otherwise the cooldown ticks down by dt,
// and may go negative.
func ResolveAttack(attacker, target *components.CombatStatsData, distance, dt float64, mode cfg.CooldownMode) bool {
	if attacker.Cooldown <= 0 && target.Alive() && distance < attacker.AttackRange {
		target.Health -= attacker.BaseDamage
		attacker.Cooldown = rearm(attacker.AttackRate, dt, mode)
		return true
	}
	attacker.Cooldown -= dt
	return false
}

func rearm(rate, dt float64, mode cfg.CooldownMode) float64 {
	if mode == cfg.CooldownFrameCoupled {
		return rate * dt
	}
	return rate * cfg.Combat.ReferenceStep
}

// UpdateAttacks resolves one attack step for every combatant holding a
// primary target. Hexlings wear down with every hit they land.
func UpdateAttacks(e *ecs.ECS) {
	game, ok := GetGame(e)
	if !ok {
		return
	}
	dt := Delta(e)

	components.Combat.Each(e.World, func(entry *donburi.Entry) {
		if isMarked(entry) {
			return
		}
		stats := components.Combat.Get(entry)
		target, ok := stats.Primary()
		if !ok {
			return
		}
		targetEntry, ok := liveEntry(e.World, target)
		if !ok || !targetEntry.HasComponent(components.Combat) {
			return
		}

		x, y := centerOf(entry)
		tx, ty := centerOf(targetEntry)
		dist := gamemath.Distance(x, y, tx, ty)

		if !ResolveAttack(stats, components.Combat.Get(targetEntry), dist, dt, game.Cooldown) {
			return
		}
		if entry.HasComponent(tags.Hexling) {
			stats.Health -= cfg.Hexling.Deterioration
		}
		if stats.IsHostile() {
			PlaySFX(e, cfg.SoundEnemyAttack)
		}
	})
}
