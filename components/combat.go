package components

import (
	cfg "github.com/automoto/hexcloud/config"
	"github.com/yohamta/donburi"
)

// CombatStatsData is the mutable combat record of any combatant.
// Targets never holds duplicates or the owner; Targets[0] is the primary target.
type CombatStatsData struct {
	Faction     cfg.Faction
	AggroRadius float64
	AttackRange float64
	AttackRate  float64
	BaseDamage  float64
	Cooldown    float64
	Health      float64
	MaxHealth   float64
	Targets     []donburi.Entity
}

// Alive reports whether the combatant still has health left.
func (c *CombatStatsData) Alive() bool {
	return c.Health > 0
}

// IsHostile reports whether the combatant fights on the enemy side.
func (c *CombatStatsData) IsHostile() bool {
	return c.Faction == cfg.Hostile
}

// IsFriendly reports whether the combatant fights on the player's side.
func (c *CombatStatsData) IsFriendly() bool {
	return c.Faction == cfg.Friendly
}

// Opposes reports whether other is on the opposite faction.
func (c *CombatStatsData) Opposes(other *CombatStatsData) bool {
	return c.Faction != other.Faction
}

// Primary returns the first target, if any.
func (c *CombatStatsData) Primary() (donburi.Entity, bool) {
	if len(c.Targets) == 0 {
		return 0, false
	}
	return c.Targets[0], true
}

// ClearTargets drops every target.
func (c *CombatStatsData) ClearTargets() {
	c.Targets = c.Targets[:0]
}

var Combat = donburi.NewComponentType[CombatStatsData]()
