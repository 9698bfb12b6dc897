package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds optional overrides for gameplay values. Only fields present in
// the YAML document replace the defaults set in init().
type Tuning struct {
	Player *struct {
		Speed     *float64 `yaml:"speed"`
		WallNudge *float64 `yaml:"wall_nudge"`
		Health    *float64 `yaml:"health"`
	} `yaml:"player"`

	Hexling *struct {
		Speed             *float64 `yaml:"speed"`
		MinPlayerDistance *float64 `yaml:"min_player_distance"`
		MaxPlayerDistance *float64 `yaml:"max_player_distance"`
		AggroRadius       *float64 `yaml:"aggro_radius"`
		AttackRange       *float64 `yaml:"attack_range"`
		AttackRate        *float64 `yaml:"attack_rate"`
		BaseDamage        *float64 `yaml:"base_damage"`
		Health            *float64 `yaml:"health"`
		Deterioration     *float64 `yaml:"deterioration"`
		SpawnHoldMS       *float64 `yaml:"spawn_hold_ms"`
	} `yaml:"hexling"`

	Enemy *struct {
		OrbitSpeed  *float64     `yaml:"orbit_speed"`
		AggroSpeed  *float64     `yaml:"aggro_speed"`
		SpinRate    *float64     `yaml:"spin_rate"`
		AggroRadius *float64     `yaml:"aggro_radius"`
		AttackRange *float64     `yaml:"attack_range"`
		AttackRate  *float64     `yaml:"attack_rate"`
		BaseDamage  *float64     `yaml:"base_damage"`
		Health      *float64     `yaml:"health"`
		Spawns      []EnemySpawn `yaml:"spawns"`
	} `yaml:"enemy"`

	Combat *struct {
		FrameCoupledCooldown *bool    `yaml:"frame_coupled_cooldown"`
		ReferenceStep        *float64 `yaml:"reference_step"`
	} `yaml:"combat"`

	Debris *struct {
		Count    *int     `yaml:"count"`
		Speed    *float64 `yaml:"speed"`
		Lifetime *float64 `yaml:"lifetime"`
	} `yaml:"debris"`
}

// ParseTuning decodes a YAML tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	return &t, nil
}

// LoadTuning reads the YAML file at path and applies it over the current values.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// Apply copies every present override into the package configuration.
func (t *Tuning) Apply() {
	if p := t.Player; p != nil {
		setFloat(&Player.Speed, p.Speed)
		setFloat(&Player.WallNudge, p.WallNudge)
		setFloat(&Player.Health, p.Health)
	}

	if h := t.Hexling; h != nil {
		setFloat(&Hexling.Speed, h.Speed)
		setFloat(&Hexling.MinPlayerDistance, h.MinPlayerDistance)
		setFloat(&Hexling.MaxPlayerDistance, h.MaxPlayerDistance)
		setFloat(&Hexling.AggroRadius, h.AggroRadius)
		setFloat(&Hexling.AttackRange, h.AttackRange)
		setFloat(&Hexling.AttackRate, h.AttackRate)
		setFloat(&Hexling.BaseDamage, h.BaseDamage)
		setFloat(&Hexling.Health, h.Health)
		setFloat(&Hexling.Deterioration, h.Deterioration)
		setFloat(&Hexling.SpawnHoldMS, h.SpawnHoldMS)
	}

	if e := t.Enemy; e != nil {
		setFloat(&Enemy.OrbitSpeed, e.OrbitSpeed)
		setFloat(&Enemy.AggroSpeed, e.AggroSpeed)
		setFloat(&Enemy.SpinRate, e.SpinRate)
		setFloat(&Enemy.AggroRadius, e.AggroRadius)
		setFloat(&Enemy.AttackRange, e.AttackRange)
		setFloat(&Enemy.AttackRate, e.AttackRate)
		setFloat(&Enemy.BaseDamage, e.BaseDamage)
		setFloat(&Enemy.Health, e.Health)
		if len(e.Spawns) > 0 {
			Enemy.Spawns = e.Spawns
		}
	}

	if c := t.Combat; c != nil {
		if c.FrameCoupledCooldown != nil {
			if *c.FrameCoupledCooldown {
				Combat.Cooldown = CooldownFrameCoupled
			} else {
				Combat.Cooldown = CooldownFixed
			}
		}
		setFloat(&Combat.ReferenceStep, c.ReferenceStep)
	}

	if d := t.Debris; d != nil {
		if d.Count != nil {
			Debris.Count = *d.Count
		}
		setFloat(&Debris.Speed, d.Speed)
		setFloat(&Debris.Lifetime, d.Lifetime)
	}
}
