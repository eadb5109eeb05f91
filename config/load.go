package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Load reads a YAML tuning file and applies it over Defaults. Keys missing
// from the file keep their default values.
func Load(path string) (Tuning, error) {
	t := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return Parse(data)
}

// Parse applies YAML tuning data over Defaults and validates the result.
func Parse(data []byte) (Tuning, error) {
	t := Defaults()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidTuning, field, v)
}

// Validate reports the first out-of-range value.
func (t *Tuning) Validate() error {
	m, c, s, p := t.Movement, t.Combat, t.Stats, t.Physics

	switch {
	case m.MoveSpeed < 0:
		return invalid("movement.moveSpeed", m.MoveSpeed)
	case m.JumpForce < 0:
		return invalid("movement.jumpForce", m.JumpForce)
	case m.GroundCheckRadius <= 0:
		return invalid("movement.groundCheckRadius", m.GroundCheckRadius)
	case m.PlatformDropWindow <= 0:
		return invalid("movement.platformDropWindow", m.PlatformDropWindow)
	}

	switch {
	case c.ComboLength < 1:
		return invalid("combat.comboLength", c.ComboLength)
	case c.ComboWindow <= 0:
		return invalid("combat.comboWindow", c.ComboWindow)
	case c.ComboCooldown < 0:
		return invalid("combat.comboCooldown", c.ComboCooldown)
	case c.AttackRange <= 0:
		return invalid("combat.attackRange", c.AttackRange)
	case c.SpecialChargeTime <= 0:
		return invalid("combat.specialChargeTime", c.SpecialChargeTime)
	case c.SpecialDamageMultiplier < 0:
		return invalid("combat.specialDamageMultiplier", c.SpecialDamageMultiplier)
	case c.ProjectileSpawnDelay < 0:
		return invalid("combat.projectileSpawnDelay", c.ProjectileSpawnDelay)
	case c.ProjectileLifetime <= 0:
		return invalid("combat.projectileLifetime", c.ProjectileLifetime)
	}

	switch {
	case s.BaseHealth <= 0:
		return invalid("stats.baseHealth", s.BaseHealth)
	case s.BaseArmor < 0:
		return invalid("stats.baseArmor", s.BaseArmor)
	case s.BaseDamage < 0:
		return invalid("stats.baseDamage", s.BaseDamage)
	case s.HealthPerLevel < 0 || s.ArmorPerLevel < 0 || s.DamagePerLevel < 0:
		return invalid("stats.perLevel", [3]float64{s.HealthPerLevel, s.ArmorPerLevel, s.DamagePerLevel})
	case s.ExpToFirstLevel <= 0:
		return invalid("stats.expToFirstLevel", s.ExpToFirstLevel)
	case s.ExpMultiplier <= 1:
		return invalid("stats.expMultiplier", s.ExpMultiplier)
	case s.MinDamageFraction < 0 || s.MinDamageFraction > 1:
		return invalid("stats.minDamageFraction", s.MinDamageFraction)
	}

	switch {
	case p.Gravity < 0:
		return invalid("physics.gravity", p.Gravity)
	case p.MaxFallSpeed <= 0:
		return invalid("physics.maxFallSpeed", p.MaxFallSpeed)
	case p.CellSize <= 0:
		return invalid("physics.cellSize", p.CellSize)
	}
	return nil
}
