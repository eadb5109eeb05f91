package systems

import (
	"math"

	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/yohamta/donburi"
)

// NewStats returns level 1 stats at full health.
func NewStats(c config.StatsConfig) components.StatsData {
	s := components.StatsData{
		BaseHealth:        c.BaseHealth,
		BaseArmor:         c.BaseArmor,
		BaseDamage:        c.BaseDamage,
		HealthPerLevel:    c.HealthPerLevel,
		ArmorPerLevel:     c.ArmorPerLevel,
		DamagePerLevel:    c.DamagePerLevel,
		ExpMultiplier:     c.ExpMultiplier,
		MinDamageFraction: c.MinDamageFraction,
		Level:             1,
		ExpToNextLevel:    c.ExpToFirstLevel,
	}
	RecomputeStats(&s)
	s.CurrentHealth = s.MaxHealth
	return s
}

// RecomputeStats derives max health, armor and damage from the level.
func RecomputeStats(s *components.StatsData) {
	gained := float64(s.Level - 1)
	s.MaxHealth = s.BaseHealth + s.HealthPerLevel*gained
	s.CurrentArmor = s.BaseArmor + s.ArmorPerLevel*gained
	s.CurrentDamage = s.BaseDamage + s.DamagePerLevel*gained
}

// MitigatedDamage subtracts armor but always lets minFraction of the raw
// damage through.
func MitigatedDamage(damage, armor, minFraction float64) float64 {
	return math.Max(damage-armor, damage*minFraction)
}

// GainExp adds exp and performs as many level-ups as it pays for. Each level
// keeps the health gap to max unchanged. Returns the number of levels gained.
func GainExp(e *donburi.Entry, amount float64) int {
	s := components.Stats.Get(e)
	if s.Dead || amount <= 0 {
		return 0
	}

	s.CurrentExp += amount
	ExpChanged.Publish(e.World, ExpChangedEvent{Entry: e, Current: s.CurrentExp, ToNext: s.ExpToNextLevel})

	gained := 0
	for s.ExpToNextLevel > 0 && s.CurrentExp >= s.ExpToNextLevel {
		s.CurrentExp -= s.ExpToNextLevel
		s.Level++
		s.ExpToNextLevel *= s.ExpMultiplier

		oldMax := s.MaxHealth
		RecomputeStats(s)
		s.CurrentHealth = math.Min(s.CurrentHealth+s.MaxHealth-oldMax, s.MaxHealth)
		gained++

		LevelUp.Publish(e.World, LevelUpEvent{Entry: e, Level: s.Level})
		HealthChanged.Publish(e.World, HealthChangedEvent{Entry: e, Current: s.CurrentHealth, Max: s.MaxHealth})
	}

	ExpChanged.Publish(e.World, ExpChangedEvent{Entry: e, Current: s.CurrentExp, ToNext: s.ExpToNextLevel})
	return gained
}

// TakeDamage applies mitigated damage and returns how much health was lost.
// Reaching zero health starts the death sequence.
func TakeDamage(e *donburi.Entry, damage float64) float64 {
	s := components.Stats.Get(e)
	if s.Dead || damage < 0 {
		return 0
	}

	actual := MitigatedDamage(damage, s.CurrentArmor, s.MinDamageFraction)
	before := s.CurrentHealth
	s.CurrentHealth = math.Max(s.CurrentHealth-actual, 0)
	HealthChanged.Publish(e.World, HealthChangedEvent{Entry: e, Current: s.CurrentHealth, Max: s.MaxHealth})

	if s.CurrentHealth == 0 {
		Die(e)
	}
	return before - components.Stats.Get(e).CurrentHealth
}

func Heal(e *donburi.Entry, amount float64) {
	s := components.Stats.Get(e)
	if s.Dead || amount < 0 {
		return
	}
	s.CurrentHealth = math.Min(s.CurrentHealth+amount, s.MaxHealth)
	HealthChanged.Publish(e.World, HealthChangedEvent{Entry: e, Current: s.CurrentHealth, Max: s.MaxHealth})
}
