package components

import "github.com/yohamta/donburi"

// StatsData is the leveling and health model of a character.
// MaxHealth, CurrentArmor and CurrentDamage are derived from Level.
type StatsData struct {
	BaseHealth float64
	BaseArmor  float64
	BaseDamage float64

	HealthPerLevel float64
	ArmorPerLevel  float64
	DamagePerLevel float64

	ExpMultiplier     float64
	MinDamageFraction float64

	Level          int
	CurrentExp     float64
	ExpToNextLevel float64

	MaxHealth     float64
	CurrentArmor  float64
	CurrentDamage float64
	CurrentHealth float64

	Dead bool
}

var Stats = donburi.NewComponentType[StatsData]()
