package factory

import (
	"github.com/automoto/herokit/archetypes"
	"github.com/automoto/herokit/components"
	cfg "github.com/automoto/herokit/config"
	"github.com/automoto/herokit/systems"
	"github.com/automoto/herokit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns a target dummy on obj. Enemies use the same stats model
// as heroes, without growth. A zero expReward uses the tuning default.
func CreateEnemy(w donburi.World, obj *resolv.Object, t *cfg.Tuning, expReward float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	if expReward <= 0 {
		expReward = t.Enemy.DefaultExp
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		ExpReward:    expReward,
		ContactReady: true,
	})

	sc := t.Stats
	sc.BaseHealth = t.Enemy.Health
	sc.BaseArmor = t.Enemy.Armor
	sc.HealthPerLevel, sc.ArmorPerLevel, sc.DamagePerLevel = 0, 0, 0
	components.Stats.SetValue(enemy, systems.NewStats(sc))

	return enemy
}
