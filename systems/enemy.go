package systems

import (
	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EnemyHits queues hits on enemy colliders as damage events.
type EnemyHits struct{}

var _ components.HitResolver = EnemyHits{}

func (EnemyHits) ResolveHit(attacker *donburi.Entry, target *resolv.Object, damage float64) {
	e, ok := target.Data.(*donburi.Entry)
	if !ok || !e.Valid() || !e.HasComponent(tags.Enemy) || isDead(e) {
		return
	}
	if e.HasComponent(components.DamageEvent) {
		ev := components.DamageEvent.Get(e)
		ev.Amount += damage
		ev.Attacker = attacker
		return
	}
	e.AddComponent(components.DamageEvent)
	components.DamageEvent.Set(e, &components.DamageEventData{Amount: damage, Attacker: attacker})
}

// UpdateEnemies applies queued damage, rewards the killing hero with exp,
// lets enemies hurt heroes they touch, and removes dead enemies.
func UpdateEnemies(w donburi.World, colliders Colliders) {
	var damaged []*donburi.Entry
	components.DamageEvent.Each(w, func(e *donburi.Entry) {
		damaged = append(damaged, e)
	})
	for _, e := range damaged {
		applyDamageEvent(e)
	}

	applyContactDamage(w)

	var dead []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if isDead(e) {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		colliders.Remove(components.Object.Get(e).Object)
		w.Remove(e.Entity())
	}

	events.ProcessAllEvents(w)
}

func applyDamageEvent(e *donburi.Entry) {
	ev := *components.DamageEvent.Get(e)
	e.RemoveComponent(components.DamageEvent)

	applied := TakeDamage(e, ev.Amount)
	killed := isDead(e)
	Hit.Publish(e.World, HitEvent{Attacker: ev.Attacker, Target: e, Damage: applied, Killed: killed})

	if !killed || ev.Attacker == nil || !ev.Attacker.Valid() || !ev.Attacker.HasComponent(components.Stats) {
		return
	}
	GainExp(ev.Attacker, components.Enemy.Get(e).ExpReward)
	if ev.Attacker.HasComponent(components.Player) {
		components.Player.Get(ev.Attacker).Kills++
	}
}

func applyContactDamage(w donburi.World) {
	clock := Clock(w)
	var heroes []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if !isDead(e) {
			heroes = append(heroes, e)
		}
	})
	if len(heroes) == 0 || clock == nil {
		return
	}

	var enemies []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	for _, enemy := range enemies {
		if isDead(enemy) || !components.Enemy.Get(enemy).ContactReady {
			continue
		}
		obj := components.Object.Get(enemy).Object
		for _, hero := range heroes {
			if isDead(hero) || !overlaps(obj, components.Object.Get(hero).Object) {
				continue
			}
			ec := tuningOf(hero).Enemy
			applied := TakeDamage(hero, ec.ContactDamage)
			Hit.Publish(w, HitEvent{Attacker: enemy, Target: hero, Damage: applied, Killed: isDead(hero)})

			components.Enemy.Get(enemy).ContactReady = false
			clock.AfterFor(enemy.Entity(), ec.ContactCooldown, func() {
				if alive(enemy) {
					components.Enemy.Get(enemy).ContactReady = true
				}
			})
			break
		}
	}
}
