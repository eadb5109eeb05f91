package systems

import (
	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/yohamta/donburi"
)

// Die starts the death sequence. It stops the body, freezes input, drops
// every timer the entity owns and clears combat state. Platform restore
// timers are not owned, so collision always comes back. Returns false if
// the entity was already dead.
func Die(e *donburi.Entry) bool {
	if e.HasComponent(components.Death) {
		return false
	}
	e.AddComponent(components.Death)
	components.Death.Set(e, &components.DeathData{})

	if clock := Clock(e.World); clock != nil {
		clock.CancelOwner(e.Entity())
	}

	if e.HasComponent(components.Stats) {
		components.Stats.Get(e).Dead = true
	}

	if e.HasComponent(components.Combo) {
		combo := components.Combo.Get(e)
		combo.IsAttacking = false
		combo.Index = 0
		combo.ResetTimer = nil
	}
	if e.HasComponent(components.Charge) {
		*components.Charge.Get(e) = components.ChargeData{}
	}
	if e.HasComponent(components.Input) {
		input := components.Input.Get(e)
		input.Current = components.InputSnapshot{}
		input.Frozen = true
	}

	if e.HasComponent(components.Drivers) {
		d := components.Drivers.Get(e)
		d.Body.SetVelocity(0, 0)
		play(e, config.AnimDeath)
	}

	Died.Publish(e.World, DiedEvent{Entry: e})
	return true
}

// OnDeathAnimationEnd announces game over once the death clip finishes.
func OnDeathAnimationEnd(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Death) {
		return
	}
	death := components.Death.Get(e)
	if death.GameOver {
		return
	}
	death.GameOver = true
	GameOver.Publish(e.World, GameOverEvent{Entry: e})
}
