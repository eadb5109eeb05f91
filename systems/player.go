package systems

import (
	"math"
	"time"

	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UpdateCharacters runs one tick: due timers fire first, then each living
// hero runs movement, combat and presentation, and finally queued
// notifications are delivered.
func UpdateCharacters(w donburi.World, dt time.Duration) {
	if clock := Clock(w); clock != nil {
		clock.Advance(dt)
	}

	var heroes []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		heroes = append(heroes, e)
	})
	for _, e := range heroes {
		updateHero(e, dt)
	}

	events.ProcessAllEvents(w)
}

func updateHero(e *donburi.Entry, dt time.Duration) {
	if !e.Valid() || isDead(e) {
		return
	}
	input := components.Input.Get(e)
	if input.Frozen {
		return
	}
	in := input.Current

	UpdateMovement(e, in)
	updateCombat(e, in, dt)
	updatePresentation(e, in)
}

func updateCombat(e *donburi.Entry, in components.InputSnapshot, dt time.Duration) {
	UpdateCharge(e, dt)

	// A charge whose button is no longer held is released even if the
	// release edge was missed.
	if components.Charge.Get(e).IsCharging && (in.SpecialReleased || !in.SpecialHeld) {
		ReleaseSpecialAttack(e)
	}
	if in.AttackPressed {
		Attack(e)
	}
	if in.SpecialPressed {
		StartSpecialAttack(e)
	}
	if in.InteractPressed {
		Interacted.Publish(e.World, InteractedEvent{Entry: e})
	}
}

// updatePresentation picks one key by precedence: rising, falling, running,
// idle. Keys already playing are not requested again.
func updatePresentation(e *donburi.Entry, in components.InputSnapshot) {
	mc := tuningOf(e).Movement
	m := components.Movement.Get(e)
	anim := components.Drivers.Get(e).Animation
	_, vy := components.Drivers.Get(e).Body.Velocity()

	switch {
	case m.IsJumping && vy < -mc.RisingThreshold:
		if !anim.IsPlaying(config.AnimJumpStart) {
			request(e, config.AnimJumpLoop)
		}
	case !m.IsGrounded:
		request(e, config.AnimJumpLoop)
	case math.Abs(in.Horizontal) > mc.RunThreshold:
		if !anim.IsPlaying(config.AnimAttack) {
			request(e, config.AnimRun)
		}
	default:
		if anim.IsPlaying(config.AnimAttack) ||
			anim.IsPlaying(config.AnimSpecialCharge) ||
			anim.IsPlaying(config.AnimSpecialAttack) ||
			anim.IsPlaying(config.AnimJumpEnd) {
			return
		}
		request(e, config.AnimIdle)
	}
}
