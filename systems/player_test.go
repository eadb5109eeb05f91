package systems_test

import (
	"testing"
	"time"

	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/systems"
	"github.com/yohamta/donburi"
)

func TestPresentationIsIdempotent(t *testing.T) {
	h := newHero(t)

	for i := 0; i < 10; i++ {
		h.tick(components.InputSnapshot{}, 16*time.Millisecond)
	}
	if len(h.anim.plays) != 0 {
		t.Fatalf("idle hero replayed clips: %v", h.anim.plays)
	}

	for i := 0; i < 10; i++ {
		h.tick(components.InputSnapshot{Horizontal: 1}, 16*time.Millisecond)
	}
	if h.anim.count(config.AnimRun) != 1 || len(h.anim.plays) != 1 {
		t.Errorf("plays = %v, want a single Run", h.anim.plays)
	}

	h.ground.grounded = false
	for i := 0; i < 10; i++ {
		h.tick(components.InputSnapshot{}, 16*time.Millisecond)
	}
	if h.anim.count(config.AnimJumpLoop) != 1 {
		t.Errorf("falling replayed JumpLoop %d times, want 1", h.anim.count(config.AnimJumpLoop))
	}
}

func TestAttackIsNotInterrupted(t *testing.T) {
	h := newHero(t)

	h.tick(components.InputSnapshot{AttackPressed: true}, 0)
	if h.anim.current != config.AnimAttack {
		t.Fatalf("current clip = %v, want Attack", h.anim.current)
	}

	h.tick(components.InputSnapshot{}, 0)
	h.tick(components.InputSnapshot{Horizontal: 1}, 0)
	if h.anim.count(config.AnimIdle) != 0 || h.anim.count(config.AnimRun) != 0 {
		t.Fatalf("attack interrupted: %v", h.anim.plays)
	}

	h.anim.done = true
	systems.OnAttackEnd(h.e)
	h.tick(components.InputSnapshot{}, 0)
	if h.anim.current != config.AnimIdle {
		t.Errorf("current clip = %v, want Idle", h.anim.current)
	}
}

func TestChargeReleasedWhenButtonNotHeld(t *testing.T) {
	tests := []struct {
		name    string
		release components.InputSnapshot
	}{
		{name: "release edge", release: components.InputSnapshot{SpecialReleased: true}},
		{name: "missed release edge", release: components.InputSnapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHero(t)

			h.tick(components.InputSnapshot{SpecialPressed: true, SpecialHeld: true}, 0)
			h.tick(components.InputSnapshot{SpecialHeld: true}, 500*time.Millisecond)
			charge := components.Charge.Get(h.e)
			if !charge.IsCharging || charge.Progress != 0.25 {
				t.Fatalf("charging=%v progress=%v, want charging at 0.25", charge.IsCharging, charge.Progress)
			}
			if h.anim.current != config.AnimSpecialCharge {
				t.Fatalf("current clip = %v, want SpecialCharge", h.anim.current)
			}

			h.tick(tt.release, 0)
			if components.Charge.Get(h.e).IsCharging {
				t.Fatal("charge not released")
			}
			if h.anim.current != config.AnimSpecialAttack {
				t.Errorf("current clip = %v, want SpecialAttack", h.anim.current)
			}

			h.tick(components.InputSnapshot{}, 300*time.Millisecond)
			if len(h.projectiles.requests) != 1 {
				t.Errorf("projectile requests = %d, want 1", len(h.projectiles.requests))
			}
		})
	}
}

func TestDueTimersFireBeforeInput(t *testing.T) {
	h := newHero(t)

	h.tick(components.InputSnapshot{AttackPressed: true}, 0)
	systems.OnAttackEnd(h.e)

	// The combo window closes in the same tick the next attack arrives.
	h.tick(components.InputSnapshot{AttackPressed: true}, 500*time.Millisecond)

	if len(h.anim.combos) != 2 || h.anim.combos[1] != 0 {
		t.Errorf("combo indices = %v, want [0 0]", h.anim.combos)
	}
}

func TestDeadHeroIgnoresInput(t *testing.T) {
	h := newHero(t)
	systems.Die(h.e)
	h.anim.reset()

	h.tick(components.InputSnapshot{
		Horizontal:     1,
		JumpPressed:    true,
		AttackPressed:  true,
		SpecialPressed: true,
		SpecialHeld:    true,
	}, 16*time.Millisecond)

	if len(h.anim.plays) != 0 {
		t.Errorf("dead hero played %v", h.anim.plays)
	}
	if vx, vy := h.body.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("velocity = (%v, %v), want zero", vx, vy)
	}
	if !components.Input.Get(h.e).Frozen {
		t.Error("input should be frozen")
	}
}

func TestGameOverAnnouncedOnce(t *testing.T) {
	h := newHero(t)
	gameOver := 0
	systems.GameOver.Subscribe(h.w, func(w donburi.World, ev systems.GameOverEvent) {
		if ev.Entry != h.e {
			t.Error("game over for the wrong entry")
		}
		gameOver++
	})

	systems.OnDeathAnimationEnd(h.e)
	h.tick(components.InputSnapshot{}, 0)
	if gameOver != 0 {
		t.Fatal("game over before death")
	}

	systems.Die(h.e)
	systems.OnDeathAnimationEnd(h.e)
	systems.OnDeathAnimationEnd(h.e)
	h.tick(components.InputSnapshot{}, 0)

	if gameOver != 1 {
		t.Errorf("game over notifications = %d, want 1", gameOver)
	}
}

func TestInteractPublishes(t *testing.T) {
	h := newHero(t)
	interacted := 0
	systems.Interacted.Subscribe(h.w, func(w donburi.World, ev systems.InteractedEvent) {
		interacted++
	})

	h.tick(components.InputSnapshot{InteractPressed: true}, 0)
	h.tick(components.InputSnapshot{}, 0)

	if interacted != 1 {
		t.Errorf("interact notifications = %d, want 1", interacted)
	}
}

func TestFrozenInputSkipsHero(t *testing.T) {
	h := newHero(t)
	components.Input.Get(h.e).Frozen = true

	h.tick(components.InputSnapshot{AttackPressed: true, Horizontal: 1}, 0)

	if h.combo().IsAttacking || len(h.anim.plays) != 0 {
		t.Error("frozen hero acted on input")
	}
}
