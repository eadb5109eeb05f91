package systems_test

import (
	"testing"
	"time"

	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/systems"
	"github.com/automoto/herokit/tags"
	"github.com/solarlune/resolv"
)

func TestFacingFollowsInputSign(t *testing.T) {
	h := newHero(t)

	inputs := []float64{0, 1, 0, -1, -0.5, 0, 0.25}
	want := []bool{true, true, true, false, false, false, true}
	for i, x := range inputs {
		h.tick(components.InputSnapshot{Horizontal: x}, 0)
		if got := h.movement().FacingRight; got != want[i] {
			t.Errorf("tick %d (input %v): FacingRight = %v, want %v", i, x, got, want[i])
		}
	}

	if len(h.anim.facing) != 2 || h.anim.facing[0] || !h.anim.facing[1] {
		t.Errorf("facing flips = %v, want [false true]", h.anim.facing)
	}
}

func TestHorizontalSpeedIsSetDirectly(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{input: 1, want: 3},
		{input: -1, want: -3},
		{input: 0.5, want: 1.5},
		{input: 0, want: 0},
	}

	for _, tt := range tests {
		h := newHero(t)
		h.body.vx = 99
		h.tick(components.InputSnapshot{Horizontal: tt.input}, 0)
		if vx, _ := h.body.Velocity(); vx != tt.want {
			t.Errorf("input %v: vx = %v, want %v", tt.input, vx, tt.want)
		}
	}
}

func TestJumpSequence(t *testing.T) {
	h := newHero(t)

	h.tick(components.InputSnapshot{JumpPressed: true}, 0)
	if _, vy := h.body.Velocity(); vy != -15 {
		t.Fatalf("vy = %v, want -15", vy)
	}
	if !h.movement().IsJumping {
		t.Fatal("hero should be jumping")
	}
	if h.anim.count(config.AnimJumpStart) != 1 {
		t.Fatalf("JumpStart played %d times, want 1", h.anim.count(config.AnimJumpStart))
	}

	// Rising does not cut the wind-up short.
	h.ground.grounded = false
	h.tick(components.InputSnapshot{}, 0)
	if h.anim.count(config.AnimJumpLoop) != 0 {
		t.Fatal("JumpLoop interrupted JumpStart")
	}

	h.anim.done = true
	h.tick(components.InputSnapshot{}, 0)
	h.tick(components.InputSnapshot{}, 0)
	if h.anim.count(config.AnimJumpLoop) != 1 {
		t.Fatalf("JumpLoop played %d times, want 1", h.anim.count(config.AnimJumpLoop))
	}

	// Still rising through a platform is not a landing.
	h.ground.grounded = true
	h.tick(components.InputSnapshot{}, 0)
	if !h.movement().IsJumping || h.anim.count(config.AnimJumpEnd) != 0 {
		t.Fatal("landed while rising")
	}

	h.body.vy = 0
	h.tick(components.InputSnapshot{}, 0)
	if h.movement().IsJumping {
		t.Error("landing should clear the jump")
	}
	if h.anim.count(config.AnimJumpEnd) != 1 {
		t.Fatalf("JumpEnd played %d times, want 1", h.anim.count(config.AnimJumpEnd))
	}

	h.tick(components.InputSnapshot{}, 0)
	if h.anim.count(config.AnimIdle) != 0 {
		t.Fatal("Idle interrupted JumpEnd")
	}
	h.anim.done = true
	h.tick(components.InputSnapshot{}, 0)
	if h.anim.count(config.AnimIdle) != 1 {
		t.Errorf("Idle played %d times, want 1", h.anim.count(config.AnimIdle))
	}
}

func TestJumpRequiresGround(t *testing.T) {
	h := newHero(t)
	h.ground.grounded = false

	h.tick(components.InputSnapshot{JumpPressed: true}, 0)

	if _, vy := h.body.Velocity(); vy != 0 {
		t.Errorf("vy = %v, want 0", vy)
	}
	if h.movement().IsJumping {
		t.Error("airborne hero jumped")
	}
	if h.anim.count(config.AnimJumpStart) != 0 {
		t.Error("JumpStart played without a jump")
	}
}

func TestGroundProbePosition(t *testing.T) {
	h := newHero(t)
	platform := resolv.NewObject(80, 200, 64, 8, tags.ResolvPlatform)
	h.overlap.byTag[tags.ResolvPlatform] = []*resolv.Object{platform}

	h.tick(components.InputSnapshot{JumpPressed: true, DownHeld: true}, 0)

	if len(h.overlap.probes) != 1 {
		t.Fatalf("overlap probes = %d, want 1", len(h.overlap.probes))
	}
	p := h.overlap.probes[0]
	if p.x != 100 || p.y != 201 || p.radius != 3 {
		t.Errorf("probe at (%v, %v) r=%v, want (100, 201) r=3", p.x, p.y, p.radius)
	}
}

func TestPlatformDropRestoresCollision(t *testing.T) {
	h := newHero(t)
	platform := resolv.NewObject(80, 200, 64, 8, tags.ResolvPlatform)
	h.overlap.byTag[tags.ResolvPlatform] = []*resolv.Object{platform}

	h.tick(components.InputSnapshot{JumpPressed: true, DownHeld: true}, 0)

	if _, vy := h.body.Velocity(); vy != 0 || h.movement().IsJumping {
		t.Fatalf("drop also jumped: vy=%v", vy)
	}
	if len(h.suppressor.calls) != 1 {
		t.Fatalf("suppress calls = %d, want 1", len(h.suppressor.calls))
	}
	call := h.suppressor.calls[0]
	if call.a != h.body.collider || call.b != platform || !call.suppressed {
		t.Fatalf("suppress call = %+v", call)
	}
	if h.movement().IgnorePlatform != platform {
		t.Error("ignored platform not recorded")
	}

	// A second drop on the same platform inside the window changes nothing.
	h.tick(components.InputSnapshot{JumpPressed: true, DownHeld: true}, 0)
	if len(h.suppressor.calls) != 1 {
		t.Fatalf("suppress calls = %d after repeat drop, want 1", len(h.suppressor.calls))
	}

	h.tick(components.InputSnapshot{}, 250*time.Millisecond)
	systems.Die(h.e)
	h.tick(components.InputSnapshot{}, 249*time.Millisecond)
	if len(h.suppressor.calls) != 1 {
		t.Fatal("collision restored early")
	}

	h.tick(components.InputSnapshot{}, time.Millisecond)
	if len(h.suppressor.calls) != 2 {
		t.Fatalf("suppress calls = %d, want restore after death", len(h.suppressor.calls))
	}
	restore := h.suppressor.calls[1]
	if restore.a != h.body.collider || restore.b != platform || restore.suppressed {
		t.Errorf("restore call = %+v", restore)
	}
	if h.movement().IgnorePlatform != nil {
		t.Error("ignored platform not cleared")
	}
}

func TestDropWithoutPlatformDoesNothing(t *testing.T) {
	h := newHero(t)

	h.tick(components.InputSnapshot{JumpPressed: true, DownHeld: true}, 0)

	if len(h.suppressor.calls) != 0 {
		t.Errorf("suppress calls = %d, want 0", len(h.suppressor.calls))
	}
	if _, vy := h.body.Velocity(); vy != 0 {
		t.Errorf("vy = %v, want 0", vy)
	}
	if systems.Clock(h.w).Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", systems.Clock(h.w).Pending())
	}
}
