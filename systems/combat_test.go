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

func TestComboChainLocksOut(t *testing.T) {
	h := newHero(t)

	for i := 0; i < 8; i++ {
		if !systems.Attack(h.e) {
			t.Fatalf("attack %d rejected", i+1)
		}
		systems.OnAttackEnd(h.e)
	}

	want := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if len(h.anim.combos) != len(want) {
		t.Fatalf("combo indices = %v, want %v", h.anim.combos, want)
	}
	for i := range want {
		if h.anim.combos[i] != want[i] {
			t.Fatalf("combo indices = %v, want %v", h.anim.combos, want)
		}
	}

	c := h.combo()
	if c.Index != 0 || c.CanAttack {
		t.Fatalf("after full chain: index=%d canAttack=%v", c.Index, c.CanAttack)
	}
	if systems.Attack(h.e) {
		t.Error("ninth attack should be rejected during cooldown")
	}

	h.advance(999 * time.Millisecond)
	if h.combo().CanAttack {
		t.Error("cooldown ended early")
	}
	h.advance(time.Millisecond)
	if !h.combo().CanAttack {
		t.Error("cooldown should have ended")
	}
	if !systems.Attack(h.e) {
		t.Error("attack after cooldown rejected")
	}
	if got := h.anim.combos[len(h.anim.combos)-1]; got != 0 {
		t.Errorf("chain restarted at %d, want 0", got)
	}
}

func TestComboWindowResetsChain(t *testing.T) {
	h := newHero(t)

	systems.Attack(h.e)
	systems.OnAttackEnd(h.e)
	h.advance(600 * time.Millisecond)
	if got := h.combo().Index; got != 0 {
		t.Fatalf("index after window = %d, want 0", got)
	}

	systems.Attack(h.e)
	systems.OnAttackEnd(h.e)
	h.advance(400 * time.Millisecond)
	systems.Attack(h.e)
	systems.OnAttackEnd(h.e)
	if got := h.combo().Index; got != 2 {
		t.Fatalf("index inside window = %d, want 2", got)
	}

	// The first window was replaced by the second attack.
	h.advance(400 * time.Millisecond)
	if got := h.combo().Index; got != 2 {
		t.Fatalf("index reset by a stale timer: %d", got)
	}
	h.advance(100 * time.Millisecond)
	if got := h.combo().Index; got != 0 {
		t.Errorf("index after second window = %d, want 0", got)
	}
}

func TestAttackWhileAttackingIgnored(t *testing.T) {
	h := newHero(t)

	if !systems.Attack(h.e) {
		t.Fatal("first attack rejected")
	}
	if systems.Attack(h.e) {
		t.Error("attack during attack accepted")
	}
	if got := h.combo().Index; got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if len(h.anim.combos) != 1 {
		t.Errorf("attack clips played = %d, want 1", len(h.anim.combos))
	}
}

func TestSpecialAttackGuards(t *testing.T) {
	h := newHero(t)

	if systems.ReleaseSpecialAttack(h.e) {
		t.Error("release without charge accepted")
	}

	systems.Attack(h.e)
	if systems.StartSpecialAttack(h.e) {
		t.Error("charge during attack accepted")
	}
	systems.OnAttackEnd(h.e)

	if !systems.StartSpecialAttack(h.e) {
		t.Fatal("charge rejected")
	}
	if systems.StartSpecialAttack(h.e) {
		t.Error("second charge accepted")
	}
	if systems.Attack(h.e) {
		t.Error("attack during charge accepted")
	}
	if h.anim.current != config.AnimSpecialCharge {
		t.Errorf("current clip = %v, want SpecialCharge", h.anim.current)
	}
}

func TestChargeProgress(t *testing.T) {
	h := newHero(t)
	systems.StartSpecialAttack(h.e)

	systems.UpdateCharge(h.e, time.Second)
	charge := components.Charge.Get(h.e)
	if charge.Progress != 0.5 {
		t.Errorf("Progress = %v, want 0.5", charge.Progress)
	}

	systems.UpdateCharge(h.e, 5*time.Second)
	charge = components.Charge.Get(h.e)
	if charge.Progress != 1 {
		t.Errorf("Progress = %v, want 1", charge.Progress)
	}
	if !charge.IsCharging {
		t.Error("charge should not stop on its own")
	}
	if charge.Elapsed != 6*time.Second {
		t.Errorf("Elapsed = %v, want 6s", charge.Elapsed)
	}
	if charge.Glow < 0 || charge.Glow > 1 {
		t.Errorf("Glow = %v, want within [0, 1]", charge.Glow)
	}
}

func TestReleaseSpawnsProjectileAfterDelay(t *testing.T) {
	h := newHero(t)
	systems.StartSpecialAttack(h.e)
	systems.UpdateCharge(h.e, time.Second)

	if !systems.ReleaseSpecialAttack(h.e) {
		t.Fatal("release rejected")
	}
	if h.anim.current != config.AnimSpecialAttack {
		t.Errorf("current clip = %v, want SpecialAttack", h.anim.current)
	}

	// Damage is fixed at release, facing and position at spawn.
	systems.GainExp(h.e, 100)
	components.Movement.Get(h.e).FacingRight = false
	h.body.x = 300

	h.advance(299 * time.Millisecond)
	if len(h.projectiles.requests) != 0 {
		t.Fatal("projectile spawned before the delay")
	}
	h.advance(time.Millisecond)
	if len(h.projectiles.requests) != 1 {
		t.Fatalf("projectile requests = %d, want 1", len(h.projectiles.requests))
	}

	req := h.projectiles.requests[0]
	if req.Damage != 40 {
		t.Errorf("Damage = %v, want 40", req.Damage)
	}
	if req.FacingRight || req.VelocityX != -10 {
		t.Errorf("facing=%v vx=%v, want left at -10", req.FacingRight, req.VelocityX)
	}
	if req.X != 286 || req.Y != 176 {
		t.Errorf("spawn at (%v, %v), want (286, 176)", req.X, req.Y)
	}
	if req.Owner != h.e {
		t.Error("projectile owner is not the hero")
	}

	h.advance(5 * time.Second)
	if len(h.projectiles.requests) != 1 {
		t.Errorf("projectile requests = %d after wait, want 1", len(h.projectiles.requests))
	}
	if components.Charge.Get(h.e).IsCharging {
		t.Error("still charging after release")
	}
}

func TestAttackHitResolvesTargetsInRange(t *testing.T) {
	h := newHero(t)
	enemyA := resolv.NewObject(110, 170, 16, 32)
	enemyB := resolv.NewObject(118, 170, 16, 32)
	h.overlap.byTag[tags.ResolvEnemy] = []*resolv.Object{enemyA, h.body.collider, enemyB}

	systems.Attack(h.e)
	if got := systems.OnAttackHit(h.e); got != 2 {
		t.Fatalf("OnAttackHit() = %d, want 2", got)
	}

	if len(h.hits.hits) != 2 {
		t.Fatalf("resolved hits = %d, want 2", len(h.hits.hits))
	}
	for _, hit := range h.hits.hits {
		if hit.attacker != h.e || hit.damage != 20 {
			t.Errorf("hit = %+v, want hero with 20 damage", hit)
		}
		if hit.target == h.body.collider {
			t.Error("hero hit itself")
		}
	}

	p := h.overlap.probes[len(h.overlap.probes)-1]
	if p.x != 120 || p.y != 180 || p.radius != 24 {
		t.Errorf("probe at (%v, %v) r=%v, want (120, 180) r=24", p.x, p.y, p.radius)
	}
}

func TestAttackPointMirrorsFacing(t *testing.T) {
	h := newHero(t)
	components.Movement.Get(h.e).FacingRight = false

	x, y := systems.AttackPoint(h.e)
	if x != 80 || y != 180 {
		t.Errorf("AttackPoint() = (%v, %v), want (80, 180)", x, y)
	}
}

func TestAttackHitIgnoredOutsideAttack(t *testing.T) {
	h := newHero(t)
	h.overlap.byTag[tags.ResolvEnemy] = []*resolv.Object{resolv.NewObject(110, 170, 16, 32)}

	if got := systems.OnAttackHit(h.e); got != 0 {
		t.Errorf("OnAttackHit() = %d without an attack", got)
	}

	systems.Attack(h.e)
	systems.OnAttackEnd(h.e)
	if got := systems.OnAttackHit(h.e); got != 0 {
		t.Errorf("OnAttackHit() = %d after the attack ended", got)
	}
	if len(h.hits.hits) != 0 {
		t.Errorf("resolved hits = %d, want 0", len(h.hits.hits))
	}
}

func TestDeathCancelsPendingActions(t *testing.T) {
	h := newHero(t)
	systems.StartSpecialAttack(h.e)
	systems.ReleaseSpecialAttack(h.e)
	systems.Attack(h.e)

	if !systems.Die(h.e) {
		t.Fatal("Die reported false")
	}
	h.advance(5 * time.Second)

	if len(h.projectiles.requests) != 0 {
		t.Errorf("projectile spawned after death")
	}
	c := h.combo()
	if c.IsAttacking || c.Index != 0 {
		t.Errorf("combo not cleared: %+v", c)
	}
	if vx, vy := h.body.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("velocity = (%v, %v), want zero", vx, vy)
	}
	if systems.Attack(h.e) || systems.StartSpecialAttack(h.e) {
		t.Error("dead hero started an action")
	}
	if systems.Die(h.e) {
		t.Error("second Die reported true")
	}
	if h.anim.count(config.AnimDeath) != 1 {
		t.Errorf("death clip played %d times, want 1", h.anim.count(config.AnimDeath))
	}
}
