package systems

import (
	"time"

	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func canStartAction(e *donburi.Entry) bool {
	combo := components.Combo.Get(e)
	charge := components.Charge.Get(e)
	return !isDead(e) && combo.CanAttack && !combo.IsAttacking && !charge.IsCharging
}

// Attack plays the next hit of the combo. The chain resets if no attack
// follows within the combo window; after the last hit attacks are locked
// out for the cooldown. Returns false if the hero cannot attack now.
func Attack(e *donburi.Entry) bool {
	if !canStartAction(e) {
		return false
	}
	cc := tuningOf(e).Combat
	clock := Clock(e.World)
	combo := components.Combo.Get(e)
	owner := e.Entity()

	combo.IsAttacking = true
	combo.ResetTimer.Cancel()
	combo.ResetTimer = nil

	components.Drivers.Get(e).Animation.PlayAttack(combo.Index)
	pres := components.Presentation.Get(e)
	pres.Key = config.AnimAttack
	pres.Combo = combo.Index

	combo.Index++
	if combo.Index >= cc.ComboLength {
		combo.Index = 0
		combo.CanAttack = false
		clock.AfterFor(owner, cc.ComboCooldown, func() {
			if alive(e) {
				components.Combo.Get(e).CanAttack = true
			}
		})
		return true
	}

	combo.ResetTimer = clock.AfterFor(owner, cc.ComboWindow, func() {
		if !alive(e) {
			return
		}
		c := components.Combo.Get(e)
		c.Index = 0
		c.ResetTimer = nil
	})
	return true
}

// OnAttackEnd is the animation layer's signal that the attack clip finished.
func OnAttackEnd(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	components.Combo.Get(e).IsAttacking = false
}

// StartSpecialAttack begins charging. Charging has no cap; it lasts until
// released.
func StartSpecialAttack(e *donburi.Entry) bool {
	if !canStartAction(e) {
		return false
	}
	chargeTime := tuningOf(e).Combat.SpecialChargeTime

	charge := components.Charge.Get(e)
	charge.IsCharging = true
	charge.Elapsed = 0
	charge.Progress = 0
	charge.Glow = 0
	charge.Tween = gween.New(0, 1, float32(chargeTime.Seconds()), ease.InOutQuad)

	play(e, config.AnimSpecialCharge)
	return true
}

// UpdateCharge accumulates charge time while charging.
func UpdateCharge(e *donburi.Entry, dt time.Duration) {
	charge := components.Charge.Get(e)
	if !charge.IsCharging {
		return
	}
	chargeTime := tuningOf(e).Combat.SpecialChargeTime

	charge.Elapsed += dt
	charge.Progress = clamp01(float64(charge.Elapsed) / float64(chargeTime))
	if charge.Tween != nil {
		glow, _ := charge.Tween.Update(float32(dt.Seconds()))
		charge.Glow = float64(glow)
	}
}

// ReleaseSpecialAttack fires the charged attack. The projectile is requested
// after the spawn delay, with damage fixed now and position and facing read
// when it spawns.
func ReleaseSpecialAttack(e *donburi.Entry) bool {
	charge := components.Charge.Get(e)
	if isDead(e) || !charge.IsCharging {
		return false
	}
	cc := tuningOf(e).Combat

	charge.IsCharging = false
	charge.Tween = nil
	charge.Glow = 0
	play(e, config.AnimSpecialAttack)

	damage := components.Stats.Get(e).CurrentDamage * cc.SpecialDamageMultiplier
	Clock(e.World).AfterFor(e.Entity(), cc.ProjectileSpawnDelay, func() {
		if alive(e) {
			spawnProjectile(e, damage)
		}
	})
	return true
}

func spawnProjectile(e *donburi.Entry, damage float64) {
	cc := tuningOf(e).Combat
	d := components.Drivers.Get(e)
	right := components.Movement.Get(e).FacingRight
	dir := facingSign(right)

	cx, cy := d.Body.Center()
	d.Projectiles.Spawn(components.ProjectileSpawnRequest{
		X:           cx + dir*cc.SpawnOffsetX,
		Y:           cy + cc.SpawnOffsetY,
		FacingRight: right,
		VelocityX:   dir * cc.ProjectileSpeed,
		Damage:      damage,
		Owner:       e,
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
