package systems

import (
	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/tags"
	"github.com/yohamta/donburi"
)

// AttackPoint is the centre of the melee hit circle, mirrored by facing.
func AttackPoint(e *donburi.Entry) (float64, float64) {
	cc := tuningOf(e).Combat
	cx, cy := components.Drivers.Get(e).Body.Center()
	dir := facingSign(components.Movement.Get(e).FacingRight)
	return cx + dir*cc.AttackPointOffsetX, cy + cc.AttackPointOffsetY
}

// OnAttackHit is the animation layer's signal that the attack clip reached
// its hit frame. Every enemy collider in range goes to the hit resolver with
// the hero's current damage. Returns the number of targets hit.
func OnAttackHit(e *donburi.Entry) int {
	if !e.Valid() || isDead(e) || !components.Combo.Get(e).IsAttacking {
		return 0
	}
	d := components.Drivers.Get(e)
	damage := components.Stats.Get(e).CurrentDamage
	self := d.Body.Collider()

	x, y := AttackPoint(e)
	hits := 0
	for _, target := range d.Overlap.Overlap(x, y, tuningOf(e).Combat.AttackRange, tags.ResolvEnemy) {
		if target == self {
			continue
		}
		d.Hits.ResolveHit(e, target, damage)
		hits++
	}
	return hits
}
