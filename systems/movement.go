package systems

import (
	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/tags"
	"github.com/yohamta/donburi"
)

// UpdateMovement applies one tick of input to the hero's body: ground probe,
// landing, direct horizontal speed, facing, and jump or platform drop.
func UpdateMovement(e *donburi.Entry, in components.InputSnapshot) {
	mc := tuningOf(e).Movement
	d := components.Drivers.Get(e)
	m := components.Movement.Get(e)

	fx, fy := d.Body.Feet()
	probeY := fy + mc.GroundCheckOffsetY
	grounded := d.Ground.Grounded(fx, probeY, mc.GroundCheckRadius, tags.ResolvSolid, tags.ResolvPlatform)

	vx, vy := d.Body.Velocity()
	// A jump that is still rising through a platform has not landed.
	if grounded && m.IsJumping && vy >= 0 {
		m.IsJumping = false
		play(e, config.AnimJumpEnd)
	}
	m.IsGrounded = grounded

	m.Horizontal = in.Horizontal
	vx = in.Horizontal * mc.MoveSpeed
	d.Body.SetVelocity(vx, vy)

	if in.Horizontal != 0 {
		right := in.Horizontal > 0
		if right != m.FacingRight {
			m.FacingRight = right
			d.Animation.SetFacing(right)
		}
	}

	if !in.JumpPressed || !grounded {
		return
	}
	if in.DownHeld {
		DropThroughPlatform(e, fx, probeY)
		return
	}
	d.Body.SetVelocity(vx, -mc.JumpForce)
	m.IsJumping = true
	play(e, config.AnimJumpStart)
}

// DropThroughPlatform turns off collision between the hero and the platform
// under the probe at (x, y) for the drop window. The restore timer has no
// owner and always runs. Returns false if no platform is under the probe.
func DropThroughPlatform(e *donburi.Entry, x, y float64) bool {
	mc := tuningOf(e).Movement
	d := components.Drivers.Get(e)
	m := components.Movement.Get(e)
	clock := Clock(e.World)

	platforms := d.Overlap.Overlap(x, y, mc.GroundCheckRadius, tags.ResolvPlatform)
	if len(platforms) == 0 || clock == nil {
		return false
	}
	platform := platforms[0]
	if m.IgnorePlatform == platform && m.PlatformTimer.Active() {
		return false
	}

	collider := d.Body.Collider()
	suppressor := d.Suppressor
	suppressor.Suppress(collider, platform, true)
	m.IgnorePlatform = platform
	m.PlatformTimer = clock.After(mc.PlatformDropWindow, func() {
		suppressor.Suppress(collider, platform, false)
		if !e.Valid() {
			return
		}
		if mv := components.Movement.Get(e); mv.IgnorePlatform == platform {
			mv.IgnorePlatform = nil
			mv.PlatformTimer = nil
		}
	})
	return true
}
