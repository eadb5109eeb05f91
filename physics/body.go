package physics

import (
	"math"

	"github.com/automoto/herokit/tags"
	"github.com/solarlune/resolv"
)

// Body is a box moved by gravity and its own velocity.
// Speeds are pixels per tick.
type Body struct {
	Object   *resolv.Object
	SpeedX   float64
	SpeedY   float64
	OnGround *resolv.Object
}

// NewBody adds a collider to the space and registers it for StepAll.
func (w *World) NewBody(x, y, width, height float64, tags ...string) *Body {
	obj := resolv.NewObject(x, y, width, height, tags...)
	w.Space.Add(obj)
	b := &Body{Object: obj}
	w.bodies = append(w.bodies, b)
	return b
}

func (b *Body) Velocity() (float64, float64) { return b.SpeedX, b.SpeedY }

func (b *Body) SetVelocity(vx, vy float64) {
	b.SpeedX = vx
	b.SpeedY = vy
}

func (b *Body) Feet() (float64, float64) {
	return b.Object.X + b.Object.W/2, b.Object.Y + b.Object.H
}

func (b *Body) Center() (float64, float64) {
	return b.Object.X + b.Object.W/2, b.Object.Y + b.Object.H/2
}

func (b *Body) Collider() *resolv.Object { return b.Object }

// StepAll integrates every registered body once.
func (w *World) StepAll() {
	for _, b := range w.bodies {
		w.Step(b)
	}
}

// Step applies gravity, then moves b horizontally and vertically, stopping at
// solids and landing on platforms it is not suppressed against.
func (w *World) Step(b *Body) {
	b.SpeedY += w.cfg.Gravity
	if b.SpeedY > w.cfg.MaxFallSpeed {
		b.SpeedY = w.cfg.MaxFallSpeed
	}
	if w.cfg.MaxRiseSpeed > 0 && b.SpeedY < -w.cfg.MaxRiseSpeed {
		b.SpeedY = -w.cfg.MaxRiseSpeed
	}

	w.resolveHorizontal(b)
	w.resolveVertical(b)
	b.Object.Update()
}

func (w *World) resolveHorizontal(b *Body) {
	obj := b.Object
	dx := b.SpeedX
	if dx == 0 {
		return
	}

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !intersects(obj, dx, 0, solid) {
				continue
			}
			contact := check.ContactWithObject(solid).X()
			if (dx > 0 && contact < dx) || (dx < 0 && contact > dx) {
				dx = contact
				b.SpeedX = 0
			}
		}
	}

	obj.X += dx
}

func (w *World) resolveVertical(b *Body) {
	obj := b.Object
	b.OnGround = nil
	dy := b.SpeedY

	// Look one pixel further when falling so resting bodies stay grounded.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		obj.Y += dy
		return
	}

	if dy < 0 {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !intersects(obj, 0, checkDistance, solid) {
				continue
			}
			if contact := check.ContactWithObject(solid).Y(); contact > dy {
				dy = contact
				b.SpeedY = 0
			}
		}
		obj.Y += dy
		return
	}

	best := math.Inf(1)
	for _, o := range check.Objects {
		if !intersects(obj, 0, checkDistance, o) || !w.canLandOn(obj, o) {
			continue
		}
		if contact := check.ContactWithObject(o).Y(); contact < best {
			best = contact
			b.OnGround = o
		}
	}
	if b.OnGround != nil {
		dy = best
		b.SpeedY = 0
	}
	obj.Y += dy
}

func (w *World) canLandOn(obj, o *resolv.Object) bool {
	switch {
	case o.HasTags(tags.ResolvSolid):
		return true
	case o.HasTags(tags.ResolvPlatform):
		if w.Suppressed(obj, o) {
			return false
		}
		// Bodies already below the platform's top edge fall past it.
		return obj.Bottom() < o.Y+w.cfg.PlatformTolerance
	}
	return false
}
