// Package physics is the resolv-backed collision world the hero moves in.
// It answers ground and overlap probes, lets pairs of colliders ignore each
// other for a while, and integrates bodies against solids and one-way
// platforms.
package physics

import (
	"math"

	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/tags"
	"github.com/solarlune/resolv"
)

type pair struct {
	a, b *resolv.Object
}

type World struct {
	Space *resolv.Space

	cfg        config.PhysicsConfig
	bodies     []*Body
	suppressed map[pair]bool
	ignored    map[*resolv.Object]int // suppression count per collider
}

func NewWorld(width, height int, cfg config.PhysicsConfig) *World {
	return &World{
		Space:      resolv.NewSpace(width, height, cfg.CellSize, cfg.CellSize),
		cfg:        cfg,
		suppressed: make(map[pair]bool),
		ignored:    make(map[*resolv.Object]int),
	}
}

// SetConfig swaps the physics values, e.g. after a tuning reload.
// The cell size of an existing space does not change.
func (w *World) SetConfig(cfg config.PhysicsConfig) {
	w.cfg = cfg
}

func (w *World) AddSolid(x, y, width, height float64) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	w.Space.Add(obj)
	return obj
}

// AddPlatform adds a one-way platform: bodies land on it from above and pass
// through it from below.
func (w *World) AddPlatform(x, y, width, height float64) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, tags.ResolvPlatform)
	w.Space.Add(obj)
	return obj
}

// Add puts an existing collider into the space.
func (w *World) Add(obj *resolv.Object) {
	w.Space.Add(obj)
}

// Remove takes obj out of the space and forgets its suppressions.
func (w *World) Remove(obj *resolv.Object) {
	if obj == nil {
		return
	}
	for p := range w.suppressed {
		if p.a == obj || p.b == obj {
			w.Suppress(p.a, p.b, false)
		}
	}
	for i, b := range w.bodies {
		if b.Object == obj {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	if obj.Space != nil {
		w.Space.Remove(obj)
	}
}

// Suppress toggles whether a and b collide with each other.
func (w *World) Suppress(a, b *resolv.Object, suppressed bool) {
	if a == nil || b == nil || a == b {
		return
	}
	key := pair{a, b}
	if suppressed == w.suppressed[key] {
		return
	}
	if suppressed {
		w.suppressed[key] = true
		w.suppressed[pair{b, a}] = true
		w.ignored[a]++
		w.ignored[b]++
		return
	}
	delete(w.suppressed, key)
	delete(w.suppressed, pair{b, a})
	w.release(a)
	w.release(b)
}

func (w *World) release(obj *resolv.Object) {
	if w.ignored[obj]--; w.ignored[obj] <= 0 {
		delete(w.ignored, obj)
	}
}

// Suppressed reports whether collision between a and b is currently off.
func (w *World) Suppressed(a, b *resolv.Object) bool {
	return w.suppressed[pair{a, b}]
}

// Overlap returns the colliders carrying any of tags that intersect the
// circle at (x, y).
func (w *World) Overlap(x, y, radius float64, tags ...string) []*resolv.Object {
	var hits []*resolv.Object
	for _, obj := range w.Space.Objects() {
		if len(tags) > 0 && !obj.HasTags(tags...) {
			continue
		}
		if circleIntersectsRect(x, y, radius, obj) {
			hits = append(hits, obj)
		}
	}
	return hits
}

// Grounded reports whether the circle at (x, y) touches any collider with
// tags. A platform that is being dropped through does not count.
func (w *World) Grounded(x, y, radius float64, tags ...string) bool {
	for _, obj := range w.Overlap(x, y, radius, tags...) {
		if w.ignored[obj] == 0 {
			return true
		}
	}
	return false
}

func circleIntersectsRect(cx, cy, r float64, o *resolv.Object) bool {
	nx := math.Max(o.X, math.Min(cx, o.X+o.W))
	ny := math.Max(o.Y, math.Min(cy, o.Y+o.H))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}

// intersects reports whether obj moved by (dx, dy) overlaps o.
func intersects(obj *resolv.Object, dx, dy float64, o *resolv.Object) bool {
	x, y := obj.X+dx, obj.Y+dy
	return x < o.X+o.W && x+obj.W > o.X && y < o.Y+o.H && y+obj.H > o.Y
}
