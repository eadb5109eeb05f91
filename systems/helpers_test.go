package systems_test

import (
	"testing"
	"time"

	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/systems"
	"github.com/automoto/herokit/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type fakeAnim struct {
	plays   []config.AnimationKey
	combos  []int
	facing  []bool
	current config.AnimationKey
	done    bool // current one-shot clip finished
}

func (a *fakeAnim) Play(key config.AnimationKey) {
	a.plays = append(a.plays, key)
	a.current = key
	a.done = false
}

func (a *fakeAnim) PlayAttack(combo int) {
	a.combos = append(a.combos, combo)
	a.Play(config.AnimAttack)
}

func (a *fakeAnim) SetFacing(right bool) { a.facing = append(a.facing, right) }

func (a *fakeAnim) IsPlaying(key config.AnimationKey) bool {
	return a.current == key && !a.done
}

func (a *fakeAnim) count(key config.AnimationKey) int {
	n := 0
	for _, k := range a.plays {
		if k == key {
			n++
		}
	}
	return n
}

func (a *fakeAnim) reset() {
	a.plays = nil
	a.combos = nil
	a.facing = nil
}

type fakeBody struct {
	vx, vy   float64
	x, y     float64 // feet
	collider *resolv.Object
}

func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocity(vx, vy float64)    { b.vx, b.vy = vx, vy }
func (b *fakeBody) Feet() (float64, float64)      { return b.x, b.y }
func (b *fakeBody) Center() (float64, float64)    { return b.x, b.y - 20 }
func (b *fakeBody) Collider() *resolv.Object      { return b.collider }

type fakeGround struct {
	grounded bool
}

func (g *fakeGround) Grounded(x, y, radius float64, tags ...string) bool { return g.grounded }

type probe struct {
	x, y, radius float64
	tags         []string
}

type fakeOverlap struct {
	byTag  map[string][]*resolv.Object
	probes []probe
}

func (o *fakeOverlap) Overlap(x, y, radius float64, tags ...string) []*resolv.Object {
	o.probes = append(o.probes, probe{x, y, radius, tags})
	if len(tags) == 0 {
		return nil
	}
	return o.byTag[tags[0]]
}

type suppressCall struct {
	a, b       *resolv.Object
	suppressed bool
}

type fakeSuppressor struct {
	calls []suppressCall
}

func (s *fakeSuppressor) Suppress(a, b *resolv.Object, suppressed bool) {
	s.calls = append(s.calls, suppressCall{a, b, suppressed})
}

type fakeProjectiles struct {
	requests []components.ProjectileSpawnRequest
}

func (p *fakeProjectiles) Spawn(req components.ProjectileSpawnRequest) *donburi.Entry {
	p.requests = append(p.requests, req)
	return nil
}

type hitCall struct {
	attacker *donburi.Entry
	target   *resolv.Object
	damage   float64
}

type fakeHits struct {
	hits []hitCall
}

func (h *fakeHits) ResolveHit(attacker *donburi.Entry, target *resolv.Object, damage float64) {
	h.hits = append(h.hits, hitCall{attacker, target, damage})
}

type hero struct {
	t           *testing.T
	w           donburi.World
	e           *donburi.Entry
	tuning      *config.Tuning
	anim        *fakeAnim
	body        *fakeBody
	ground      *fakeGround
	overlap     *fakeOverlap
	suppressor  *fakeSuppressor
	projectiles *fakeProjectiles
	hits        *fakeHits
}

func newHero(t *testing.T) *hero {
	t.Helper()
	tuning := config.Defaults()
	h := &hero{
		t:           t,
		w:           donburi.NewWorld(),
		tuning:      &tuning,
		anim:        &fakeAnim{},
		body:        &fakeBody{x: 100, y: 200, collider: resolv.NewObject(92, 160, 16, 40)},
		ground:      &fakeGround{grounded: true},
		overlap:     &fakeOverlap{byTag: map[string][]*resolv.Object{}},
		suppressor:  &fakeSuppressor{},
		projectiles: &fakeProjectiles{},
		hits:        &fakeHits{},
	}
	factory.CreateClock(h.w)

	e, err := factory.CreatePlayer(h.w, factory.PlayerOptions{
		Tuning: h.tuning,
		Drivers: components.DriversData{
			Animation:   h.anim,
			Body:        h.body,
			Ground:      h.ground,
			Overlap:     h.overlap,
			Suppressor:  h.suppressor,
			Projectiles: h.projectiles,
			Hits:        h.hits,
		},
	})
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	h.e = e
	h.anim.reset()
	return h
}

// tick feeds one input snapshot through the orchestrator.
func (h *hero) tick(in components.InputSnapshot, dt time.Duration) {
	components.Input.Get(h.e).Current = in
	systems.UpdateCharacters(h.w, dt)
}

func (h *hero) advance(dt time.Duration) {
	systems.Clock(h.w).Advance(dt)
}

func (h *hero) stats() components.StatsData {
	return *components.Stats.Get(h.e)
}

func (h *hero) combo() components.ComboData {
	return *components.Combo.Get(h.e)
}

func (h *hero) movement() components.MovementData {
	return *components.Movement.Get(h.e)
}
