// Package animation times hero clips without drawing them. The Driver plays
// presentation keys and reports attack-hit, attack-end and death-end
// milestones back through components.AnimationSignals.
package animation

import (
	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
)

type Driver struct {
	defs        map[config.AnimationKey]config.AnimationDef
	key         config.AnimationKey
	clip        *Clip
	combo       int
	facingRight bool
	hitFired    bool
	finished    bool
	signals     components.AnimationSignals
}

var _ components.SignalingDriver = (*Driver)(nil)

func NewDriver(defs map[config.AnimationKey]config.AnimationDef) *Driver {
	return &Driver{
		defs:        defs,
		facingRight: true,
	}
}

func (d *Driver) Connect(s components.AnimationSignals) {
	d.signals = s
}

// Play restarts the clip for key. Keys without a clip are current but
// finished immediately. Replacing an attack clip that has not finished
// still reports the attack as ended.
func (d *Driver) Play(key config.AnimationKey) {
	interrupted := d.key == config.AnimAttack && d.clip != nil && !d.finished

	d.key = key
	d.hitFired = false
	def, ok := d.defs[key]
	if !ok {
		d.clip = nil
		d.finished = true
	} else {
		d.clip = NewClip(def)
		d.finished = false
	}

	if interrupted {
		fire(d.signals.AttackEnded)
	}
}

func (d *Driver) PlayAttack(combo int) {
	d.combo = combo
	d.Play(config.AnimAttack)
}

func (d *Driver) SetFacing(right bool) {
	d.facingRight = right
}

// IsPlaying is true while key is current and its clip either loops or has
// not reached its last frame.
func (d *Driver) IsPlaying(key config.AnimationKey) bool {
	if d.key != key || d.clip == nil {
		return false
	}
	return !d.clip.FreezeOnComplete || !d.finished
}

func (d *Driver) Current() config.AnimationKey { return d.key }
func (d *Driver) Combo() int                   { return d.combo }
func (d *Driver) FacingRight() bool            { return d.facingRight }

func (d *Driver) Frame() int {
	if d.clip == nil {
		return 0
	}
	return d.clip.Frame()
}

// Update advances the current clip by one tick and fires any milestone it
// reached. A signal handler may start another clip.
func (d *Driver) Update() {
	if d.clip == nil || d.finished {
		return
	}
	d.clip.Update()

	def := d.defs[d.key]
	if d.key == config.AnimAttack && !d.hitFired && def.HitFrame >= 0 && d.clip.Frame() >= def.HitFrame {
		d.hitFired = true
		if fire(d.signals.AttackHit) && d.key != config.AnimAttack {
			return
		}
	}

	if !d.clip.FreezeOnComplete || !d.clip.Looped {
		return
	}
	d.finished = true
	switch d.key {
	case config.AnimAttack:
		fire(d.signals.AttackEnded)
	case config.AnimDeath:
		fire(d.signals.DeathEnded)
	}
}

func fire(fn func()) bool {
	if fn == nil {
		return false
	}
	fn()
	return true
}
