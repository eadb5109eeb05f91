package systems

import (
	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/scheduler"
	"github.com/yohamta/donburi"
)

// Clock returns the world's scheduler, or nil if no clock entity exists.
func Clock(w donburi.World) *scheduler.Scheduler {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry).Scheduler
}

func tuningOf(e *donburi.Entry) *config.Tuning {
	return components.Tuning.Get(e).Tuning
}

// alive reports whether a deferred callback may still touch e.
func alive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && !isDead(e)
}

func isDead(e *donburi.Entry) bool {
	if e.HasComponent(components.Death) {
		return true
	}
	return e.HasComponent(components.Stats) && components.Stats.Get(e).Dead
}

// play requests key from the hero's animation driver and records it.
func play(e *donburi.Entry, key config.AnimationKey) {
	components.Drivers.Get(e).Animation.Play(key)
	components.Presentation.Get(e).Key = key
}

// request plays key unless it is already playing.
func request(e *donburi.Entry, key config.AnimationKey) {
	if components.Drivers.Get(e).Animation.IsPlaying(key) {
		return
	}
	play(e, key)
}

func facingSign(right bool) float64 {
	if right {
		return config.DirectionRight
	}
	return config.DirectionLeft
}
