package factory

import (
	"errors"

	"github.com/automoto/herokit/archetypes"
	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/scheduler"
	"github.com/yohamta/donburi"
)

// ErrNoClock is returned when a hero is created in a world without a clock.
var ErrNoClock = errors.New("no clock in world")

// CreateClock adds the world's scheduler, or returns the existing one.
func CreateClock(w donburi.World) *donburi.Entry {
	if entry, ok := components.Clock.First(w); ok {
		return entry
	}
	clock := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(clock, components.ClockData{Scheduler: scheduler.New()})
	return clock
}
