package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Notifications are queued when published and delivered, in publish order,
// when the tick flushes them with events.ProcessAllEvents.

type LevelUpEvent struct {
	Entry *donburi.Entry
	Level int
}

type HealthChangedEvent struct {
	Entry   *donburi.Entry
	Current float64
	Max     float64
}

type ExpChangedEvent struct {
	Entry   *donburi.Entry
	Current float64
	ToNext  float64
}

type DiedEvent struct {
	Entry *donburi.Entry
}

type GameOverEvent struct {
	Entry *donburi.Entry
}

type InteractedEvent struct {
	Entry *donburi.Entry
}

// HitEvent reports damage applied to a target.
type HitEvent struct {
	Attacker *donburi.Entry
	Target   *donburi.Entry
	Damage   float64
	Killed   bool
}

var (
	LevelUp       = events.NewEventType[LevelUpEvent]()
	HealthChanged = events.NewEventType[HealthChangedEvent]()
	ExpChanged    = events.NewEventType[ExpChangedEvent]()
	Died          = events.NewEventType[DiedEvent]()
	GameOver      = events.NewEventType[GameOverEvent]()
	Interacted    = events.NewEventType[InteractedEvent]()
	Hit           = events.NewEventType[HitEvent]()
)
