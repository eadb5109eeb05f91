package components

import (
	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/scheduler"
	"github.com/yohamta/donburi"
)

type ClockData struct {
	*scheduler.Scheduler
}

// Clock is the world's single timer queue.
var Clock = donburi.NewComponentType[ClockData]()

// TuningData points at tuning that may be shared and hot-swapped.
type TuningData struct {
	*config.Tuning
}

var Tuning = donburi.NewComponentType[TuningData]()
