package components

import (
	"time"

	"github.com/automoto/herokit/scheduler"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ComboData tracks the melee chain. Index is the next attack's position in
// the chain; CanAttack is false during the lockout after a full chain.
type ComboData struct {
	Index       int
	IsAttacking bool
	CanAttack   bool
	ResetTimer  *scheduler.Handle // pending chain reset, replaced on every attack
}

// ChargeData tracks the special attack charge.
type ChargeData struct {
	IsCharging bool
	Elapsed    time.Duration
	Progress   float64 // Elapsed / charge time, clamped to [0, 1]
	Glow       float64 // eased Progress for charge feedback
	Tween      *gween.Tween
}

var Combo = donburi.NewComponentType[ComboData]()
var Charge = donburi.NewComponentType[ChargeData]()
