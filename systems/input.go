package systems

import (
	"github.com/automoto/herokit/components"
	cfg "github.com/automoto/herokit/config"
)

// ActionState is one action's state derived from two consecutive polls.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// ButtonState holds the raw action polls of this tick and the last one.
// Axis is an analog horizontal value already past the deadzone, or 0.
type ButtonState struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Axis     float64
}

// Next swaps buffers before a new poll.
func (b *ButtonState) Next() {
	b.Previous = b.Current
	b.Current = [cfg.ActionCount]bool{}
	b.Axis = 0
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous poll.
func GetAction(b *ButtonState, id cfg.ActionID) ActionState {
	curr := b.Current[id]
	prev := b.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Snapshot turns the polls into the hero's input for one tick. An analog
// axis wins over digital left/right.
func Snapshot(b *ButtonState) components.InputSnapshot {
	axis := b.Axis
	if axis == 0 {
		if b.Current[cfg.ActionMoveRight] {
			axis++
		}
		if b.Current[cfg.ActionMoveLeft] {
			axis--
		}
	}
	axis = max(-1, min(1, axis))

	special := GetAction(b, cfg.ActionSpecial)
	return components.InputSnapshot{
		Horizontal:      axis,
		JumpPressed:     GetAction(b, cfg.ActionJump).JustPressed,
		AttackPressed:   GetAction(b, cfg.ActionAttack).JustPressed,
		SpecialPressed:  special.JustPressed,
		SpecialHeld:     special.Pressed,
		SpecialReleased: special.JustReleased,
		InteractPressed: GetAction(b, cfg.ActionInteract).JustPressed,
		DownHeld:        b.Current[cfg.ActionCrouch],
	}
}
