package components

import "github.com/yohamta/donburi"

// InputSnapshot is one tick of player intent. Edge fields are true only on
// the tick the button changed.
type InputSnapshot struct {
	Horizontal      float64 // -1..1
	JumpPressed     bool
	AttackPressed   bool
	SpecialPressed  bool
	SpecialHeld     bool
	SpecialReleased bool
	InteractPressed bool
	DownHeld        bool
}

// InputData holds the snapshot the scene polled for this tick.
// Frozen heroes ignore it.
type InputData struct {
	Current InputSnapshot
	Frozen  bool
}

var Input = donburi.NewComponentType[InputData]()
