package config

// ActionID names one logical input the demo polls each tick.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionCrouch
	ActionJump
	ActionAttack
	ActionSpecial
	ActionInteract
	ActionDebug
	ActionCount
)

// InputConfig holds input tuning.
type InputConfig struct {
	AnalogDeadzone float64
}

var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
