package config

// AnimationKey names what the presentation layer should currently show.
type AnimationKey int

const (
	AnimNone AnimationKey = iota
	AnimIdle
	AnimRun
	AnimJumpStart
	AnimJumpLoop
	AnimJumpEnd
	AnimAttack
	AnimDeath
	AnimSpecialCharge
	AnimSpecialAttack
)

var animationNames = map[AnimationKey]string{
	AnimNone:          "None",
	AnimIdle:          "Idle",
	AnimRun:           "Run",
	AnimJumpStart:     "JumpStart",
	AnimJumpLoop:      "JumpLoop",
	AnimJumpEnd:       "JumpEnd",
	AnimAttack:        "Attack",
	AnimDeath:         "Death",
	AnimSpecialCharge: "SpecialCharge",
	AnimSpecialAttack: "SpecialAttack",
}

func (k AnimationKey) String() string {
	if name, ok := animationNames[k]; ok {
		return name
	}
	return "Unknown"
}
