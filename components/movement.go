package components

import (
	"github.com/automoto/herokit/scheduler"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type MovementData struct {
	Horizontal  float64 // last applied input
	FacingRight bool
	IsGrounded  bool
	IsJumping   bool

	// Platform drop-through
	IgnorePlatform *resolv.Object
	PlatformTimer  *scheduler.Handle
}

var Movement = donburi.NewComponentType[MovementData]()
