package components

import (
	"github.com/automoto/herokit/config"
	"github.com/yohamta/donburi"
)

// PresentationData is the last key requested from the animation driver.
type PresentationData struct {
	Key   config.AnimationKey
	Combo int // combo index of the last attack request
}

var Presentation = donburi.NewComponentType[PresentationData]()
