package components

import "github.com/yohamta/donburi"

// DamageEventData is a hit waiting to be applied to its target.
type DamageEventData struct {
	Amount   float64
	Attacker *donburi.Entry
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
