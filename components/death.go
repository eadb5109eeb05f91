package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// GameOver is set once the death animation has finished.
type DeathData struct {
	GameOver bool
}

var Death = donburi.NewComponentType[DeathData]()
