package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	ExpReward float64 // granted to whoever lands the killing blow

	// Contact damage
	ContactReady bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
