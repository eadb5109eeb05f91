package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner     *donburi.Entry
	Damage    float64
	SpeedX    float64
	SpeedY    float64
	Remaining time.Duration
}

var Projectile = donburi.NewComponentType[ProjectileData]()
