package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX, SpawnY float64
	Kills          int
}

var Player = donburi.NewComponentType[PlayerData]()
