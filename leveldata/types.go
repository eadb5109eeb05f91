// Package leveldata parses the demo arena from a TMX map. It has no
// dependencies on ebitengine, donburi or resolv, only plain data.
package leveldata

// Arena holds everything the demo scene builds from one TMX map.
type Arena struct {
	Name        string
	Width       int
	Height      int
	Solids      []Rect
	Platforms   []Rect
	Enemies     []EnemySpawn
	PlayerSpawn Point
}

type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// EnemySpawn is an enemy collider. A zero ExpReward means the tuning default.
type EnemySpawn struct {
	Rect
	ExpReward float64
}
