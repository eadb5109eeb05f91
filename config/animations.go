package config

// AnimationDef describes one clip: frames First..Last advanced by Step every
// Speed ticks. HitFrame is the frame that lands a melee hit (-1 = none).
type AnimationDef struct {
	First    int
	Last     int
	Step     int
	Speed    float32
	Loop     bool
	HitFrame int
}

// HeroAnimations is the clip table used by the demo animation driver.
var HeroAnimations = map[AnimationKey]AnimationDef{
	AnimIdle:          {First: 0, Last: 6, Step: 1, Speed: 5, Loop: true, HitFrame: -1},
	AnimRun:           {First: 0, Last: 7, Step: 1, Speed: 5, Loop: true, HitFrame: -1},
	AnimJumpStart:     {First: 0, Last: 2, Step: 1, Speed: 4, HitFrame: -1},
	AnimJumpLoop:      {First: 0, Last: 1, Step: 1, Speed: 6, Loop: true, HitFrame: -1},
	AnimJumpEnd:       {First: 0, Last: 2, Step: 1, Speed: 3, HitFrame: -1},
	AnimAttack:        {First: 0, Last: 5, Step: 1, Speed: 3, HitFrame: 3},
	AnimDeath:         {First: 0, Last: 8, Step: 1, Speed: 6, HitFrame: -1},
	AnimSpecialCharge: {First: 0, Last: 3, Step: 1, Speed: 5, Loop: true, HitFrame: -1},
	AnimSpecialAttack: {First: 0, Last: 5, Step: 1, Speed: 4, HitFrame: -1},
}
