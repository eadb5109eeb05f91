package animation

import "github.com/automoto/herokit/config"

// Clip steps through a frame range at a fixed tick rate.
type Clip struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool // passed the last frame at least once
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func NewClip(def config.AnimationDef) *Clip {
	step := def.Step
	if step <= 0 {
		step = 1
	}
	return &Clip{
		First:            def.First,
		Last:             def.Last,
		Step:             step,
		SpeedInTps:       def.Speed,
		frameCounter:     def.Speed,
		frame:            def.First,
		FreezeOnComplete: !def.Loop,
	}
}

func (c *Clip) Update() {
	c.frameCounter -= 1.0
	if c.frameCounter >= 0.0 {
		return
	}
	c.frameCounter = c.SpeedInTps
	c.frame += c.Step
	if c.frame > c.Last {
		c.Looped = true
		if c.FreezeOnComplete {
			c.frame = c.Last
		} else {
			c.frame = c.First
		}
	}
}

func (c *Clip) Frame() int {
	return c.frame
}

func (c *Clip) Restart() {
	c.frame = c.First
	c.frameCounter = c.SpeedInTps
	c.Looped = false
}
