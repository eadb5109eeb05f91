package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/fonts"
	"github.com/automoto/herokit/systems"
	"github.com/automoto/herokit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudMargin    = 10
	hudGap       = 4
)

var (
	colorSolid      = color.RGBA{100, 100, 100, 255}
	colorPlatform   = color.RGBA{150, 110, 60, 255}
	colorHero       = color.RGBA{60, 120, 255, 255}
	colorEnemy      = color.RGBA{220, 50, 50, 255}
	colorProjectile = color.RGBA{255, 220, 60, 255}
	colorDebug      = color.RGBA{0, 255, 255, 255}
)

// drawArena renders every collider as a filled box, colored by tag.
func (as *ArenaScene) drawArena(e *ecs.ECS, screen *ebiten.Image) {
	heroObj := as.heroCollider()

	for _, obj := range as.physics.Space.Objects() {
		c := colorForObject(obj)
		if obj.HasTags(tags.ResolvPlatform) && heroObj != nil && as.physics.Suppressed(heroObj, obj) {
			c.A = 80
		}
		if obj == heroObj {
			c = as.heroColor()
		}
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)

		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() && entry.HasComponent(tags.Enemy) {
			drawEnemyHealth(screen, obj, components.Stats.Get(entry))
		}
	}

	if heroObj != nil && as.hero.Valid() {
		// Facing marker
		x := heroObj.X + heroObj.W - 3
		if !components.Movement.Get(as.hero).FacingRight {
			x = heroObj.X
		}
		vector.FillRect(screen, float32(x), float32(heroObj.Y+8), 3, 6, color.White, false)
	}
}

func colorForObject(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return colorSolid
	case obj.HasTags(tags.ResolvPlatform):
		return colorPlatform
	case obj.HasTags(tags.ResolvPlayer):
		return colorHero
	case obj.HasTags(tags.ResolvEnemy):
		return colorEnemy
	case obj.HasTags(tags.ResolvProjectile):
		return colorProjectile
	}
	return colorDebug
}

// heroColor brightens toward white as the special attack charges.
func (as *ArenaScene) heroColor() color.RGBA {
	c := colorHero
	if !as.hero.Valid() {
		return c
	}
	if components.Stats.Get(as.hero).Dead {
		return color.RGBA{60, 60, 90, 255}
	}
	glow := components.Charge.Get(as.hero).Glow
	c.R += uint8(float64(255-c.R) * glow)
	c.G += uint8(float64(255-c.G) * glow)
	c.B += uint8(float64(255-c.B) * glow)
	return c
}

func drawEnemyHealth(screen *ebiten.Image, obj *resolv.Object, s *components.StatsData) {
	if s.MaxHealth <= 0 {
		return
	}
	ratio := float32(s.CurrentHealth / s.MaxHealth)
	vector.FillRect(screen, float32(obj.X), float32(obj.Y-5), float32(obj.W), 2, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, float32(obj.X), float32(obj.Y-5), float32(obj.W)*ratio, 2, color.RGBA{40, 220, 40, 255}, false)
}

// drawDebug outlines colliders and shows the hero's probes and clip state.
func (as *ArenaScene) drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !as.debug {
		return
	}

	for _, obj := range as.physics.Space.Objects() {
		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.StrokeRect(screen, x, y, w, h, 1, colorDebug, false)
	}

	if !as.hero.Valid() {
		return
	}
	t := as.opts.Tuning
	body := components.Drivers.Get(as.hero).Body

	fx, fy := body.Feet()
	vector.StrokeCircle(screen, float32(fx), float32(fy+t.Movement.GroundCheckOffsetY),
		float32(t.Movement.GroundCheckRadius), 1, color.RGBA{0, 255, 0, 255}, false)

	if components.Combo.Get(as.hero).IsAttacking {
		ax, ay := systems.AttackPoint(as.hero)
		vector.StrokeCircle(screen, float32(ax), float32(ay), float32(t.Combat.AttackRange), 1, colorEnemy, false)
	}

	anim := as.anims[0]
	m := components.Movement.Get(as.hero)
	vx, vy := body.Velocity()
	lines := []string{
		fmt.Sprintf("clip %s frame %d combo %d", anim.Current(), anim.Frame(), components.Combo.Get(as.hero).Index),
		fmt.Sprintf("v %.2f,%.2f grounded %v jumping %v", vx, vy, m.IsGrounded, m.IsJumping),
		fmt.Sprintf("timers %d", systems.Clock(e.World).Pending()),
	}
	for i, line := range lines {
		drawText(screen, line, fonts.Small.Get(), 10, float64(screen.Bounds().Dy()-14*(len(lines)-i)), color.White)
	}
}

// drawHUD renders health and exp bars with the level in the top-left corner.
func (as *ArenaScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !as.hero.Valid() {
		return
	}
	s := components.Stats.Get(as.hero)

	drawBar(screen, hudMargin, hudMargin, s.CurrentHealth/s.MaxHealth, color.RGBA{40, 220, 40, 255})
	expY := hudMargin + hudBarHeight + hudGap
	expRatio := 0.0
	if s.ExpToNextLevel > 0 {
		expRatio = s.CurrentExp / s.ExpToNextLevel
	}
	drawBar(screen, hudMargin, expY, expRatio, color.RGBA{80, 160, 255, 255})

	label := fmt.Sprintf("Lv %d  HP %.0f/%.0f  DMG %.0f  ARM %.0f", s.Level, s.CurrentHealth, s.MaxHealth, s.CurrentDamage, s.CurrentArmor)
	drawText(screen, label, fonts.HUD.Get(), hudMargin+hudBarWidth+8, hudMargin, color.White)

	if charge := components.Charge.Get(as.hero); charge.IsCharging {
		drawBar(screen, hudMargin, expY+hudBarHeight+hudGap, charge.Progress, colorProjectile)
	}
	if as.noticeTicks > 0 {
		drawText(screen, as.notice, fonts.Small.Get(), hudMargin+hudBarWidth+8, float64(expY), color.RGBA{255, 255, 160, 255})
	}
}

func drawBar(screen *ebiten.Image, x, y int, ratio float64, fill color.Color) {
	ratio = max(0, min(1, ratio))
	vector.FillRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, float32(x), float32(y), float32(hudBarWidth*ratio), hudBarHeight, fill, false)
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (as *ArenaScene) heroCollider() *resolv.Object {
	if as.hero == nil || !as.hero.Valid() {
		return nil
	}
	return components.Object.Get(as.hero).Object
}
