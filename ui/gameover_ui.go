package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/herokit/fonts"
	"github.com/automoto/herokit/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameOverUI is the ebitenui menu shown after the hero's death clip ends.
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRetry func()
	OnQuit  func()

	titleFace  text.Face
	normalFace text.Face
}

// NewGameOverUI builds the menu around the run's final stats.
func NewGameOverUI(final systems.SavedStats, kills int, onRetry, onQuit func()) *GameOverUI {
	gui := &GameOverUI{
		OnRetry:    onRetry,
		OnQuit:     onQuit,
		titleFace:  fonts.Title.Get(),
		normalFace: fonts.HUD.Get(),
	}
	gui.buildUI(final, kills)
	return gui
}

func (gui *GameOverUI) buildUI(final systems.SavedStats, kills int) {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 10, 10, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(gui.label("YOU DIED", &gui.titleFace, color.RGBA{220, 40, 40, 255}))
	summary := fmt.Sprintf("Level %d   Exp %.0f/%.0f   Kills %d", final.Level, final.CurrentExp, final.ExpToNextLevel, kills)
	content.AddChild(gui.label(summary, &gui.normalFace, color.RGBA{220, 220, 220, 255}))

	content.AddChild(gui.button("Retry", func() {
		if gui.OnRetry != nil {
			gui.OnRetry()
		}
	}))
	content.AddChild(gui.button("Quit", func() {
		if gui.OnQuit != nil {
			gui.OnQuit()
		}
	}))

	root.AddChild(content)
	gui.UI = &ebitenui.UI{Container: root}
}

func (gui *GameOverUI) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

func (gui *GameOverUI) button(s string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 22),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(s, &gui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (gui *GameOverUI) Update() {
	gui.UI.Update()
}

func (gui *GameOverUI) Draw(screen *ebiten.Image) {
	gui.UI.Draw(screen)
}
