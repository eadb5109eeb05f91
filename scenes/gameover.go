package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/herokit/systems"
	"github.com/automoto/herokit/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene shows the final stats with retry and quit buttons.
type GameOverScene struct {
	sceneChanger SceneChanger
	opts         ArenaOptions
	final        systems.SavedStats
	kills        int
	menu         *ui.GameOverUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, opts ArenaOptions, final systems.SavedStats, kills int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts, final: final, kills: kills}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.menu.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.menu == nil {
		return
	}
	gs.menu.Draw(screen)
}

func (gs *GameOverScene) configure() {
	log.Printf("[scene] Game over at level %d with %d kills", gs.final.Level, gs.kills)
	gs.menu = ui.NewGameOverUI(gs.final, gs.kills, gs.retry, gs.quit)
}

// retry starts a fresh arena run from the progress saved at death.
func (gs *GameOverScene) retry() {
	opts := gs.opts
	saved := gs.final
	opts.Saved = &saved
	gs.sceneChanger.ChangeScene(NewArenaScene(gs.sceneChanger, opts))
}

func (gs *GameOverScene) quit() {
	if gs.opts.Quit != nil {
		gs.opts.Quit()
	}
}
