package main

import (
	"context"
	"flag"
	"image"
	"log"

	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/fonts"
	"github.com/automoto/herokit/scenes"
	"github.com/automoto/herokit/systems"
	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"
)

// launchEnv holds environment defaults; flags override them.
type launchEnv struct {
	Tuning  string `env:"HEROKIT_TUNING"`
	Arena   string `env:"HEROKIT_ARENA" envDefault:"arena.tmx"`
	AppName string `env:"HEROKIT_APP" envDefault:"herokit"`
	Fresh   bool   `env:"HEROKIT_FRESH"`
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Quit() {
	g.quit = true
}

func NewGame(opts scenes.ArenaOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	opts.Quit = g.Quit
	g.scene = scenes.NewArenaScene(g, opts)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var le launchEnv
	if err := env.Parse(&le); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}
	tuningPath := flag.String("tuning", le.Tuning, "YAML tuning overrides, reloaded on change")
	arena := flag.String("arena", le.Arena, "Arena map inside the embedded levels")
	appName := flag.String("app", le.AppName, "Application name for save data")
	fresh := flag.Bool("fresh", le.Fresh, "Ignore saved progress")
	flag.Parse()

	tuning := config.Defaults()
	var reloads chan config.Tuning
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *tuningPath != "" {
		loaded, err := config.Load(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning = loaded

		reloads = make(chan config.Tuning, 1)
		go func() {
			if err := config.Watch(ctx, *tuningPath, reloads); err != nil {
				log.Printf("[config] Watcher stopped: %v", err)
			}
		}()
	}

	if err := fonts.Load(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	// Initialize persistence and load saved progress
	var saved *systems.SavedStats
	if err := systems.InitPersistence(*appName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else if !*fresh {
		saved, _ = systems.LoadStats()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("herokit")
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(scenes.ArenaOptions{
		Tuning:  &tuning,
		Arena:   *arena,
		Saved:   saved,
		Reloads: reloads,
	})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
