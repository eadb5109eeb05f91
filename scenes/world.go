package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/herokit/animation"
	"github.com/automoto/herokit/components"
	cfg "github.com/automoto/herokit/config"
	"github.com/automoto/herokit/leveldata"
	"github.com/automoto/herokit/levels"
	"github.com/automoto/herokit/physics"
	"github.com/automoto/herokit/systems"
	"github.com/automoto/herokit/systems/factory"
	"github.com/automoto/herokit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const layerDefault ecs.LayerID = 0

// ArenaOptions configures one run in an arena.
type ArenaOptions struct {
	Tuning  *cfg.Tuning
	Arena   string // path inside levels.FS
	Saved   *systems.SavedStats
	Reloads <-chan cfg.Tuning
	Quit    func()
}

// ArenaScene runs the hero controller against real physics, animation
// timing and enemies.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         ArenaOptions
	once         sync.Once

	physics *physics.World
	anims   []*animation.Driver
	hero    *donburi.Entry
	buttons systems.ButtonState
	dt      time.Duration
	debug   bool
	over    bool

	notice      string
	noticeTicks int
}

const noticeDuration = 90 // ticks

func NewArenaScene(sc SceneChanger, opts ArenaOptions) *ArenaScene {
	if opts.Arena == "" {
		opts.Arena = levels.Default
	}
	return &ArenaScene{sceneChanger: sc, opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.applyReloads()
	as.ecs.Update()
	if as.noticeTicks > 0 {
		as.noticeTicks--
	}

	if as.over {
		as.finish()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	t := as.opts.Tuning
	arena, err := leveldata.LoadArena(levels.FS, as.opts.Arena)
	if err != nil {
		panic("failed to load arena: " + err.Error())
	}
	log.Printf("[level] Loaded %s (%dx%d, %d enemies)", arena.Name, arena.Width, arena.Height, len(arena.Enemies))

	w := donburi.NewWorld()
	as.ecs = ecs.NewECS(w)
	as.physics = physics.NewWorld(arena.Width, arena.Height, t.Physics)
	as.dt = cfg.TickDuration(cfg.C.TPS)
	factory.CreateClock(w)

	for _, r := range arena.Solids {
		factory.CreateWall(w, as.physics.AddSolid(r.X, r.Y, r.W, r.H))
	}
	for _, r := range arena.Platforms {
		factory.CreatePlatform(w, as.physics.AddPlatform(r.X, r.Y, r.W, r.H))
	}

	as.hero = as.spawnHero(w, arena.PlayerSpawn)

	for _, spawn := range arena.Enemies {
		obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H)
		as.physics.Add(obj)
		factory.CreateEnemy(w, obj, t, spawn.ExpReward)
	}

	as.subscribe(w)

	// Order matters: timers and input before physics, animation after the
	// body has moved, enemy upkeep last.
	as.ecs.AddSystem(as.updateInput)
	as.ecs.AddSystem(as.updateCharacters)
	as.ecs.AddSystem(as.updatePhysics)
	as.ecs.AddSystem(as.updateAnimations)
	as.ecs.AddSystem(as.updateProjectiles)
	as.ecs.AddSystem(as.updateEnemies)

	as.ecs.AddRenderer(layerDefault, as.drawArena)
	as.ecs.AddRenderer(layerDefault, as.drawDebug)
	as.ecs.AddRenderer(layerDefault, as.drawHUD)
}

func (as *ArenaScene) spawnHero(w donburi.World, spawn leveldata.Point) *donburi.Entry {
	t := as.opts.Tuning
	mc := t.Movement

	// Spawn points mark the feet.
	body := as.physics.NewBody(spawn.X-mc.CollisionWidth/2, spawn.Y-mc.CollisionHeight,
		mc.CollisionWidth, mc.CollisionHeight, tags.ResolvPlayer)
	anim := animation.NewDriver(cfg.HeroAnimations)
	as.anims = append(as.anims, anim)

	hero, err := factory.CreatePlayer(w, factory.PlayerOptions{
		Tuning: t,
		Drivers: components.DriversData{
			Animation:   anim,
			Body:        body,
			Ground:      as.physics,
			Overlap:     as.physics,
			Suppressor:  as.physics,
			Projectiles: &systems.Projectiles{Colliders: as.physics, Tuning: t},
			Hits:        systems.EnemyHits{},
		},
	})
	if err != nil {
		panic("failed to create hero: " + err.Error())
	}
	systems.ApplySavedStats(hero, as.opts.Saved)
	return hero
}

func (as *ArenaScene) subscribe(w donburi.World) {
	hero := as.hero.Entity()

	systems.LevelUp.Subscribe(w, func(w donburi.World, ev systems.LevelUpEvent) {
		if ev.Entry.Entity() == hero {
			log.Printf("[scene] Level up: %d", ev.Level)
		}
	})
	systems.Hit.Subscribe(w, func(w donburi.World, ev systems.HitEvent) {
		if ev.Killed && ev.Attacker != nil && ev.Attacker.Entity() == hero {
			log.Printf("[scene] Enemy defeated")
		}
	})
	systems.Died.Subscribe(w, func(w donburi.World, ev systems.DiedEvent) {
		if ev.Entry.Entity() == hero {
			log.Printf("[scene] Hero died")
		}
	})
	systems.Interacted.Subscribe(w, func(w donburi.World, ev systems.InteractedEvent) {
		if ev.Entry.Entity() == hero {
			log.Printf("[scene] Interact pressed, nothing in reach")
			as.showNotice("Nothing to interact with")
		}
	})
	systems.ExpChanged.Subscribe(w, func(w donburi.World, ev systems.ExpChangedEvent) {
		if ev.Entry.Entity() == hero {
			as.showNotice(fmt.Sprintf("EXP %.0f/%.0f", ev.Current, ev.ToNext))
		}
	})
	systems.HealthChanged.Subscribe(w, func(w donburi.World, ev systems.HealthChangedEvent) {
		if ev.Entry.Entity() == hero && ev.Current < ev.Max*0.25 && ev.Current > 0 {
			as.showNotice("Low health")
		}
	})
	systems.GameOver.Subscribe(w, func(w donburi.World, ev systems.GameOverEvent) {
		if ev.Entry.Entity() == hero {
			as.over = true
		}
	})
}

func (as *ArenaScene) showNotice(s string) {
	as.notice = s
	as.noticeTicks = noticeDuration
}

// applyReloads takes every tuning the watcher has sent since the last tick.
// Heroes and projectiles share the pointer, so they see the new values at once.
func (as *ArenaScene) applyReloads() {
	for {
		select {
		case t, ok := <-as.opts.Reloads:
			if !ok {
				as.opts.Reloads = nil
				return
			}
			*as.opts.Tuning = t
			as.physics.SetConfig(t.Physics)
			log.Printf("[scene] Applied tuning reload")
		default:
			return
		}
	}
}

func (as *ArenaScene) finish() {
	if err := systems.SaveStats(as.hero); err != nil {
		log.Printf("[scene] Progress not saved, continuing to game over")
	}
	final := systems.SnapshotStats(components.Stats.Get(as.hero))
	kills := components.Player.Get(as.hero).Kills
	as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, as.opts, final, kills))
}

func (as *ArenaScene) updateInput(e *ecs.ECS) {
	as.buttons.Next()
	pollButtons(&as.buttons)

	if systems.GetAction(&as.buttons, cfg.ActionDebug).JustPressed {
		as.debug = !as.debug
	}
	if as.hero.Valid() {
		components.Input.Get(as.hero).Current = systems.Snapshot(&as.buttons)
	}
}

func (as *ArenaScene) updateCharacters(e *ecs.ECS) {
	systems.UpdateCharacters(e.World, as.dt)
}

func (as *ArenaScene) updatePhysics(e *ecs.ECS) {
	as.physics.StepAll()
}

func (as *ArenaScene) updateAnimations(e *ecs.ECS) {
	for _, anim := range as.anims {
		anim.Update()
	}
}

func (as *ArenaScene) updateProjectiles(e *ecs.ECS) {
	systems.UpdateProjectiles(e.World, as.dt, systems.EnemyHits{}, as.physics)
}

func (as *ArenaScene) updateEnemies(e *ecs.ECS) {
	systems.UpdateEnemies(e.World, as.physics)
}
