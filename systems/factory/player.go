package factory

import (
	"fmt"

	"github.com/automoto/herokit/archetypes"
	"github.com/automoto/herokit/components"
	cfg "github.com/automoto/herokit/config"
	"github.com/automoto/herokit/systems"
	"github.com/yohamta/donburi"
)

type PlayerOptions struct {
	Tuning  *cfg.Tuning
	Drivers components.DriversData
}

// CreatePlayer spawns a hero bound to its collaborators. It fails before
// touching the world if a collaborator, the tuning or the clock is missing.
func CreatePlayer(w donburi.World, opts PlayerOptions) (*donburi.Entry, error) {
	if opts.Tuning == nil {
		return nil, fmt.Errorf("%w: tuning", components.ErrMissingCollaborator)
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Drivers.Validate(); err != nil {
		return nil, err
	}
	obj := opts.Drivers.Body.Collider()
	if obj == nil {
		return nil, fmt.Errorf("%w: body collider", components.ErrMissingCollaborator)
	}
	if _, ok := components.Clock.First(w); !ok {
		return nil, ErrNoClock
	}

	player := archetypes.Player.Spawn(w)
	obj.Data = player

	spawnX, spawnY := opts.Drivers.Body.Feet()
	components.Player.SetValue(player, components.PlayerData{SpawnX: spawnX, SpawnY: spawnY})
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Tuning.SetValue(player, components.TuningData{Tuning: opts.Tuning})
	components.Drivers.SetValue(player, opts.Drivers)
	components.Stats.SetValue(player, systems.NewStats(opts.Tuning.Stats))
	components.Movement.SetValue(player, components.MovementData{FacingRight: true})
	components.Combo.SetValue(player, components.ComboData{CanAttack: true})

	anim := opts.Drivers.Animation
	anim.SetFacing(true)
	anim.Play(cfg.AnimIdle)
	components.Presentation.SetValue(player, components.PresentationData{Key: cfg.AnimIdle})

	if sd, ok := anim.(components.SignalingDriver); ok {
		sd.Connect(components.AnimationSignals{
			AttackHit:   func() { systems.OnAttackHit(player) },
			AttackEnded: func() { systems.OnAttackEnd(player) },
			DeathEnded:  func() { systems.OnDeathAnimationEnd(player) },
		})
	}

	return player, nil
}
