package components

import (
	"errors"
	"fmt"

	"github.com/automoto/herokit/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ErrMissingCollaborator is returned when a hero is built without one of its drivers.
var ErrMissingCollaborator = errors.New("missing collaborator")

// AnimationDriver plays presentation keys for one character.
type AnimationDriver interface {
	Play(key config.AnimationKey)
	PlayAttack(combo int)
	SetFacing(right bool)
	// IsPlaying reports whether key is the clip currently running.
	IsPlaying(key config.AnimationKey) bool
}

// AnimationSignals are fired by the animation layer back into the hero.
type AnimationSignals struct {
	AttackHit   func()
	AttackEnded func()
	DeathEnded  func()
}

// SignalingDriver is an AnimationDriver that can report clip milestones.
type SignalingDriver interface {
	AnimationDriver
	Connect(AnimationSignals)
}

type GroundQuery interface {
	Grounded(x, y, radius float64, tags ...string) bool
}

type OverlapQuery interface {
	Overlap(x, y, radius float64, tags ...string) []*resolv.Object
}

type CollisionSuppressor interface {
	Suppress(a, b *resolv.Object, suppressed bool)
}

// RigidBody is the hero's physics body. Velocities are pixels per tick.
type RigidBody interface {
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	Feet() (x, y float64)   // bottom centre
	Center() (x, y float64) // box centre
	Collider() *resolv.Object
}

// ProjectileSpawnRequest describes a projectile to create. The hero keeps no
// reference to what the factory returns.
type ProjectileSpawnRequest struct {
	X, Y        float64
	FacingRight bool
	VelocityX   float64
	VelocityY   float64
	Damage      float64
	Owner       *donburi.Entry
}

type ProjectileFactory interface {
	Spawn(req ProjectileSpawnRequest) *donburi.Entry
}

// HitResolver applies a landed hit to whatever owns target.
type HitResolver interface {
	ResolveHit(attacker *donburi.Entry, target *resolv.Object, damage float64)
}

// DriversData binds a hero to its collaborators.
type DriversData struct {
	Animation   AnimationDriver
	Body        RigidBody
	Ground      GroundQuery
	Overlap     OverlapQuery
	Suppressor  CollisionSuppressor
	Projectiles ProjectileFactory
	Hits        HitResolver
}

// Validate names the first missing collaborator.
func (d *DriversData) Validate() error {
	switch {
	case d.Animation == nil:
		return fmt.Errorf("%w: animation driver", ErrMissingCollaborator)
	case d.Body == nil:
		return fmt.Errorf("%w: rigid body", ErrMissingCollaborator)
	case d.Ground == nil:
		return fmt.Errorf("%w: ground query", ErrMissingCollaborator)
	case d.Overlap == nil:
		return fmt.Errorf("%w: overlap query", ErrMissingCollaborator)
	case d.Suppressor == nil:
		return fmt.Errorf("%w: collision suppressor", ErrMissingCollaborator)
	case d.Projectiles == nil:
		return fmt.Errorf("%w: projectile factory", ErrMissingCollaborator)
	case d.Hits == nil:
		return fmt.Errorf("%w: hit resolver", ErrMissingCollaborator)
	}
	return nil
}

var Drivers = donburi.NewComponentType[DriversData]()
