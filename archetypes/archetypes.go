package archetypes

import (
	"slices"

	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/tags"
	"github.com/yohamta/donburi"
)

var (
	Clock = newArchetype(
		tags.Clock,
		components.Clock,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Tuning,
		components.Drivers,
		components.Input,
		components.Stats,
		components.Movement,
		components.Combo,
		components.Charge,
		components.Presentation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Stats,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(slices.Concat(a.components, cs)...))
}
