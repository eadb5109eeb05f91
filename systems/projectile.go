package systems

import (
	"time"

	"github.com/automoto/herokit/archetypes"
	"github.com/automoto/herokit/components"
	"github.com/automoto/herokit/config"
	"github.com/automoto/herokit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Colliders is the part of the physics world that entity upkeep needs.
type Colliders interface {
	Add(obj *resolv.Object)
	Remove(obj *resolv.Object)
}

// Projectiles creates projectile entities in the owner's world.
type Projectiles struct {
	Colliders Colliders
	Tuning    *config.Tuning
}

var _ components.ProjectileFactory = (*Projectiles)(nil)

func (p *Projectiles) Spawn(req components.ProjectileSpawnRequest) *donburi.Entry {
	if req.Owner == nil || !req.Owner.Valid() {
		return nil
	}
	cc := p.Tuning.Combat
	size := cc.ProjectileSize

	e := archetypes.Projectile.Spawn(req.Owner.World)
	obj := resolv.NewObject(req.X-size/2, req.Y-size/2, size, size, tags.ResolvProjectile)
	obj.Data = e
	p.Colliders.Add(obj)

	components.Object.Set(e, &components.ObjectData{Object: obj})
	components.Projectile.Set(e, &components.ProjectileData{
		Owner:     req.Owner,
		Damage:    req.Damage,
		SpeedX:    req.VelocityX,
		SpeedY:    req.VelocityY,
		Remaining: cc.ProjectileLifetime,
	})
	return e
}

// UpdateProjectiles moves projectiles, hands the first enemy each one touches
// to hits, and removes projectiles that hit something or run out of time.
func UpdateProjectiles(w donburi.World, dt time.Duration, hits components.HitResolver, colliders Colliders) {
	var live []*donburi.Entry
	components.Projectile.Each(w, func(e *donburi.Entry) {
		live = append(live, e)
	})

	for _, e := range live {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e).Object

		p.Remaining -= dt
		obj.X += p.SpeedX
		obj.Y += p.SpeedY
		obj.Update()

		expired := p.Remaining <= 0
		if !expired {
			expired = projectileContact(p, obj, hits)
		}
		if expired {
			colliders.Remove(obj)
			w.Remove(e.Entity())
		}
	}
}

func projectileContact(p *components.ProjectileData, obj *resolv.Object, hits components.HitResolver) bool {
	check := obj.Check(0, 0, tags.ResolvEnemy, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if !overlaps(obj, o) {
			continue
		}
		if o.HasTags(tags.ResolvEnemy) {
			hits.ResolveHit(p.Owner, o, p.Damage)
		}
		return true
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
