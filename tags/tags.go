package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Wall       = donburi.NewTag().SetName("Wall")
	Platform   = donburi.NewTag().SetName("Platform")
	Clock      = donburi.NewTag().SetName("Clock")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlatform   = "platform" // one-way, can be dropped through
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)
