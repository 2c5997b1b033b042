package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Projectile   = donburi.NewTag().SetName("Projectile")
	Field        = donburi.NewTag().SetName("Field")
	Pattern      = donburi.NewTag().SetName("Pattern")
	CancelArea   = donburi.NewTag().SetName("CancelArea")
	TimedTrigger = donburi.NewTag().SetName("TimedTrigger")
)

// Resolv tags for collision
const (
	ResolvPlayer     = "Player"
	ResolvProjectile = "Projectile"
)
