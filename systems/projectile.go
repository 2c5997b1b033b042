package systems

import (
	"log"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles runs the controllers of every active projectile, ages it,
// and retires it once it leaves its field. Runs after UpdatePatterns.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	margin := cfg.Field.OffFieldMargin

	for _, entry := range factory.ActiveProjectiles(ecs) {
		p := components.Projectile.Get(entry)
		if !p.Active {
			continue
		}

		p.RunControllers(dt)
		p.Time += dt

		if p.Field == nil || !p.Field.Valid() {
			factory.DeactivateProjectile(ecs, entry)
			continue
		}
		field := components.Field.Get(p.Field)
		if !field.Contains(p.Position, margin) {
			if p.Owner >= 0 && cfg.Player.ReturnVelocity > 0 && field.ViewPoint(p.Position).Y > 1 {
				returnShot(ecs, entry, p, field)
				continue
			}
			factory.DeactivateProjectile(ecs, entry)
			continue
		}

		factory.SyncObject(ecs, components.Object.Get(entry).Object, p.Position, p.Radius)
	}
}

// returnShot drops a player shot that left the top of its field into the top
// of the opponent's field as a hostile bullet.
func returnShot(ecs *ecs.ECS, entry *donburi.Entry, p *components.ProjectileData, field *components.FieldData) {
	view := field.ViewPoint(p.Position)
	view.Y = 1
	p.Position = field.WorldPoint(view, components.View)

	if err := factory.Transfer(ecs, entry); err != nil {
		log.Printf("[projectile] %v", err)
		factory.DeactivateProjectile(ecs, entry)
		return
	}

	p.Owner = -1
	p.Time = 0
	clear(p.Controllers)
	p.Controllers = p.Controllers[:0]
	p.SetRotation(p.Rotation + 180)
	p.AddController(components.NewLinearController(cfg.Player.ReturnVelocity))
}
