package patterns

import (
	"log"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Seconds aimed bullets keep steering toward the player, and how fast
const (
	homingDuration = 0.4
	homingRate     = 90 // degrees per second
)

// NewAimed creates a one-shot fan of accelerating bullets aimed at the
// field's player. Each bullet briefly homes in before flying straight.
func NewAimed(e *ecs.ECS, field *donburi.Entry) (*donburi.Entry, error) {
	return factory.CreateAttackPattern(e, factory.PatternConfig{
		Name:        "aimed",
		Kind:        components.PatternOneShot,
		Field:       field,
		BulletTypes: []string{cfg.Aimed.Bullet},
		Hooks: components.PatternHooks{
			Emit: fireAimed,
		},
	})
}

func fireAimed(e *ecs.ECS, pattern *donburi.Entry) {
	fieldEntry := components.AttackPattern.Get(pattern).Field
	f := components.Field.Get(fieldEntry)
	origin := dmath.Vec2{X: cfg.Aimed.Origin.X, Y: cfg.Aimed.Origin.Y}
	aim := f.AngleTowardPlayer(origin, components.View)

	count := max(cfg.Aimed.Count, 1)
	step := 0.0
	if count > 1 {
		step = cfg.Aimed.Spread / float64(count-1)
	}
	start := aim - cfg.Aimed.Spread/2
	if count == 1 {
		start = aim
	}

	mover := components.NewAcceleratingController(cfg.Aimed.Velocity, cfg.Aimed.Acceleration, cfg.Aimed.CapSpeed)
	homing := components.NewCustomController(homeOn(fieldEntry))
	for i := 0; i < count; i++ {
		proj, err := factory.FireControlledBullet(e, pattern, cfg.Aimed.Bullet, origin, start+float64(i)*step, mover, components.View)
		if err != nil {
			log.Printf("[pattern] aimed: %v", err)
			return
		}
		components.Projectile.Get(proj).AddController(homing)
	}
}

// homeOn turns a projectile toward the player of field for the first
// homingDuration seconds of its life.
func homeOn(field *donburi.Entry) components.ControllerFunc {
	return func(p *components.ProjectileData, dt float64) {
		if p.Time >= homingDuration || field == nil || !field.Valid() {
			return
		}
		target, ok := components.Field.Get(field).PlayerPosition()
		if !ok {
			return
		}
		want := gamemath.AngleBetween(p.Position, target)
		diff := normalizeAngle(want - p.Rotation)
		limit := homingRate * dt
		if diff > limit {
			diff = limit
		} else if diff < -limit {
			diff = -limit
		}
		p.SetRotation(p.Rotation + diff)
	}
}

// normalizeAngle maps degrees into (-180, 180].
func normalizeAngle(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}
