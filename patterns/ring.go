package patterns

import (
	"log"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewRing creates a timed pattern firing rings of evenly spaced bullets.
// Each volley is offset by half a step from the last and, with an angular
// velocity configured, curls the opposite way.
func NewRing(e *ecs.ECS, field *donburi.Entry) (*donburi.Entry, error) {
	return factory.CreateAttackPattern(e, factory.PatternConfig{
		Name:        "ring",
		Kind:        components.PatternTimed,
		Field:       field,
		Interval:    cfg.Ring.Interval,
		BulletTypes: []string{cfg.Ring.Bullet},
		Hooks: components.PatternHooks{
			Emit:       fireRing,
			IsFinished: ringFinished,
		},
	})
}

func ringFinished(e *ecs.ECS, pattern *donburi.Entry) bool {
	return cfg.Ring.Volleys > 0 && components.AttackPattern.Get(pattern).Emissions >= cfg.Ring.Volleys
}

func fireRing(e *ecs.ECS, pattern *donburi.Entry) {
	count := cfg.Ring.Count
	if count <= 0 {
		return
	}
	volley := components.AttackPattern.Get(pattern).Emissions
	step := 360 / float64(count)
	offset := float64(volley%2) * step / 2

	// One controller drives the whole volley
	controller := components.NewLinearController(cfg.Ring.Velocity)
	if cfg.Ring.AngularVelocity != 0 {
		turn := cfg.Ring.AngularVelocity
		if volley%2 == 1 {
			turn = -turn
		}
		controller = components.NewCurvedController(cfg.Ring.Velocity, turn)
	}

	origin := dmath.Vec2{X: cfg.Ring.Origin.X, Y: cfg.Ring.Origin.Y}
	for i := 0; i < count; i++ {
		angle := offset + float64(i)*step
		if _, err := factory.FireControlledBullet(e, pattern, cfg.Ring.Bullet, origin, angle, controller, components.View); err != nil {
			log.Printf("[pattern] ring: %v", err)
			return
		}
	}
}
