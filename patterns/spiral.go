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

// Speed-up applied to every spiral bullet once the spiral finishes
const (
	spiralReleaseAcceleration = 80
	spiralReleaseCap          = 240
)

type spiralState struct {
	angle float64
	shots int
	group *components.ControllerGroup
}

// NewSpiral creates a custom pattern turning a set of emitter arms a fixed
// step per shot. All bullets of a run share one controller group; when the
// spiral finishes the group gains an accelerating controller, releasing the
// whole spiral at once.
func NewSpiral(e *ecs.ECS, field *donburi.Entry) (*donburi.Entry, error) {
	st := &spiralState{}
	return factory.CreateAttackPattern(e, factory.PatternConfig{
		Name:        "spiral",
		Kind:        components.PatternCustom,
		Field:       field,
		BulletTypes: []string{cfg.Spiral.Bullet},
		Hooks: components.PatternHooks{
			OnInitialize: func(e *ecs.ECS, pattern *donburi.Entry) {
				st.angle = 0
				st.shots = 0
				st.group = components.NewControllerGroup(components.NewLinearController(cfg.Spiral.Velocity))
			},
			MainLoop: func(e *ecs.ECS, pattern *donburi.Entry) {
				every := max(cfg.Spiral.Every, 1)
				if components.AttackPattern.Get(pattern).Frame%every != 0 {
					return
				}
				fireSpiral(e, pattern, st)
			},
			IsFinished: func(e *ecs.ECS, pattern *donburi.Entry) bool {
				return st.shots >= cfg.Spiral.Shots
			},
			OnFinalize: func(e *ecs.ECS, pattern *donburi.Entry) {
				if st.group != nil {
					st.group.AddController(components.NewAcceleratingController(0, spiralReleaseAcceleration, spiralReleaseCap))
				}
			},
		},
	})
}

func fireSpiral(e *ecs.ECS, pattern *donburi.Entry, st *spiralState) {
	arms := max(cfg.Spiral.Arms, 1)
	origin := dmath.Vec2{X: cfg.Spiral.Origin.X, Y: cfg.Spiral.Origin.Y}
	for arm := 0; arm < arms; arm++ {
		angle := st.angle + float64(arm)*360/float64(arms)
		proj, err := factory.SpawnProjectile(e, pattern, cfg.Spiral.Bullet, origin, angle, components.View)
		if err != nil {
			log.Printf("[pattern] spiral: %v", err)
			return
		}
		st.group.Attach(components.Projectile.Get(proj))
	}
	st.angle += cfg.Spiral.Step
	st.shots++
}
