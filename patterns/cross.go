// Package patterns holds the concrete attack patterns fired by special
// attacks and timed triggers.
package patterns

import (
	"log"
	"math/rand"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CrossShot is one bullet of the formation, relative to its center before
// the formation turns to face the player.
type CrossShot struct {
	Offset dmath.Vec2
	Turn   float64 // added to the aim angle
	Thin   bool
}

// Firing directions relative to the aim angle
const (
	turnUp    = 0
	turnLeft  = 90
	turnAway  = 180
	turnRight = 270
)

// CrossFormation returns the shots of one volley. half is the half width of
// the cross arms and sep the spacing between bullets of a column.
func CrossFormation(half, sep float64) []CrossShot {
	thinX := 0.0125 + sep*4
	thinY := 0.125 + sep*2
	return []CrossShot{
		// left column
		{dmath.Vec2{X: -half, Y: 0}, turnLeft, false},
		{dmath.Vec2{X: -half, Y: half + sep}, turnLeft, false},
		{dmath.Vec2{X: -half, Y: -half - sep}, turnLeft, false},
		// right column
		{dmath.Vec2{X: half, Y: 0}, turnRight, false},
		{dmath.Vec2{X: half, Y: half + sep}, turnRight, false},
		{dmath.Vec2{X: half, Y: -half - sep}, turnRight, false},
		// up row
		{dmath.Vec2{X: 0, Y: -half}, turnUp, false},
		{dmath.Vec2{X: -half - sep, Y: -half}, turnUp, false},
		{dmath.Vec2{X: half + sep, Y: -half}, turnUp, false},
		// down row
		{dmath.Vec2{X: 0, Y: half}, turnAway, false},
		{dmath.Vec2{X: -half - sep, Y: half}, turnAway, false},
		{dmath.Vec2{X: half + sep, Y: half}, turnAway, false},
		// diagonal pairs
		{dmath.Vec2{X: -thinX, Y: thinY}, turnUp, true},
		{dmath.Vec2{X: -thinX, Y: thinY}, turnLeft, true},
		{dmath.Vec2{X: thinX, Y: thinY}, turnUp, true},
		{dmath.Vec2{X: thinX, Y: thinY}, turnRight, true},
		{dmath.Vec2{X: -thinX, Y: -thinY}, turnAway, true},
		{dmath.Vec2{X: -thinX, Y: -thinY}, turnLeft, true},
		{dmath.Vec2{X: thinX, Y: -thinY}, turnAway, true},
		{dmath.Vec2{X: thinX, Y: -thinY}, turnRight, true},
	}
}

const crossHalfWidth = 0.05

type crossState struct {
	center dmath.Vec2 // view coordinates
	angle  float64
}

// NewCross creates the cross formation: a timed pattern that picks a random
// center on activation, aims it at the field's player and fires a rotating
// cross of fat and thin bullets every interval until the volleys run out.
func NewCross(e *ecs.ECS, field *donburi.Entry, rng *rand.Rand) (*donburi.Entry, error) {
	st := &crossState{}
	return factory.CreateAttackPattern(e, factory.PatternConfig{
		Name:        "cross",
		Kind:        components.PatternTimed,
		Field:       field,
		Interval:    cfg.Cross.Interval,
		BulletTypes: []string{cfg.Cross.FatBullet, cfg.Cross.ThinBullet},
		Hooks: components.PatternHooks{
			OnInitialize: func(e *ecs.ECS, pattern *donburi.Entry) {
				f := components.Field.Get(components.AttackPattern.Get(pattern).Field)
				st.center = gamemath.RandomInRect(rng, point(cfg.Cross.CenterMin), point(cfg.Cross.CenterMax))
				st.angle = f.AngleTowardPlayer(st.center, components.View)
			},
			Emit: func(e *ecs.ECS, pattern *donburi.Entry) {
				fireCross(e, pattern, st)
			},
			IsFinished: func(e *ecs.ECS, pattern *donburi.Entry) bool {
				return cfg.Cross.Volleys > 0 && components.AttackPattern.Get(pattern).Emissions >= cfg.Cross.Volleys
			},
		},
	})
}

func fireCross(e *ecs.ECS, pattern *donburi.Entry, st *crossState) {
	for _, shot := range CrossFormation(crossHalfWidth, cfg.Cross.Separation) {
		bullet := cfg.Cross.FatBullet
		if shot.Thin {
			bullet = cfg.Cross.ThinBullet
		}
		at := gamemath.RotateAround(st.center.Add(shot.Offset), st.center, st.angle)
		if _, err := factory.FireLinearBullet(e, pattern, bullet, at, st.angle+shot.Turn, cfg.Cross.Velocity, components.View); err != nil {
			log.Printf("[pattern] cross: %v", err)
			return
		}
	}
}

func point(p cfg.Point) dmath.Vec2 {
	return dmath.Vec2{X: p.X, Y: p.Y}
}
