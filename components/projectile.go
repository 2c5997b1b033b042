package components

import (
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ProjectileData is a pooled bullet. Inactive projectiles sit in the pool and
// are skipped by every system.
type ProjectileData struct {
	Type      string
	Radius    float64
	Position  dmath.Vec2 // world coordinates
	Direction dmath.Vec2 // unit vector derived from Rotation
	Rotation  float64    // degrees
	Time      float64    // seconds since activation
	Field     *donburi.Entry
	Active    bool
	Grazed    bool
	Owner     int // player slot that fired it, -1 for patterns

	Controllers []*ControllerData
	Groups      []*ControllerGroup
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// SetRotation sets the rotation and recomputes the travel direction.
func (p *ProjectileData) SetRotation(degrees float64) {
	p.Rotation = degrees
	p.Direction = gamemath.DirectionFromAngle(degrees)
}

// AddController attaches a controller for the rest of the projectile's life.
func (p *ProjectileData) AddController(c *ControllerData) {
	p.Controllers = append(p.Controllers, c)
}

// RunControllers applies every unpaused controller once.
func (p *ProjectileData) RunControllers(dt float64) {
	for _, c := range p.Controllers {
		if !c.Paused {
			c.UpdateProjectile(p, dt)
		}
	}
	for _, g := range p.Groups {
		if g.Paused {
			continue
		}
		for _, c := range g.Controllers {
			if !c.Paused {
				c.UpdateProjectile(p, dt)
			}
		}
	}
}

// Reset clears all per-activation state so the projectile can be reused.
func (p *ProjectileData) Reset() {
	p.Time = 0
	p.Active = false
	p.Grazed = false
	p.Owner = -1
	clear(p.Controllers)
	clear(p.Groups)
	p.Controllers = p.Controllers[:0]
	p.Groups = p.Groups[:0]
}

// ProjectilePoolData holds deactivated projectiles ready for reuse.
type ProjectilePoolData struct {
	Free    []*donburi.Entry
	Created int
}

var ProjectilePool = donburi.NewComponentType[ProjectilePoolData]()
