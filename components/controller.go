package components

import (
	"math"

	"github.com/automoto/danmaku/shared/gamemath"
)

// ControllerKind selects the motion update a controller applies.
type ControllerKind int

const (
	ControllerLinear ControllerKind = iota
	ControllerCurved
	ControllerCustom
)

func (k ControllerKind) String() string {
	switch k {
	case ControllerLinear:
		return "linear"
	case ControllerCurved:
		return "curved"
	case ControllerCustom:
		return "custom"
	}
	return "unknown"
}

// ControllerFunc is the per-frame update of a custom controller.
type ControllerFunc func(p *ProjectileData, dt float64)

// ControllerData is a per-frame motion strategy. One controller may drive
// any number of projectiles; per-projectile state lives on the projectile.
type ControllerData struct {
	Kind ControllerKind

	// Linear and curved
	Velocity     float64 // world units per second
	Acceleration float64 // world units per second squared
	CapSpeed     float64

	// Curved, degrees per second
	AngularVelocity float64

	// Custom
	Func ControllerFunc

	Paused bool
}

// NewLinearController returns a constant velocity straight-line controller.
func NewLinearController(velocity float64) *ControllerData {
	return &ControllerData{Kind: ControllerLinear, Velocity: velocity}
}

// NewAcceleratingController returns a linear controller that accelerates
// toward capSpeed. See SetAcceleration for contradictory values.
func NewAcceleratingController(velocity, acceleration, capSpeed float64) *ControllerData {
	c := NewLinearController(velocity)
	c.SetAcceleration(acceleration, capSpeed)
	return c
}

// NewCurvedController returns a controller turning at a constant rate.
func NewCurvedController(velocity, angularVelocity float64) *ControllerData {
	return &ControllerData{Kind: ControllerCurved, Velocity: velocity, AngularVelocity: angularVelocity}
}

// NewCustomController wraps fn as a controller.
func NewCustomController(fn ControllerFunc) *ControllerData {
	return &ControllerData{Kind: ControllerCustom, Func: fn}
}

// SetAcceleration configures acceleration toward a cap speed. A NaN cap clears
// both. When the sign of accel disagrees with the sign of (cap - Velocity) the
// acceleration is dropped and Velocity jumps to cap.
func (c *ControllerData) SetAcceleration(accel, capSpeed float64) {
	if math.IsNaN(capSpeed) {
		c.Acceleration = 0
		c.CapSpeed = 0
		return
	}
	if gamemath.Sign(accel) == gamemath.Sign(capSpeed-c.Velocity) {
		c.Acceleration = accel
		c.CapSpeed = capSpeed
		return
	}
	c.Acceleration = 0
	c.Velocity = capSpeed
}

// CurrentVelocity returns the speed after elapsed seconds of lifetime.
func (c *ControllerData) CurrentVelocity(elapsed float64) float64 {
	v := c.Velocity
	if c.Acceleration == 0 {
		return v
	}
	v += c.Acceleration * elapsed
	if c.Acceleration < 0 && v < c.CapSpeed {
		v = c.CapSpeed
	} else if c.Acceleration > 0 && v > c.CapSpeed {
		v = c.CapSpeed
	}
	return v
}

// UpdateProjectile advances p by one frame of dt seconds.
func (c *ControllerData) UpdateProjectile(p *ProjectileData, dt float64) {
	switch c.Kind {
	case ControllerLinear:
		c.move(p, dt)
	case ControllerCurved:
		if c.AngularVelocity != 0 {
			p.SetRotation(p.Rotation + c.AngularVelocity*dt)
		}
		c.move(p, dt)
	case ControllerCustom:
		if c.Func != nil {
			c.Func(p, dt)
		}
	}
}

func (c *ControllerData) move(p *ProjectileData, dt float64) {
	v := c.CurrentVelocity(p.Time)
	if v == 0 {
		return
	}
	change := v * dt
	p.Position.X += p.Direction.X * change
	p.Position.Y += p.Direction.Y * change
}

// ControllerGroup shares a set of controllers between many projectiles.
// Controllers added after a projectile joined still apply to it.
type ControllerGroup struct {
	Controllers []*ControllerData
	Paused      bool
	members     int
}

// NewControllerGroup returns a group driven by the given controllers.
func NewControllerGroup(controllers ...*ControllerData) *ControllerGroup {
	return &ControllerGroup{Controllers: controllers}
}

// AddController appends c to every member of the group.
func (g *ControllerGroup) AddController(c *ControllerData) {
	g.Controllers = append(g.Controllers, c)
}

// Attach makes p a member of the group.
func (g *ControllerGroup) Attach(p *ProjectileData) {
	p.Groups = append(p.Groups, g)
	g.members++
}

// Members returns how many projectiles joined the group.
func (g *ControllerGroup) Members() int {
	return g.members
}
