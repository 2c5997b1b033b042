package components

import (
	"log"
	"math"

	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/shared/timing"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Trigger is the event sink fired by avatars and timed triggers.
type Trigger interface {
	Trigger()
}

// TriggerFunc adapts a function to Trigger.
type TriggerFunc func()

func (f TriggerFunc) Trigger() { f() }

// PlayerData is a player avatar.
type PlayerData struct {
	Index    int
	Position dmath.Vec2 // world coordinates
	Field    *donburi.Entry
	Paused   bool

	Lives     int
	IsFiring  bool
	IsFocused bool
	Charging  bool

	NormalSpeed float64
	FocusSpeed  float64

	FireRate  float64 // shots per second
	FireDelay float64 // seconds until the next shot
	FireSink  Trigger

	// Per-axis sign of the direction the avatar may not move in
	ForbiddenMovement dmath.Vec2

	// Special attacks, fired by releasing a charge of level i+1
	Patterns       []*donburi.Entry
	ChargeLevel    float64
	ChargeCapacity float64
	ChargeRate     float64
	CapacityRegen  float64

	Invincible  bool
	Flash       bool // hidden frame of the invincibility flash
	InvulnTimer timing.FrameCounter
	FlashTimer  timing.FrameCounter

	Grazes int
}

var Player = donburi.NewComponentType[PlayerData]()

// IsFiringNow reports whether shots are fired this frame. Charging suppresses
// normal fire.
func (p *PlayerData) IsFiringNow() bool {
	return p.IsFiring && !p.Charging
}

// Move displaces the avatar by the sign of the requested direction at the
// focus dependent speed. An axis whose direction is forbidden does not move.
func (p *PlayerData) Move(horizontal, vertical, dt float64) {
	speed := p.NormalSpeed
	if p.IsFocused {
		speed = p.FocusSpeed
	}
	dx := gamemath.Sign(horizontal)
	dy := gamemath.Sign(vertical)
	if dx == gamemath.Sign(p.ForbiddenMovement.X) {
		dx = 0
	}
	if dy == gamemath.Sign(p.ForbiddenMovement.Y) {
		dy = 0
	}
	p.Position.X += speed * dx * dt
	p.Position.Y += speed * dy * dt
}

// ForbidMovement blocks movement along the non-zero axes of direction.
func (p *PlayerData) ForbidMovement(direction dmath.Vec2) {
	if direction.X != 0 {
		p.ForbiddenMovement.X = direction.X
	}
	if direction.Y != 0 {
		p.ForbiddenMovement.Y = direction.Y
	}
}

// AllowMovement lifts a block set by ForbidMovement in the same direction.
func (p *PlayerData) AllowMovement(direction dmath.Vec2) {
	if gamemath.Sign(direction.X) == gamemath.Sign(p.ForbiddenMovement.X) {
		p.ForbiddenMovement.X = 0
	}
	if gamemath.Sign(direction.Y) == gamemath.Sign(p.ForbiddenMovement.Y) {
		p.ForbiddenMovement.Y = 0
	}
}

// CanMoveHorizontal returns the horizontal direction still open, 0 when both are.
func (p *PlayerData) CanMoveHorizontal() int {
	return -int(gamemath.Sign(p.ForbiddenMovement.X))
}

// CanMoveVertical returns the vertical direction still open, 0 when both are.
func (p *PlayerData) CanMoveVertical() int {
	return -int(gamemath.Sign(p.ForbiddenMovement.Y))
}

// FireCheck counts down the fire delay while firing and triggers the fire
// sink when it runs out. It reports whether a shot was triggered.
func (p *PlayerData) FireCheck(dt float64) bool {
	if !p.IsFiringNow() {
		return false
	}
	p.FireDelay -= dt
	if p.FireDelay >= 0 {
		return false
	}
	if p.FireSink != nil {
		p.FireSink.Trigger()
	}
	if p.FireRate > 0 {
		p.FireDelay = 1 / p.FireRate
	} else {
		p.FireDelay = 0
	}
	return true
}

// Hit takes a life unless the avatar is invincible, then starts the
// invincibility window. It reports whether a life was lost.
func (p *PlayerData) Hit() bool {
	if p.Invincible {
		return false
	}
	p.Lives--
	p.Invincible = true
	p.Flash = false
	p.InvulnTimer.Reset()
	p.FlashTimer.Reset()
	return true
}

// UpdateInvincibility advances the invincibility window by one frame.
func (p *PlayerData) UpdateInvincibility() {
	if !p.Invincible {
		return
	}
	if p.InvulnTimer.Tick() {
		p.Invincible = false
		p.Flash = false
		return
	}
	if p.FlashTimer.Tick() {
		p.Flash = !p.Flash
	}
}

// Graze records a projectile passing close by.
func (p *PlayerData) Graze() {
	p.Grazes++
}

// Reset restores lives for a new round.
func (p *PlayerData) Reset(maxLives int) {
	p.Lives = maxLives
}

// MaxChargeLevel is one above the number of special attacks.
func (p *PlayerData) MaxChargeLevel() int {
	return len(p.Patterns) + 1
}

// SetCharging starts or releases a charge. Releasing fires the special
// attack matching the whole charge level reached.
func (p *PlayerData) SetCharging(charging bool) {
	if p.Charging && !charging {
		p.SpecialAttack(int(math.Floor(p.ChargeLevel)))
	}
	p.Charging = charging
}

// SpecialAttack fires the pattern for level and spends that much charge.
func (p *PlayerData) SpecialAttack(level int) {
	index := level - 1
	if index >= 0 && index < len(p.Patterns) {
		entry := p.Patterns[index]
		if entry == nil || !entry.Valid() {
			log.Printf("[player] %d: missing attack pattern for charge level %d", p.Index, level)
		} else {
			_ = AttackPattern.Get(entry).Fire()
		}
	}
	p.ChargeLevel -= float64(level)
	p.ChargeCapacity -= float64(level)
}

// UpdateCharge regenerates capacity and accumulates charge, or counts down
// normal fire when not charging.
func (p *PlayerData) UpdateCharge(dt float64) {
	p.ChargeCapacity += p.CapacityRegen * dt
	if limit := float64(p.MaxChargeLevel()); p.ChargeCapacity > limit {
		p.ChargeCapacity = limit
	}
	if p.Charging {
		p.ChargeLevel += p.ChargeRate * dt
		if p.ChargeLevel > p.ChargeCapacity {
			p.ChargeLevel = p.ChargeCapacity
		}
		return
	}
	p.FireCheck(dt)
}
