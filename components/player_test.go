package components

import (
	"math"
	"testing"

	"github.com/automoto/danmaku/shared/timing"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestPlayer() *PlayerData {
	return &PlayerData{
		Lives:       3,
		NormalSpeed: 10,
		FocusSpeed:  4,
		FireRate:    4,
		ChargeRate:  1,
		InvulnTimer: timing.NewFrameCounter(6),
		FlashTimer:  timing.NewFrameCounter(2),
	}
}

func TestPlayerForbiddenMovement(t *testing.T) {
	p := newTestPlayer()
	p.ForbidMovement(dmath.Vec2{X: 1, Y: 0})

	p.Move(1, 0, 1)
	if p.Position.X != 0 {
		t.Errorf("Expected no horizontal movement into the wall, got X=%v", p.Position.X)
	}

	p.Move(-1, 0, 1)
	if p.Position.X != -10 {
		t.Errorf("Expected normal leftward movement, got X=%v", p.Position.X)
	}

	p.AllowMovement(dmath.Vec2{X: 1, Y: 0})
	p.Move(1, 0, 1)
	if p.Position.X != 0 {
		t.Errorf("Expected movement after AllowMovement, got X=%v", p.Position.X)
	}
}

func TestPlayerFocusSpeed(t *testing.T) {
	p := newTestPlayer()
	p.IsFocused = true
	p.Move(0, 5, 0.5)
	if p.Position.Y != 2 {
		t.Errorf("Expected focused move of 2, got %v", p.Position.Y)
	}
}

func TestPlayerCanMove(t *testing.T) {
	p := newTestPlayer()
	p.ForbidMovement(dmath.Vec2{X: -1, Y: 1})
	if p.CanMoveHorizontal() != 1 {
		t.Errorf("Expected CanMoveHorizontal=1, got %d", p.CanMoveHorizontal())
	}
	if p.CanMoveVertical() != -1 {
		t.Errorf("Expected CanMoveVertical=-1, got %d", p.CanMoveVertical())
	}
	p.AllowMovement(dmath.Vec2{X: 1})
	if p.ForbiddenMovement.X != -1 {
		t.Error("AllowMovement in the other direction should keep the block")
	}
}

func TestPlayerFireCheckCadence(t *testing.T) {
	p := newTestPlayer()
	shots := 0
	p.FireSink = TriggerFunc(func() { shots++ })
	p.IsFiring = true

	// First check fires immediately, then every 1/FireRate seconds
	dt := 0.05
	for i := 0; i < 20; i++ {
		p.FireCheck(dt)
	}
	// 1 s at 4 shots per second, first shot at t=0.05
	if shots != 4 {
		t.Errorf("Expected 4 shots in one second, got %d", shots)
	}

	p.Charging = true
	before := shots
	for i := 0; i < 20; i++ {
		p.FireCheck(dt)
	}
	if shots != before {
		t.Error("Charging should suppress normal fire")
	}
}

func TestPlayerHitAndInvincibility(t *testing.T) {
	p := newTestPlayer()

	if !p.Hit() {
		t.Fatal("Expected first hit to take a life")
	}
	if p.Lives != 2 {
		t.Errorf("Expected 2 lives, got %d", p.Lives)
	}
	if p.Hit() {
		t.Error("Hit during invincibility should be ignored")
	}

	flashes := 0
	for i := 0; i < 5; i++ {
		was := p.Flash
		p.UpdateInvincibility()
		if p.Flash != was {
			flashes++
		}
		if !p.Invincible {
			t.Fatalf("Invincibility ended early on frame %d", i+1)
		}
	}
	if flashes == 0 {
		t.Error("Expected the flash to toggle during invincibility")
	}
	p.UpdateInvincibility()
	if p.Invincible || p.Flash {
		t.Error("Expected invincibility to end on frame 6")
	}
	if !p.Hit() || p.Lives != 1 {
		t.Error("Expected hits to count again after invincibility")
	}

	p.Reset(3)
	if p.Lives != 3 {
		t.Errorf("Expected Reset to restore 3 lives, got %d", p.Lives)
	}
}

func TestPlayerChargeAndSpecialAttack(t *testing.T) {
	w := donburi.NewWorld()
	patterns := make([]*donburi.Entry, 2)
	for i := range patterns {
		patterns[i] = w.Entry(w.Create(AttackPattern))
		AttackPattern.Get(patterns[i]).Name = "special"
	}

	p := newTestPlayer()
	p.Patterns = patterns
	p.ChargeCapacity = 3
	p.ChargeRate = 1

	if p.MaxChargeLevel() != 3 {
		t.Fatalf("Expected MaxChargeLevel=3, got %d", p.MaxChargeLevel())
	}

	p.SetCharging(true)
	for i := 0; i < 25; i++ {
		p.UpdateCharge(0.1)
	}
	// 2.5 levels charged, capped by capacity 3
	p.SetCharging(false)

	if !AttackPattern.Get(patterns[1]).Active {
		t.Error("Expected the level 2 pattern to fire")
	}
	if AttackPattern.Get(patterns[0]).Active {
		t.Error("Level 1 pattern should not fire")
	}
	if math.Abs(p.ChargeLevel-0.5) > 1e-6 {
		t.Errorf("Expected 0.5 charge left, got %v", p.ChargeLevel)
	}
	if p.ChargeCapacity > 3 || p.ChargeCapacity < 1 {
		t.Errorf("Unexpected capacity %v", p.ChargeCapacity)
	}
}

func TestPlayerChargeCapacityCap(t *testing.T) {
	p := newTestPlayer()
	p.CapacityRegen = 10
	p.UpdateCharge(1)
	if p.ChargeCapacity != 1 {
		t.Errorf("Capacity should cap at MaxChargeLevel=1, got %v", p.ChargeCapacity)
	}

	p.Charging = true
	p.ChargeRate = 5
	p.UpdateCharge(1)
	if p.ChargeLevel != p.ChargeCapacity {
		t.Errorf("Charge should cap at capacity, got %v", p.ChargeLevel)
	}
}

func TestPlayerSpecialAttackMissingPattern(t *testing.T) {
	p := newTestPlayer()
	p.Patterns = []*donburi.Entry{nil}
	p.ChargeLevel = 1
	p.ChargeCapacity = 2

	p.SpecialAttack(1)

	if p.ChargeLevel != 0 || p.ChargeCapacity != 1 {
		t.Errorf("Charge should still be spent, got level=%v capacity=%v", p.ChargeLevel, p.ChargeCapacity)
	}
}
