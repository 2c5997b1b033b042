package factory

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Field.CellSize, cfg.Field.CellSize)
	return e
}

func newTestPattern(t *testing.T, e *ecs.ECS, field *donburi.Entry) *donburi.Entry {
	t.Helper()
	pattern, err := CreateAttackPattern(e, PatternConfig{
		Name:  "test",
		Kind:  components.PatternOneShot,
		Field: field,
		Hooks: components.PatternHooks{Emit: func(*ecs.ECS, *donburi.Entry) {}},
	})
	if err != nil {
		t.Fatalf("CreateAttackPattern failed: %v", err)
	}
	return pattern
}

func TestPoolReusesDeactivatedProjectiles(t *testing.T) {
	e := newTestECS()
	fields := CreateFields(e)

	first, err := GetProjectile(e, "fat", dmath.Vec2{X: 100, Y: 100}, 0, fields[0])
	if err != nil {
		t.Fatalf("GetProjectile failed: %v", err)
	}
	components.Projectile.Get(first).AddController(components.NewLinearController(5))
	DeactivateProjectile(e, first)

	second, err := GetProjectile(e, "thin", dmath.Vec2{X: 50, Y: 60}, 90, fields[1])
	if err != nil {
		t.Fatalf("GetProjectile failed: %v", err)
	}
	if second.Entity() != first.Entity() {
		t.Error("Expected the deactivated projectile to be reused")
	}

	p := components.Projectile.Get(second)
	if !p.Active || p.Type != "thin" || p.Field != fields[1] {
		t.Errorf("Unexpected reused projectile %+v", p)
	}
	if len(p.Controllers) != 0 {
		t.Error("Reused projectile should start without controllers")
	}
	if p.Radius != cfg.Bullets.Types["thin"].Radius {
		t.Errorf("Expected thin radius, got %v", p.Radius)
	}

	created, free := PoolStats(e)
	if created != 1 || free != 0 {
		t.Errorf("Expected 1 created and 0 free, got %d/%d", created, free)
	}
}

func TestGetProjectileUnknownType(t *testing.T) {
	e := newTestECS()
	_, err := GetProjectile(e, "nope", dmath.Vec2{}, 0, nil)
	if !errors.Is(err, ErrUnknownBulletType) {
		t.Errorf("Expected ErrUnknownBulletType, got %v", err)
	}
}

func TestDeactivateAll(t *testing.T) {
	e := newTestECS()
	fields := CreateFields(e)
	for i := 0; i < 5; i++ {
		if _, err := GetProjectile(e, "ring", dmath.Vec2{X: 200, Y: 200}, 0, fields[0]); err != nil {
			t.Fatal(err)
		}
	}

	if n := DeactivateAll(e); n != 5 {
		t.Errorf("Expected 5 deactivated, got %d", n)
	}
	if n := len(ActiveProjectiles(e)); n != 0 {
		t.Errorf("Expected no active projectiles, got %d", n)
	}
	if _, free := PoolStats(e); free != 5 {
		t.Errorf("Expected 5 free, got %d", free)
	}
}

func TestFireLinearBulletInView(t *testing.T) {
	e := newTestECS()
	fields := CreateFields(e)
	pattern := newTestPattern(t, e, fields[0])

	c, err := FireLinearBullet(e, pattern, "fat", dmath.Vec2{X: 0.5, Y: 0.5}, 90, 30, components.View)
	if err != nil {
		t.Fatalf("FireLinearBullet failed: %v", err)
	}
	if c.Velocity != 30 || c.Kind != components.ControllerLinear {
		t.Errorf("Unexpected controller %+v", c)
	}

	active := ActiveProjectiles(e)
	if len(active) != 1 {
		t.Fatalf("Expected 1 active projectile, got %d", len(active))
	}
	p := components.Projectile.Get(active[0])
	if p.Position != components.Field.Get(fields[0]).Center {
		t.Errorf("Expected spawn at field center, got %v", p.Position)
	}
	if len(p.Controllers) != 1 || p.Controllers[0] != c {
		t.Error("Expected the returned controller attached")
	}
}

func TestFireControlledBulletRejectsMissingController(t *testing.T) {
	e := newTestECS()
	fields := CreateFields(e)
	pattern := newTestPattern(t, e, fields[0])

	tests := []struct {
		name string
		c    *components.ControllerData
	}{
		{"nil", nil},
		{"custom without func", &components.ControllerData{Kind: components.ControllerCustom}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FireControlledBullet(e, pattern, "fat", dmath.Vec2{}, 0, tt.c, components.View)
			if !errors.Is(err, ErrMissingController) {
				t.Errorf("Expected ErrMissingController, got %v", err)
			}
		})
	}
	if n := len(ActiveProjectiles(e)); n != 0 {
		t.Errorf("Rejected bullets should not spawn, got %d", n)
	}
}

func TestCreateAttackPatternValidation(t *testing.T) {
	e := newTestECS()
	fields := CreateFields(e)
	emit := func(*ecs.ECS, *donburi.Entry) {}

	tests := []struct {
		name string
		pc   PatternConfig
		want error
	}{
		{"no field", PatternConfig{Kind: components.PatternTimed, Hooks: components.PatternHooks{Emit: emit}}, ErrMissingField},
		{"timed without emit", PatternConfig{Kind: components.PatternTimed, Field: fields[0]}, ErrMissingHook},
		{"custom without main loop", PatternConfig{Kind: components.PatternCustom, Field: fields[0], Hooks: components.PatternHooks{Emit: emit}}, ErrMissingHook},
		{"unknown bullet type", PatternConfig{Kind: components.PatternTimed, Field: fields[0], Hooks: components.PatternHooks{Emit: emit}, BulletTypes: []string{"fat", "nope"}}, ErrUnknownBulletType},
		{"valid", PatternConfig{Kind: components.PatternTimed, Field: fields[0], Interval: 5, Hooks: components.PatternHooks{Emit: emit}, BulletTypes: []string{"fat"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateAttackPattern(e, tt.pc)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	if n := len(GetOrCreateRegistry(e).Patterns); n != 1 {
		t.Errorf("Only the valid pattern should be registered, got %d", n)
	}
}

func TestTransferKeepsViewPoint(t *testing.T) {
	e := newTestECS()
	fields := CreateFields(e)
	pattern := newTestPattern(t, e, fields[0])

	proj, err := SpawnProjectile(e, pattern, "fat", dmath.Vec2{X: 0.25, Y: 0.75}, 0, components.View)
	if err != nil {
		t.Fatal(err)
	}
	if err := Transfer(e, proj); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	p := components.Projectile.Get(proj)
	if p.Field != fields[1] {
		t.Fatal("Expected projectile in the target field")
	}
	view := components.Field.Get(fields[1]).ViewPoint(p.Position)
	if math.Abs(view.X-0.25) > 1e-9 || math.Abs(view.Y-0.75) > 1e-9 {
		t.Errorf("Expected view point (0.25, 0.75), got %v", view)
	}
}

func TestCreatePlayerLinksField(t *testing.T) {
	e := newTestECS()
	fields := CreateFields(e)

	player := CreatePlayer(e, 0, fields[0])

	f := components.Field.Get(fields[0])
	if f.Player != player {
		t.Error("Expected the field to reference its player")
	}
	p := components.Player.Get(player)
	if p.Lives != cfg.Player.MaxLives || p.FireSink == nil {
		t.Errorf("Unexpected player %+v", p)
	}

	p.FireSink.Trigger()
	shots := ActiveProjectiles(e)
	if len(shots) != 2 {
		t.Fatalf("Expected a pair of shots, got %d", len(shots))
	}
	for _, s := range shots {
		if components.Projectile.Get(s).Owner != 0 {
			t.Error("Shots should be owned by the player")
		}
	}

	orphan := CreatePlayer(e, 1, nil)
	if components.Player.Get(orphan).FireSink != nil {
		t.Error("A player without a field should not fire")
	}
}
