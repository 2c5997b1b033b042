package systems

import (
	"math"
	"testing"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateProjectilesMovesAndAges(t *testing.T) {
	e, fields := newTestWorld(t)
	center := components.Field.Get(fields[0]).Center

	proj, err := factory.GetProjectile(e, "fat", center, 0, fields[0])
	if err != nil {
		t.Fatal(err)
	}
	p := components.Projectile.Get(proj)
	p.AddController(components.NewLinearController(60))

	for i := 0; i < 30; i++ {
		UpdateProjectiles(e)
	}

	if math.Abs(p.Time-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 s lifetime, got %v", p.Time)
	}
	if math.Abs(p.Position.Y-(center.Y+30)) > 1e-6 || p.Position.X != center.X {
		t.Errorf("Expected to move 30 units up, got %v", p.Position)
	}
	obj := components.Object.Get(proj).Object
	if math.Abs(obj.X+obj.W/2-p.Position.X) > 1e-9 || math.Abs(obj.Y+obj.H/2-p.Position.Y) > 1e-9 {
		t.Error("Collision object should follow the projectile")
	}
}

func TestUpdateProjectilesDeactivatesOffField(t *testing.T) {
	e, fields := newTestWorld(t)
	f := components.Field.Get(fields[0])
	edge := f.WorldPoint(dmath.Vec2{X: 0.5, Y: 0}, components.View)

	proj, err := factory.GetProjectile(e, "fat", edge, 180, fields[0])
	if err != nil {
		t.Fatal(err)
	}
	components.Projectile.Get(proj).AddController(components.NewLinearController(cfg.Field.OffFieldMargin * 60 * 0.75))

	UpdateProjectiles(e)
	if !components.Projectile.Get(proj).Active {
		t.Fatal("Projectile inside the margin should stay active")
	}
	UpdateProjectiles(e)
	if components.Projectile.Get(proj).Active {
		t.Error("Projectile beyond the margin should be deactivated")
	}
	if _, free := factory.PoolStats(e); free != 1 {
		t.Errorf("Expected the projectile back in the pool, got %d free", free)
	}
}

func TestPlayerShotReturnsToOpponentField(t *testing.T) {
	e, fields := newTestWorld(t)
	f := components.Field.Get(fields[0])
	top := f.WorldPoint(dmath.Vec2{X: 0.3, Y: 1}, components.View)
	top.Y += cfg.Field.OffFieldMargin + 1

	proj, err := factory.GetProjectile(e, "shot", top, 0, fields[0])
	if err != nil {
		t.Fatal(err)
	}
	p := components.Projectile.Get(proj)
	p.Owner = 0

	UpdateProjectiles(e)

	if !p.Active || p.Field != fields[1] {
		t.Fatalf("Expected the shot moved to the opponent field, got active=%v", p.Active)
	}
	if p.Owner != -1 {
		t.Error("Returned shot should be hostile")
	}
	view := components.Field.Get(fields[1]).ViewPoint(p.Position)
	if math.Abs(view.X-0.3) > 1e-6 || math.Abs(view.Y-1) > 1e-6 {
		t.Errorf("Expected to enter at the top of the field, got %v", view)
	}
	if math.Abs(p.Direction.Y+1) > 1e-9 {
		t.Errorf("Returned shot should fly down, got direction %v", p.Direction)
	}
}

func TestCurvedControllerThroughSystem(t *testing.T) {
	e, fields := newTestWorld(t)
	center := components.Field.Get(fields[0]).Center

	proj, err := factory.GetProjectile(e, "ring", center, 0, fields[0])
	if err != nil {
		t.Fatal(err)
	}
	p := components.Projectile.Get(proj)
	p.AddController(components.NewCurvedController(10, 60))

	for i := 0; i < 60; i++ {
		UpdateProjectiles(e)
	}

	if math.Abs(p.Rotation-60) > 1e-6 {
		t.Errorf("Expected rotation 60 after one second, got %v", p.Rotation)
	}
}
