package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/danmaku/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrMissingController is returned when firing with a nil controller or a
// custom controller without an update function.
var ErrMissingController = errors.New("missing projectile controller")

func patternField(pattern *donburi.Entry) (*donburi.Entry, error) {
	if pattern == nil || !pattern.Valid() || !pattern.HasComponent(components.AttackPattern) {
		return nil, fmt.Errorf("spawn: %w", ErrMissingField)
	}
	ap := components.AttackPattern.Get(pattern)
	if ap.Field == nil || !ap.Field.Valid() {
		return nil, fmt.Errorf("spawn from %q: %w", ap.Name, ErrMissingField)
	}
	return ap.Field, nil
}

// SpawnProjectile activates a projectile with no controller in the pattern's
// field. Location and rotation are read in coordSys; view rotations are
// relative to the field camera.
func SpawnProjectile(ecs *ecs.ECS, pattern *donburi.Entry, bulletType string, location dmath.Vec2, rotation float64, coordSys components.CoordinateSystem) (*donburi.Entry, error) {
	fieldEntry, err := patternField(pattern)
	if err != nil {
		return nil, err
	}
	field := components.Field.Get(fieldEntry)
	if coordSys == components.View {
		rotation += field.Rotation
	}
	return GetProjectile(ecs, bulletType, field.WorldPoint(location, coordSys), rotation, fieldEntry)
}

// FireLinearBullet spawns a projectile moving in a straight line and returns
// its controller so callers can add acceleration.
func FireLinearBullet(ecs *ecs.ECS, pattern *donburi.Entry, bulletType string, location dmath.Vec2, rotation, velocity float64, coordSys components.CoordinateSystem) (*components.ControllerData, error) {
	c := components.NewLinearController(velocity)
	if _, err := FireControlledBullet(ecs, pattern, bulletType, location, rotation, c, coordSys); err != nil {
		return nil, err
	}
	return c, nil
}

// FireCurvedBullet spawns a projectile turning at angularVelocity degrees per second.
func FireCurvedBullet(ecs *ecs.ECS, pattern *donburi.Entry, bulletType string, location dmath.Vec2, rotation, velocity, angularVelocity float64, coordSys components.CoordinateSystem) (*components.ControllerData, error) {
	c := components.NewCurvedController(velocity, angularVelocity)
	if _, err := FireControlledBullet(ecs, pattern, bulletType, location, rotation, c, coordSys); err != nil {
		return nil, err
	}
	return c, nil
}

// FireControlledBullet spawns a projectile driven by controller. The same
// controller may be passed for many projectiles.
func FireControlledBullet(ecs *ecs.ECS, pattern *donburi.Entry, bulletType string, location dmath.Vec2, rotation float64, controller *components.ControllerData, coordSys components.CoordinateSystem) (*donburi.Entry, error) {
	if controller == nil || (controller.Kind == components.ControllerCustom && controller.Func == nil) {
		return nil, ErrMissingController
	}
	e, err := SpawnProjectile(ecs, pattern, bulletType, location, rotation, coordSys)
	if err != nil {
		return nil, err
	}
	components.Projectile.Get(e).AddController(controller)
	return e, nil
}

// Transfer moves a projectile to the same view point of its field's target
// field, keeping its heading relative to the field camera.
func Transfer(ecs *ecs.ECS, e *donburi.Entry) error {
	p := components.Projectile.Get(e)
	if p.Field == nil || !p.Field.Valid() {
		return fmt.Errorf("transfer: %w", ErrMissingField)
	}
	from := components.Field.Get(p.Field)
	to, ok := from.TargetField()
	if !ok {
		return fmt.Errorf("transfer from field %d: %w", from.Index, ErrMissingField)
	}

	p.Position = to.WorldPoint(from.ViewPoint(p.Position), components.View)
	p.SetRotation(p.Rotation - from.Rotation + to.Rotation)
	p.Field = from.Target

	SyncObject(ecs, components.Object.Get(e).Object, p.Position, p.Radius)
	return nil
}
