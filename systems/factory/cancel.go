package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCancelArea spawns a bullet cancel circle that lasts duration seconds.
func CreateCancelArea(ecs *ecs.ECS, field *donburi.Entry, center dmath.Vec2, radius, duration float64) *donburi.Entry {
	area := archetypes.CancelArea.Spawn(ecs)
	components.CancelArea.SetValue(area, components.CancelAreaData{
		Field:     field,
		Center:    center,
		Radius:    radius,
		Remaining: duration,
	})
	GetOrCreateRegistry(ecs).RegisterCancelArea(area)
	return area
}
