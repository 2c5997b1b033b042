package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// GetSpace returns the collision space, or nil before CreateSpace ran.
func GetSpace(ecs *ecs.ECS) *resolv.Space {
	e, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// SyncObject fits obj around a circle of radius at center and refreshes its
// cells, adding it to the space the first time.
func SyncObject(ecs *ecs.ECS, obj *resolv.Object, center dmath.Vec2, radius float64) {
	obj.X = center.X - radius
	obj.Y = center.Y - radius
	obj.W = radius * 2
	obj.H = radius * 2
	if obj.Space != nil {
		obj.Update()
		return
	}
	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}
}

// removeObject takes obj out of its space, if any.
func removeObject(obj *resolv.Object) {
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
}
