package systems

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the singleton frame clock, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		archetypes.Clock.Spawn(ecs)
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}

// SetDeltaTime sets the seconds the next frame covers. Hosts call it before
// every ecs.Update.
func SetDeltaTime(ecs *ecs.ECS, dt float64) {
	GetOrCreateClock(ecs).DeltaTime = dt
}

// DeltaTime returns the seconds covered by the current frame.
func DeltaTime(ecs *ecs.ECS) float64 {
	return GetOrCreateClock(ecs).DeltaTime
}

// UpdateClock counts simulated frames. Runs first.
func UpdateClock(ecs *ecs.ECS) {
	GetOrCreateClock(ecs).Frame++
}
