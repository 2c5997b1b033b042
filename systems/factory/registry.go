package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateRegistry returns the singleton entity registry, creating it if needed.
func GetOrCreateRegistry(ecs *ecs.ECS) *components.RegistryData {
	if _, ok := components.Registry.First(ecs.World); !ok {
		archetypes.Registry.Spawn(ecs)
	}

	ent, _ := components.Registry.First(ecs.World)
	return components.Registry.Get(ent)
}
