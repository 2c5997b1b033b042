package archetypes

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.PlayerInput,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Field = newArchetype(
		tags.Field,
		components.Field,
	)
	Pattern = newArchetype(
		tags.Pattern,
		components.AttackPattern,
	)
	CancelArea = newArchetype(
		tags.CancelArea,
		components.CancelArea,
	)
	TimedTrigger = newArchetype(
		tags.TimedTrigger,
		components.TimedTrigger,
	)
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Round,
	)
	Registry = newArchetype(
		components.Registry,
	)
	ProjectilePool = newArchetype(
		components.ProjectilePool,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	types := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	types = append(types, a.components...)
	types = append(types, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, types...))
}
