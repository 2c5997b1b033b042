package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/shared/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTimedTrigger spawns a trigger calling sink every frames frames.
func CreateTimedTrigger(ecs *ecs.ECS, frames int, sink components.Trigger) *donburi.Entry {
	trigger := archetypes.TimedTrigger.Spawn(ecs)
	components.TimedTrigger.SetValue(trigger, components.TimedTriggerData{
		Delay: timing.NewFrameCounter(frames),
		Sink:  sink,
	})
	return trigger
}

// PatternTrigger fires pattern unless it is already running.
func PatternTrigger(pattern *donburi.Entry) components.Trigger {
	return components.TriggerFunc(func() {
		if pattern == nil || !pattern.Valid() {
			return
		}
		ap := components.AttackPattern.Get(pattern)
		if ap.Running() {
			return
		}
		_ = ap.Fire()
	})
}
