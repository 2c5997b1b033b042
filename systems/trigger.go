package systems

import (
	"github.com/automoto/danmaku/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimedTriggers ticks every unpaused timed trigger and calls its sink
// each time the delay elapses.
func UpdateTimedTriggers(ecs *ecs.ECS) {
	var triggers []*donburi.Entry
	components.TimedTrigger.Each(ecs.World, func(entry *donburi.Entry) {
		triggers = append(triggers, entry)
	})

	for _, entry := range triggers {
		t := components.TimedTrigger.Get(entry)
		if t.Paused || !t.Delay.Tick() {
			continue
		}
		t.Fired++
		if t.Sink != nil {
			t.Sink.Trigger()
		}
	}
}
