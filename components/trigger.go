package components

import (
	"github.com/automoto/danmaku/shared/timing"
	"github.com/yohamta/donburi"
)

// TimedTriggerData calls its sink every time Delay elapses.
type TimedTriggerData struct {
	Delay  timing.FrameCounter
	Sink   Trigger
	Paused bool
	Fired  int
}

var TimedTrigger = donburi.NewComponentType[TimedTriggerData]()
