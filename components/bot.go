package components

import (
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/timing"
	"github.com/yohamta/donburi"
)

// BotData marks a player driven by the dodging AI instead of a device.
type BotData struct {
	Difficulty cfg.BotDifficulty
	Reaction   timing.FrameCounter

	// Held decision, re-evaluated every Reaction interval
	MoveX, MoveY int
	Focus        bool
}

var Bot = donburi.NewComponentType[BotData]()
