package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound spawns the versus round controller for two fields.
func CreateRound(ecs *ecs.ECS, fields [2]*donburi.Entry) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	data := components.RoundData{
		WinningScore:    cfg.Round.WinningScore,
		MaxLives:        cfg.Player.MaxLives,
		RoundTime:       cfg.Round.RoundTime,
		Remaining:       cfg.Round.RoundTime,
		ClosureDuration: cfg.Round.ClosureDuration,
		Winner:          components.NoWinner,
		TimerFlashClock: timing.NewFrameCounter(cfg.Round.TimerFlashFrames),
	}
	for i, f := range fields {
		data.Slots[i].Field = f
	}
	components.Round.SetValue(round, data)
	return round
}
