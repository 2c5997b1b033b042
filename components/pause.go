package components

import "github.com/yohamta/donburi"

// PauseData stores the global gameplay pause state. The round controller
// holds its own pause while the between-rounds transition runs.
type PauseData struct {
	IsPaused    bool // toggled by a player
	RoundPaused bool // held by the round controller
}

var Pause = donburi.NewComponentType[PauseData]()

// Paused reports whether gameplay systems should skip this frame.
func (p *PauseData) Paused() bool {
	return p.IsPaused || p.RoundPaused
}
