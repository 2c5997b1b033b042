package components

import (
	"github.com/automoto/danmaku/shared/timing"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ResetPhase is the step of the between-rounds transition.
type ResetPhase int

const (
	ResetNone ResetPhase = iota
	ResetClosing
	ResetOpening
)

// Winner values besides a player slot
const (
	NoWinner = -1
)

// RoundSlot is one side of the versus match.
type RoundSlot struct {
	Field *donburi.Entry
	Score int
}

// RoundData is the singleton versus round controller state.
type RoundData struct {
	Slots        [2]RoundSlot
	WinningScore int
	MaxLives     int

	RoundTime float64 // seconds per round
	Remaining float64 // seconds left in the current round
	Rounds    int     // rounds finished

	Phase           ResetPhase
	Closure         float64 // 0 = open, 1 = fully closed
	ClosureDuration float64 // seconds for close + open
	Tween           *gween.Tween

	SuddenDeath bool
	Winner      int // player slot, or NoWinner

	TimerFlash      bool
	TimerFlashClock timing.FrameCounter
}

var Round = donburi.NewComponentType[RoundData]()

// Resetting reports whether the between-rounds transition is running.
func (r *RoundData) Resetting() bool {
	return r.Phase != ResetNone
}

// ScoreRound awards the survivor of a round and resolves winners. Both
// players reaching the winning score at once starts sudden death.
func (r *RoundData) ScoreRound(dead [2]bool) {
	if dead[1] && !dead[0] {
		r.Slots[0].Score++
	}
	if dead[0] && !dead[1] {
		r.Slots[1].Score++
	}
	r.Rounds++

	win0 := r.Slots[0].Score >= r.WinningScore
	win1 := r.Slots[1].Score >= r.WinningScore
	switch {
	case win0 && win1:
		r.Slots[0].Score = 0
		r.Slots[1].Score = 0
		r.WinningScore = 1
		r.SuddenDeath = true
	case win0:
		r.Winner = 0
	case win1:
		r.Winner = 1
	}
}

// Finished reports whether a player has won the match.
func (r *RoundData) Finished() bool {
	return r.Winner != NoWinner
}
