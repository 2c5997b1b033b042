package components

import (
	cfg "github.com/automoto/danmaku/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores per-player input state.
type PlayerInputData struct {
	PlayerIndex    int
	CurrentInput   [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput  [cfg.ActionCount]bool // Previous frame's Pressed state
	BoundGamepadID *ebiten.GamepadID     // Bound gamepad (nil = keyboard only)
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func (in *PlayerInputData) Action(id cfg.ActionID) ActionState {
	curr := in.CurrentInput[id]
	prev := in.PreviousInput[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
