package systems

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads for every human player.
// Must run BEFORE UpdatePlayers in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Bot) {
			return
		}
		input := components.PlayerInput.Get(entry)
		pollPlayerInput(input, gamepadIDs)
	})
}

// pollPlayerInput polls input for a single player from its key bindings and
// its gamepad. Without a bound gamepad, the n-th connected pad serves slot n.
func pollPlayerInput(input *components.PlayerInputData, gamepads []ebiten.GamepadID) {
	BeginInputFrame(input)

	slot := input.PlayerIndex
	if slot < 0 || slot >= len(cfg.Input.Players) {
		return
	}
	bindings := cfg.Input.Players[slot]

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
			}
		}
	}

	var gpID ebiten.GamepadID
	switch {
	case input.BoundGamepadID != nil:
		gpID = *input.BoundGamepadID
	case slot < len(gamepads):
		gpID = gamepads[slot]
	default:
		return
	}
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}
	for actionID, binding := range bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
			}
		}
	}
	applyAnalogStick(input, gpID)
}

// applyAnalogStick merges the left stick into the movement actions.
func applyAnalogStick(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone {
		input.CurrentInput[cfg.ActionMoveLeft] = true
	}
	if horizontal > deadzone {
		input.CurrentInput[cfg.ActionMoveRight] = true
	}
	// Stick up is negative
	if vertical < -deadzone {
		input.CurrentInput[cfg.ActionMoveUp] = true
	}
	if vertical > deadzone {
		input.CurrentInput[cfg.ActionMoveDown] = true
	}
}

// BeginInputFrame swaps the input buffers: current becomes previous, then
// current is cleared for this frame's polling.
func BeginInputFrame(input *components.PlayerInputData) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}
}

// MoveAxes returns the requested horizontal and vertical direction in view
// space (+Y is up the field).
func MoveAxes(input *components.PlayerInputData) (float64, float64) {
	var h, v float64
	if input.Action(cfg.ActionMoveLeft).Pressed {
		h--
	}
	if input.Action(cfg.ActionMoveRight).Pressed {
		h++
	}
	if input.Action(cfg.ActionMoveUp).Pressed {
		v++
	}
	if input.Action(cfg.ActionMoveDown).Pressed {
		v--
	}
	return h, v
}
