package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionFocus
	ActionCharge
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds the input mappings for each player slot
type InputConfig struct {
	// Players is indexed by player slot (0 = left field, 1 = right field)
	Players [2]map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	shared := map[ActionID]InputBinding{
		ActionMoveLeft:  {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
		ActionMoveRight: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
		ActionMoveUp:    {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
		ActionMoveDown:  {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
		// A / Cross button
		ActionFire: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
		// Left shoulder
		ActionFocus: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft}},
		// B / Circle button
		ActionCharge: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
		ActionPause:  {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}},
	}

	keys := [2]map[ActionID][]ebiten.Key{
		{
			ActionMoveLeft:  {ebiten.KeyA},
			ActionMoveRight: {ebiten.KeyD},
			ActionMoveUp:    {ebiten.KeyW},
			ActionMoveDown:  {ebiten.KeyS},
			ActionFire:      {ebiten.KeySpace},
			ActionFocus:     {ebiten.KeyShiftLeft},
			ActionCharge:    {ebiten.KeyE},
			ActionPause:     {ebiten.KeyEscape},
		},
		{
			ActionMoveLeft:  {ebiten.KeyLeft},
			ActionMoveRight: {ebiten.KeyRight},
			ActionMoveUp:    {ebiten.KeyUp},
			ActionMoveDown:  {ebiten.KeyDown},
			ActionFire:      {ebiten.KeyNumpad0, ebiten.KeyM},
			ActionFocus:     {ebiten.KeyShiftRight},
			ActionCharge:    {ebiten.KeyNumpadEnter, ebiten.KeyN},
			ActionPause:     {ebiten.KeyP},
		},
	}

	Input = InputConfig{AnalogDeadzone: 0.25}
	for slot := range Input.Players {
		bindings := make(map[ActionID]InputBinding, ActionCount)
		for action, b := range shared {
			bindings[action] = InputBinding{
				Keys:                   keys[slot][action],
				StandardGamepadButtons: b.StandardGamepadButtons,
			}
		}
		Input.Players[slot] = bindings
	}
}
