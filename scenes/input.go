package scenes

import (
	cfg "github.com/automoto/herokit/config"
	"github.com/automoto/herokit/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionCrouch: {
		Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionAttack: {
		Keys:                   []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionSpecial: {
		Keys:                   []ebiten.Key{ebiten.KeyK, ebiten.KeyC},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionInteract: {
		Keys:                   []ebiten.Key{ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollButtons reads keyboard and gamepads into b. Call b.Next first.
func pollButtons(b *systems.ButtonState) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				b.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					b.Current[actionID] = true
				}
			}
		}
	}

	b.Axis = analogAxis(gamepadIDs)
	if analogDown(gamepadIDs) {
		b.Current[cfg.ActionCrouch] = true
	}
}

// analogAxis returns the first left stick horizontal value past the deadzone.
func analogAxis(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone || horizontal > deadzone {
			return horizontal
		}
	}
	return 0
}

func analogDown(gamepads []ebiten.GamepadID) bool {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		if ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical) > deadzone {
			return true
		}
	}
	return false
}
