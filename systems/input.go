package systems

import (
	"math"

	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and accumulates this tick's scroll delta.
// Must run BEFORE UpdateScroll in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	for id := range input.HeldTicks {
		if input.Current[id] {
			input.HeldTicks[id]++
		} else {
			input.HeldTicks[id] = 0
		}
	}

	viewportHeight := float64(cfg.C.Height)
	if vp, ok := components.Viewport.First(ecs.World); ok {
		viewportHeight = components.Viewport.Get(vp).Height
	}

	delta := actionDelta(input, viewportHeight)

	// Mouse wheel: positive y is away from the user, i.e. scroll up
	if _, wy := ebiten.Wheel(); wy != 0 {
		delta -= wy * cfg.Scroll.WheelStep
		input.LastInputMethod = components.InputMouse
	}

	if stick := getAnalogStickState(gamepadIDs); stick != 0 {
		delta += stick * cfg.Input.AnalogSpeed
		gamepadUsed = true
	}

	input.ScrollDelta += delta

	if GetAction(input, cfg.ActionHome).JustPressed {
		input.Jump = -1
	}
	if GetAction(input, cfg.ActionEnd).JustPressed {
		input.Jump = 1
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// actionDelta converts held scroll actions into a document delta, with key
// repeat after RepeatDelay ticks.
func actionDelta(input *components.InputData, viewportHeight float64) float64 {
	page := viewportHeight * cfg.Scroll.PageFraction
	var delta float64
	if shouldRepeat(input.HeldTicks[cfg.ActionLineDown]) {
		delta += cfg.Scroll.LineStep
	}
	if shouldRepeat(input.HeldTicks[cfg.ActionLineUp]) {
		delta -= cfg.Scroll.LineStep
	}
	if shouldRepeat(input.HeldTicks[cfg.ActionPageDown]) {
		delta += page
	}
	if shouldRepeat(input.HeldTicks[cfg.ActionPageUp]) {
		delta -= page
	}
	return delta
}

// shouldRepeat fires on the first tick of a press and then every
// RepeatInterval ticks once RepeatDelay has passed.
func shouldRepeat(held int) bool {
	if held == 1 {
		return true
	}
	if held <= cfg.Scroll.RepeatDelay || cfg.Scroll.RepeatInterval <= 0 {
		return false
	}
	return (held-cfg.Scroll.RepeatDelay)%cfg.Scroll.RepeatInterval == 0
}

// getAnalogStickState reads the left stick's vertical axis from all gamepads
// and returns the strongest deflection past the deadzone, in [-1, 1].
func getAnalogStickState(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	var strongest float64

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(vertical) > deadzone && math.Abs(vertical) > math.Abs(strongest) {
			strongest = vertical
		}
	}
	return strongest
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
