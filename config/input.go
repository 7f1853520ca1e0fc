package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical scroll action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLineDown
	ActionLineUp
	ActionPageDown
	ActionPageUp
	ActionHome
	ActionEnd
	ActionFullscreen
	ActionDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Logical pixels per tick at full stick deflection
	AnalogSpeed float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		AnalogSpeed:    24,
		Bindings: map[ActionID]InputBinding{
			ActionLineDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyJ},
				// D-pad Down (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionLineUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyK},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionPageDown: {
				Keys: []ebiten.Key{ebiten.KeyPageDown, ebiten.KeySpace},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionPageUp: {
				Keys: []ebiten.Key{ebiten.KeyPageUp},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionHome: {
				Keys: []ebiten.Key{ebiten.KeyHome},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionEnd: {
				Keys: []ebiten.Key{ebiten.KeyEnd},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11, ebiten.KeyF},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
