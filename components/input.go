package components

import (
	cfg "github.com/automoto/cinescroll/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	HeldTicks       [cfg.ActionCount]int  // Ticks the action has been held, for key repeat
	LastInputMethod InputMethod           // Most recently used input method

	// ScrollDelta accumulates every scroll event of the tick in logical pixels.
	// UpdateScroll consumes and zeroes it.
	ScrollDelta float64
	// Jump requests an absolute position: -1 top, +1 bottom, 0 none.
	Jump int
}

var Input = donburi.NewComponentType[InputData]()
