package timeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/cinescroll/motion"
)

var ErrInvalidWindow = errors.New("invalid scene window")

// Window is the progress range a scene occupies.
type Window struct {
	Start float64
	End   float64
}

// Validate enforces 0 <= Start < End <= 1.
func (w Window) Validate() error {
	if math.IsNaN(w.Start) || math.IsNaN(w.End) || w.Start < 0 || w.End > 1 || w.Start >= w.End {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidWindow, w.Start, w.End)
	}
	return nil
}

// Contains reports whether p falls inside the closed window.
func (w Window) Contains(p float64) bool {
	return p >= w.Start && p <= w.End
}

func (w Window) Duration() float64 {
	return w.End - w.Start
}

// SceneTimeline is the full set of element curves for one scene.
type SceneTimeline struct {
	Window   Window
	Elements [ElementCount]ElementTimeline
}

// Build lays out the element curves of a scene occupying [start, end].
func Build(start, end float64, tm Timing) SceneTimeline {
	w := Window{Start: start, End: end}
	unit := w.Duration()
	if tm.Absolute {
		unit = 1
		// squeeze fixed-length ramps into windows too short to hold them
		if need := tm.span(); need*unit > w.Duration() {
			unit = w.Duration() / need
		}
	}
	holdEnd := end - tm.Trailing*unit

	st := SceneTimeline{Window: w}
	for i, stage := range tm.Stages {
		fadeStart := motion.Clamp(holdEnd-stage.FadeLead*unit, start, end)
		inStart := motion.Clamp(start+stage.Delay*unit, start, fadeStart)
		inEnd := motion.Clamp(inStart+stage.Ramp*unit, inStart, fadeStart)

		et := ElementTimeline{
			Opacity: motion.NewCurve(
				motion.Keyframe{At: start, Value: 0},
				motion.Keyframe{At: inStart, Value: 0},
				motion.Keyframe{At: inEnd, Value: 1},
				motion.Keyframe{At: fadeStart, Value: 1},
				motion.Keyframe{At: end, Value: 0},
			),
			OffsetY: motion.NewCurve(
				motion.Keyframe{At: inStart, Value: stage.FromOffset},
				motion.Keyframe{At: inEnd, Value: 0},
				motion.Keyframe{At: fadeStart, Value: 0},
				motion.Keyframe{At: end, Value: stage.ExitOffset},
			),
		}
		if stage.FromScale > 0 {
			et.Scale = motion.NewCurve(
				motion.Keyframe{At: inStart, Value: stage.FromScale},
				motion.Keyframe{At: inEnd, Value: 1},
			)
		}
		if stage.Wipe {
			et.ScaleX = motion.NewCurve(
				motion.Keyframe{At: inStart, Value: 0},
				motion.Keyframe{At: inEnd, Value: 1},
			)
		}
		st.Elements[i] = et
	}
	return st
}

// span is the longest entry plus the exit tail, in timing units.
func (tm Timing) span() float64 {
	longest := 0.0
	for _, st := range tm.Stages {
		longest = math.Max(longest, st.Delay+st.Ramp+st.FadeLead)
	}
	return longest + tm.Trailing
}

// At samples all elements. Outside the window every element is transparent.
func (s SceneTimeline) At(p float64) [ElementCount]ElementState {
	var out [ElementCount]ElementState
	for i, et := range s.Elements {
		out[i] = et.At(p)
	}
	return out
}
