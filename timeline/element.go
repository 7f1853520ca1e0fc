package timeline

import "github.com/automoto/cinescroll/motion"

// Element identifies one of the staggered parts of a scene overlay.
type Element int

const (
	Icon Element = iota
	Title
	Divider
	Subtitle
	ElementCount // Must be last - used for array sizing
)

func (e Element) String() string {
	switch e {
	case Icon:
		return "icon"
	case Title:
		return "title"
	case Divider:
		return "divider"
	case Subtitle:
		return "subtitle"
	}
	return "unknown"
}

// ElementState is the sampled look of an element at one progress value.
type ElementState struct {
	Opacity float64
	OffsetY float64 // logical pixels, positive = below the resting position
	Scale   float64 // uniform scale (icon)
	ScaleX  float64 // horizontal scale from the alignment origin (divider)
}

// Visible reports whether the element needs drawing at all.
func (s ElementState) Visible() bool {
	return s.Opacity > 0
}

// ElementTimeline holds one curve per animated attribute. Empty Scale and
// ScaleX curves mean the attribute is not animated and stays at 1.
type ElementTimeline struct {
	Opacity motion.Curve
	OffsetY motion.Curve
	Scale   motion.Curve
	ScaleX  motion.Curve
}

// At samples every attribute at progress p.
func (t ElementTimeline) At(p float64) ElementState {
	return ElementState{
		Opacity: motion.Clamp01(t.Opacity.At(p)),
		OffsetY: t.OffsetY.At(p),
		Scale:   valueOr(t.Scale, p, 1),
		ScaleX:  valueOr(t.ScaleX, p, 1),
	}
}

func valueOr(c motion.Curve, p, fallback float64) float64 {
	if len(c.Keys) == 0 {
		return fallback
	}
	return c.At(p)
}
