package timeline

import (
	"fmt"
	"strings"
)

// Align is where a scene anchors its composition horizontally.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return AlignCenter, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	}
	return AlignCenter, fmt.Errorf("unknown alignment %q", s)
}

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return "center"
}

// Effective collapses left/right to center on narrow viewports.
func (a Align) Effective(viewportWidth, compactWidth float64) Align {
	if viewportWidth < compactWidth {
		return AlignCenter
	}
	return a
}

// Origin is the horizontal transform origin (0 left edge, 0.5 center, 1 right edge)
// used by the divider wipe.
func (a Align) Origin() float64 {
	switch a {
	case AlignLeft:
		return 0
	case AlignRight:
		return 1
	}
	return 0.5
}
