// Package surface keeps a density-aware drawing surface in sync with the
// viewport and draws the selected frame into it with cover-fit.
package surface

import "math"

// Viewport is the logical size of the drawing area plus the device pixel
// ratio.
type Viewport struct {
	Width   float64
	Height  float64
	Density float64
}

// Normalized returns v with a usable density and non-negative size.
func (v Viewport) Normalized() Viewport {
	if math.IsNaN(v.Density) || math.IsInf(v.Density, 0) || v.Density < 1 {
		v.Density = 1
	}
	if math.IsNaN(v.Width) || v.Width < 0 {
		v.Width = 0
	}
	if math.IsNaN(v.Height) || v.Height < 0 {
		v.Height = 0
	}
	return v
}

// BackingSize is the physical pixel size of the backing store.
func (v Viewport) BackingSize() (w, h int) {
	v = v.Normalized()
	return int(math.Ceil(v.Width * v.Density)), int(math.Ceil(v.Height * v.Density))
}

// Empty reports a viewport with no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Landscape reports whether the viewport is wider than tall.
func (v Viewport) Landscape() bool {
	return v.Width > v.Height
}
