package motion

import "math"

// Rect is a draw rectangle in logical units.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Scale returns the horizontal and vertical factors that stretch an
// iw x ih source onto r.
func (r Rect) Scale(iw, ih float64) (sx, sy float64) {
	if iw <= 0 || ih <= 0 {
		return 0, 0
	}
	return r.W / iw, r.H / ih
}

// CoverFit places an iw x ih image so that it fills a vw x vh viewport,
// preserving aspect ratio and cropping the overflow evenly on both sides.
func CoverFit(iw, ih, vw, vh float64) Rect {
	if iw <= 0 || ih <= 0 || vw <= 0 || vh <= 0 {
		return Rect{}
	}
	scale := math.Max(vw/iw, vh/ih)
	dw := iw * scale
	dh := ih * scale
	return Rect{
		X: (vw - dw) / 2,
		Y: (vh - dh) / 2,
		W: dw,
		H: dh,
	}
}
