package assets

import "testing"

func TestIconsRegistered(t *testing.T) {
	for _, name := range []string{"crosshair", "zap", "wind", "flame", "mouse"} {
		ic, ok := IconByName(name)
		if !ok {
			t.Errorf("icon %q missing", name)
			continue
		}
		min, max := ic.Bounds()
		if min.X < 0 || min.Y < 0 || max.X > IconGrid || max.Y > IconGrid {
			t.Errorf("%s exceeds the grid: %v..%v", name, min, max)
		}
	}
	if _, ok := IconByName("rocket"); ok {
		t.Error("unknown icon found")
	}
}

func TestArcEndpoints(t *testing.T) {
	s := arc(12, 12, 10, 0, 180)
	first, last := s.Points[0], s.Points[len(s.Points)-1]
	if abs(first.X-22) > 1e-9 || abs(first.Y-12) > 1e-9 {
		t.Errorf("arc starts at %v", first)
	}
	if abs(last.X-2) > 1e-9 || abs(last.Y-12) > 1e-9 {
		t.Errorf("arc ends at %v", last)
	}
	mid := s.Points[len(s.Points)/2]
	if mid.Y <= 12 {
		t.Errorf("arc through 90 degrees should pass below the center, got %v", mid)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
