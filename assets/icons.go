package assets

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// IconGrid is the side of the square every icon is authored in.
const IconGrid = 24

// Point is a position on the icon grid.
type Point struct{ X, Y float64 }

// Stroke is an open polyline, or a circle when Radius > 0.
type Stroke struct {
	Points []Point
	Center Point
	Radius float64
}

// Icon is a line drawing on a 24x24 grid.
type Icon struct {
	Name    string
	Strokes []Stroke
}

var icons = map[string]Icon{}

func registerIcon(name string, strokes ...Stroke) Icon {
	ic := Icon{Name: name, Strokes: strokes}
	icons[name] = ic
	return ic
}

var (
	Crosshair = registerIcon("crosshair",
		circle(12, 12, 10),
		line(22, 12, 18, 12),
		line(6, 12, 2, 12),
		line(12, 6, 12, 2),
		line(12, 22, 12, 18),
	)
	Zap = registerIcon("zap",
		poly(4, 14, 13, 3, 11, 10, 20, 10, 11, 21, 13, 14, 4, 14),
	)
	Wind = registerIcon("wind",
		join(poly(2, 8, 11, 8), arc(11, 6, 2, 90, -150)),
		join(poly(2, 12, 19.5, 12), arc(19.5, 9.5, 2.5, 90, -150)),
		join(poly(2, 16, 14, 16), arc(14, 18, 2, -90, 150)),
	)
	Flame = registerIcon("flame",
		join(
			poly(8.5, 14.5, 10.3, 13.6, 11, 12, 10.5, 10, 10, 9, 9.6, 6.5, 12, 3,
				13.2, 6, 16, 9, 19, 12, 19, 14.5),
			arc(12, 14.5, 7, 0, 180),
			poly(5, 14.5, 5.3, 13, 6, 11.5, 6.6, 13.5, 8.5, 14.5),
		),
	)
	Mouse = registerIcon("mouse",
		join(
			arc(12, 9, 7, 180, 360),
			poly(19, 9, 19, 15),
			arc(12, 15, 7, 0, 180),
			poly(5, 15, 5, 9),
		),
		line(12, 6, 12, 10),
	)
)

// IconByName looks up a registered icon.
func IconByName(name string) (Icon, bool) {
	ic, ok := icons[name]
	return ic, ok
}

func line(x0, y0, x1, y1 float64) Stroke {
	return poly(x0, y0, x1, y1)
}

func poly(xy ...float64) Stroke {
	pts := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, Point{xy[i], xy[i+1]})
	}
	return Stroke{Points: pts}
}

func circle(cx, cy, r float64) Stroke {
	return Stroke{Center: Point{cx, cy}, Radius: r}
}

// arc samples a circular arc from a0 to a1 degrees, screen orientation
// (0 is +x, 90 is +y).
func arc(cx, cy, r, a0, a1 float64) Stroke {
	steps := int(math.Ceil(math.Abs(a1-a0) / 15))
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := (a0 + (a1-a0)*float64(i)/float64(steps)) * math.Pi / 180
		pts = append(pts, Point{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return Stroke{Points: pts}
}

func join(parts ...Stroke) Stroke {
	var pts []Point
	for _, p := range parts {
		pts = append(pts, p.Points...)
	}
	return Stroke{Points: pts}
}

// Bounds returns the extent of the icon on its grid.
func (ic Icon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	grow := func(p Point) {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	for _, s := range ic.Strokes {
		if s.Radius > 0 {
			grow(Point{s.Center.X - s.Radius, s.Center.Y - s.Radius})
			grow(Point{s.Center.X + s.Radius, s.Center.Y + s.Radius})
			continue
		}
		for _, p := range s.Points {
			grow(p)
		}
	}
	return min, max
}

// DrawIcon strokes ic into a size x size box whose top-left is (x, y).
// strokeWidth is in grid units like the 24px source drawings.
func DrawIcon(dst *ebiten.Image, ic Icon, x, y, size, strokeWidth float64, clr color.Color) {
	k := size / IconGrid
	w := float32(strokeWidth * k)
	for _, s := range ic.Strokes {
		if s.Radius > 0 {
			vector.StrokeCircle(dst,
				float32(x+s.Center.X*k), float32(y+s.Center.Y*k), float32(s.Radius*k),
				w, clr, true)
			continue
		}
		for i := 1; i < len(s.Points); i++ {
			a, b := s.Points[i-1], s.Points[i]
			vector.StrokeLine(dst,
				float32(x+a.X*k), float32(y+a.Y*k), float32(x+b.X*k), float32(y+b.Y*k),
				w, clr, true)
		}
		// round the joints
		for i := 1; i+1 < len(s.Points); i++ {
			p := s.Points[i]
			vector.FillCircle(dst, float32(x+p.X*k), float32(y+p.Y*k), w/2, clr, true)
		}
	}
}
