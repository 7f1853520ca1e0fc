package surface

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/cinescroll/motion"
)

type draw struct {
	index int
	dst   motion.Rect
}

type fakeBackend struct {
	fail      bool
	allocs    [][2]int
	scales    []float64
	clears    int
	draws     []draw
	allocated bool
}

func (b *fakeBackend) Allocate(w, h int) bool {
	b.allocs = append(b.allocs, [2]int{w, h})
	b.allocated = !b.fail && w > 0 && h > 0
	// a fresh store has no transform
	b.scales = b.scales[:0]
	return b.allocated
}

func (b *fakeBackend) SetScale(d float64) { b.scales = append(b.scales, d) }
func (b *fakeBackend) Clear()             { b.clears++ }
func (b *fakeBackend) DrawFrame(i int, dst motion.Rect) {
	if !b.allocated {
		panic("draw without context")
	}
	b.draws = append(b.draws, draw{i, dst})
}

func (b *fakeBackend) last() draw {
	if len(b.draws) == 0 {
		return draw{index: -1}
	}
	return b.draws[len(b.draws)-1]
}

type fakeSource struct {
	n      int
	loaded map[int][2]int
}

func newSource(n int, loaded ...int) *fakeSource {
	s := &fakeSource{n: n, loaded: map[int][2]int{}}
	for _, i := range loaded {
		s.loaded[i] = [2]int{1920, 1080}
	}
	return s
}

func (s *fakeSource) Len() int { return s.n }
func (s *fakeSource) Dimensions(i int) (int, int, bool) {
	d, ok := s.loaded[i]
	return d[0], d[1], ok
}
func (s *fakeSource) NearestLoaded(i int) (int, bool) {
	for d := 0; d < s.n; d++ {
		if _, ok := s.loaded[i-d]; ok && i-d >= 0 {
			return i - d, true
		}
		if _, ok := s.loaded[i+d]; ok && i+d < s.n {
			return i + d, true
		}
	}
	return 0, false
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func setup(vp *Viewport, src *fakeSource) (*Renderer, *fakeBackend, *fakeClock) {
	b := &fakeBackend{}
	clk := &fakeClock{now: time.Unix(0, 0)}
	r := NewRenderer(b, src, func() Viewport { return *vp }, Options{Now: clk.Now})
	return r, b, clk
}

func TestViewportNormalized(t *testing.T) {
	tests := []struct {
		in   Viewport
		want float64
	}{
		{Viewport{100, 100, 2}, 2},
		{Viewport{100, 100, 0.5}, 1},
		{Viewport{100, 100, 0}, 1},
		{Viewport{100, 100, math.NaN()}, 1},
	}
	for _, tt := range tests {
		if got := tt.in.Normalized().Density; got != tt.want {
			t.Errorf("%+v density = %v, want %v", tt.in, got, tt.want)
		}
	}
	w, h := Viewport{Width: 390.5, Height: 844, Density: 3}.BackingSize()
	if w != 1172 || h != 2532 {
		t.Errorf("backing size = %dx%d", w, h)
	}
}

func TestRendererDensity(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720, Density: 2}
	r, b, _ := setup(&vp, newSource(168, 0))
	r.Resize()

	if len(b.allocs) != 1 || b.allocs[0] != [2]int{2560, 1440} {
		t.Fatalf("allocs = %v", b.allocs)
	}
	if len(b.scales) != 1 || b.scales[0] != 2 {
		t.Errorf("scales = %v", b.scales)
	}

	vp.Density = 1
	r.Resize()
	if b.allocs[1] != [2]int{1280, 720} || len(b.scales) != 1 || b.scales[0] != 1 {
		t.Errorf("after density change allocs=%v scales=%v", b.allocs, b.scales)
	}
}

func TestRendererCoverFitDraw(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 1000, Density: 1}
	r, b, _ := setup(&vp, newSource(168, 0, 1))
	r.Resize()

	if !r.Select(1) {
		t.Fatal("loaded frame not drawn")
	}
	got := b.last()
	want := motion.CoverFit(1920, 1080, 1000, 1000)
	if got.index != 1 || got.dst != want {
		t.Errorf("draw = %+v, want index 1 at %+v", got, want)
	}
	if r.Select(1) {
		t.Error("same frame drawn twice")
	}
}

func TestRendererHoldsPreviousFrame(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600, Density: 1}
	src := newSource(168, 40)
	r, b, _ := setup(&vp, src)
	r.Resize()

	r.Select(40)
	if r.Select(41) {
		t.Error("empty slot drew something")
	}
	if idx, _ := r.Drawn(); idx != 40 {
		t.Errorf("drawn = %d, want 40 held", idx)
	}

	src.loaded[41] = [2]int{1920, 1080}
	if !r.Select(41) || b.last().index != 41 {
		t.Error("frame that finished loading was not drawn")
	}
}

func TestRendererFallbackBeforeFirstDraw(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600, Density: 1}
	r, b, _ := setup(&vp, newSource(168, 10, 90))
	r.Resize()

	if !r.Select(50) {
		t.Fatal("nothing drawn with loaded frames available")
	}
	if b.last().index != 10 {
		t.Errorf("fallback drew %d, want nearest earlier 10", b.last().index)
	}

	empty, eb, _ := setup(&vp, newSource(168))
	empty.Resize()
	if empty.Select(3) || len(eb.draws) != 0 {
		t.Error("draw with no loaded frames")
	}
}

func TestRendererResizeRedrawsImmediately(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720, Density: 1}
	r, b, _ := setup(&vp, newSource(168, 7))
	r.Resize()
	r.Select(7)

	vp.Width, vp.Height = 720, 1280
	r.Resize()

	if len(b.draws) != 2 {
		t.Fatalf("draws = %d, want redraw after resize", len(b.draws))
	}
	want := motion.CoverFit(1920, 1080, 720, 1280)
	if b.last().index != 7 || b.last().dst != want {
		t.Errorf("redraw = %+v, want %+v", b.last(), want)
	}
}

func TestRendererUnavailableContext(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600, Density: 1}
	r, b, _ := setup(&vp, newSource(168, 5))
	b.fail = true
	r.Resize()

	if r.Allocated() || r.Select(5) {
		t.Error("draw succeeded without a context")
	}

	b.fail = false
	r.Resize()
	if b.last().index != 5 {
		t.Errorf("requested frame not drawn after recovery: %+v", b.last())
	}
}

func TestRendererZeroViewport(t *testing.T) {
	vp := Viewport{Width: 0, Height: 600, Density: 1}
	r, b, _ := setup(&vp, newSource(168, 5))
	r.Resize()
	if r.Select(5) || len(b.draws) != 0 {
		t.Error("drew into a zero-width viewport")
	}
}

func TestRendererOrientationSettle(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720, Density: 1}
	r, b, clk := setup(&vp, newSource(168, 0))
	r.Resize()
	r.Select(0)

	vp.Width, vp.Height = 720, 1280
	first := r.OrientationChanged()
	if !r.Stale() {
		t.Error("geometry not marked stale")
	}

	clk.Advance(100 * time.Millisecond)
	second := r.OrientationChanged()
	if first.Pending() {
		t.Error("superseded settle still pending")
	}

	clk.Advance(100 * time.Millisecond)
	if r.Tick() {
		t.Error("settle fired before its delay")
	}
	clk.Advance(60 * time.Millisecond)
	if !r.Tick() {
		t.Fatal("settle did not fire")
	}
	if second.Pending() || r.Stale() {
		t.Error("settle still pending after firing")
	}
	if len(b.allocs) != 2 || b.allocs[1] != [2]int{720, 1280} {
		t.Errorf("allocs = %v", b.allocs)
	}
	if r.Tick() {
		t.Error("settle fired twice")
	}
}

func TestRendererCloseCancelsSettle(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720, Density: 1}
	r, b, clk := setup(&vp, newSource(168, 0))
	r.Resize()

	s := r.OrientationChanged()
	r.Close()
	clk.Advance(time.Second)

	if s.Pending() || r.Tick() {
		t.Error("settle survived Close")
	}
	if len(b.allocs) != 1 {
		t.Errorf("allocs after close = %d", len(b.allocs))
	}
	if r.Select(0) {
		t.Error("draw after Close")
	}
}
