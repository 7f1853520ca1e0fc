package surface

import (
	"log"
	"time"

	"github.com/automoto/cinescroll/motion"
)

// DefaultSettleDelay is how long an orientation change is left to settle
// before the viewport is measured again.
const DefaultSettleDelay = 150 * time.Millisecond

// FrameSource is the read side of the frame sequence.
type FrameSource interface {
	Len() int
	Dimensions(index int) (w, h int, ok bool)
	NearestLoaded(index int) (int, bool)
}

// Backend is the drawing context. Allocate sizes the backing store in
// physical pixels and reports whether a context is available; SetScale
// maps logical units onto it. DrawFrame receives logical coordinates.
type Backend interface {
	Allocate(w, h int) bool
	SetScale(density float64)
	Clear()
	DrawFrame(index int, dst motion.Rect)
}

type Options struct {
	SettleDelay time.Duration
	Now         func() time.Time
}

// Settle is the handle of a scheduled re-measure.
type Settle struct {
	due       time.Time
	cancelled bool
	fired     bool
}

// Cancel stops the re-measure if it has not fired yet.
func (s *Settle) Cancel() {
	if s != nil {
		s.cancelled = true
	}
}

// Pending reports whether the re-measure is still scheduled.
func (s *Settle) Pending() bool {
	return s != nil && !s.cancelled && !s.fired
}

// Renderer draws frames of a FrameSource through a Backend.
type Renderer struct {
	backend Backend
	source  FrameSource
	measure func() Viewport
	opts    Options

	viewport  Viewport
	allocated bool
	stale     bool

	drawn  int
	wanted int
	settle *Settle
	closed bool
}

func NewRenderer(backend Backend, source FrameSource, measure func() Viewport, opts Options) *Renderer {
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Renderer{
		backend: backend,
		source:  source,
		measure: measure,
		opts:    opts,
		drawn:   -1,
		wanted:  -1,
	}
}

// Resize re-measures the viewport, reallocates the backing store and
// redraws the last drawn frame.
func (r *Renderer) Resize() {
	if r.closed {
		return
	}
	r.stale = false
	r.viewport = r.measure().Normalized()

	w, h := r.viewport.BackingSize()
	r.allocated = !r.viewport.Empty() && r.backend.Allocate(w, h)
	if !r.allocated {
		log.Printf("Warning: drawing surface unavailable at %dx%d", w, h)
		return
	}
	// allocation resets any transform on the context
	r.backend.SetScale(r.viewport.Density)

	index := r.drawn
	if index < 0 {
		index = r.wanted
	}
	r.drawn = -1
	if index >= 0 {
		r.Select(index)
	}
}

// Select requests frame index. A loaded frame different from the one on
// screen is drawn. An empty slot keeps the previous image, or falls back to
// the nearest loaded frame when nothing has been drawn yet. It reports
// whether anything was drawn.
func (r *Renderer) Select(index int) bool {
	if r.closed {
		return false
	}
	n := r.source.Len()
	if n == 0 {
		return false
	}
	if index < 0 {
		index = 0
	} else if index >= n {
		index = n - 1
	}
	r.wanted = index
	if !r.allocated {
		return false
	}

	if _, _, ok := r.source.Dimensions(index); !ok {
		if r.drawn >= 0 {
			return false
		}
		nearest, found := r.source.NearestLoaded(index)
		if !found {
			return false
		}
		index = nearest
	}
	if index == r.drawn {
		return false
	}
	return r.draw(index)
}

// Redraw repaints the current frame, e.g. after the backing store was lost.
func (r *Renderer) Redraw() bool {
	if r.closed || !r.allocated || r.drawn < 0 {
		return false
	}
	return r.draw(r.drawn)
}

func (r *Renderer) draw(index int) bool {
	iw, ih, ok := r.source.Dimensions(index)
	if !ok {
		return false
	}
	dst := motion.CoverFit(float64(iw), float64(ih), r.viewport.Width, r.viewport.Height)
	if dst.Empty() {
		return false
	}
	r.backend.Clear()
	r.backend.DrawFrame(index, dst)
	r.drawn = index
	return true
}

// OrientationChanged marks the geometry stale and schedules a re-measure
// once the layout has settled. A newer notification supersedes an older
// one.
func (r *Renderer) OrientationChanged() *Settle {
	if r.closed {
		return nil
	}
	r.settle.Cancel()
	r.stale = true
	r.settle = &Settle{due: r.opts.Now().Add(r.opts.SettleDelay)}
	return r.settle
}

// Tick fires a due re-measure. It reports whether one ran.
func (r *Renderer) Tick() bool {
	if r.closed || !r.settle.Pending() {
		return false
	}
	if r.opts.Now().Before(r.settle.due) {
		return false
	}
	r.settle.fired = true
	r.settle = nil
	r.Resize()
	return true
}

// Close invalidates any scheduled re-measure and turns every later call
// into a no-op.
func (r *Renderer) Close() {
	r.settle.Cancel()
	r.settle = nil
	r.closed = true
}

func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Drawn returns the frame currently on the surface.
func (r *Renderer) Drawn() (int, bool) {
	return r.drawn, r.drawn >= 0
}

// Allocated reports whether the last allocation succeeded.
func (r *Renderer) Allocated() bool {
	return r.allocated
}

// Stale reports a pending orientation re-measure.
func (r *Renderer) Stale() bool {
	return r.stale
}
