package frames

import (
	"context"
	"errors"
	"image"
	"log"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/sync/errgroup"
)

var ErrClosed = errors.New("frame loader closed")

// Settlement is the outcome of one fetch.
type Settlement struct {
	Index int
	Image image.Image
	Err   error
}

// Options tune a Loader. Zero values pick defaults.
type Options struct {
	// Concurrency caps outstanding fetches; 0 sizes it from the CPU count.
	Concurrency int
	// OnSettle runs on the draining goroutine after a slot is written.
	OnSettle func(Settlement)
	// OnProgress receives the load percentage after every settlement.
	OnProgress func(percent int)
	// OnReady fires once when every slot has settled.
	OnReady func()
	// AvailableMemory reports free memory in bytes; defaults to gopsutil.
	AvailableMemory func() (uint64, error)
}

// Loader fans out one fetch per slot and joins them by counting
// settlements. Fetches run concurrently; results are applied only from
// Drain so the Sequence keeps a single writer.
type Loader struct {
	seq     *Sequence
	fetcher Fetcher
	opts    Options

	results chan Settlement
	cancel  context.CancelFunc
	group   *errgroup.Group
	fed     chan struct{}

	started   bool
	closed    bool
	ready     bool
	memWarned bool
}

func NewLoader(seq *Sequence, fetcher Fetcher, opts Options) *Loader {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency()
	}
	if opts.AvailableMemory == nil {
		opts.AvailableMemory = availableMemory
	}
	return &Loader{
		seq:     seq,
		fetcher: fetcher,
		opts:    opts,
		results: make(chan Settlement, seq.Len()),
	}
}

func defaultConcurrency() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		n = runtime.NumCPU()
	}
	// decoding is CPU bound, reading is not
	return n * 2
}

func availableMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// Start issues every fetch. It returns immediately; the pool is fed from a
// separate goroutine so a small concurrency limit never blocks the caller.
func (l *Loader) Start(ctx context.Context) error {
	if l.closed {
		return ErrClosed
	}
	if l.started {
		return nil
	}
	l.started = true

	ctx, l.cancel = context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.Concurrency)
	l.group = g

	l.fed = make(chan struct{})
	n := l.seq.Len()
	go func() {
		defer close(l.fed)
		for i := 0; i < n; i++ {
			if gctx.Err() != nil {
				return
			}
			index := i
			g.Go(func() error {
				img, err := l.fetcher.Fetch(gctx, index)
				select {
				case l.results <- Settlement{Index: index, Image: img, Err: err}:
				case <-gctx.Done():
				}
				// a failed frame never aborts its siblings
				return nil
			})
		}
	}()
	return nil
}

// Drain applies every settlement received since the last call and returns
// how many were applied. It must be called from the goroutine that reads
// the Sequence.
func (l *Loader) Drain() int {
	if l.closed {
		return 0
	}
	if l.started && l.seq.Len() == 0 && !l.ready {
		l.markReady()
		return 0
	}

	applied := 0
	for {
		select {
		case s := <-l.results:
			if l.apply(s) {
				applied++
			}
		default:
			return applied
		}
	}
}

func (l *Loader) apply(s Settlement) bool {
	if !l.seq.Settle(s.Index, s.Image, s.Err) {
		return false
	}
	if s.Err != nil {
		log.Printf("Warning: frame %d failed to load: %v", s.Index, s.Err)
	} else if !l.memWarned {
		l.checkMemory(s.Index)
	}

	if l.opts.OnSettle != nil {
		l.opts.OnSettle(s)
	}
	if l.opts.OnProgress != nil {
		l.opts.OnProgress(l.seq.Percent())
	}
	if l.seq.Complete() {
		l.markReady()
	}
	return true
}

func (l *Loader) markReady() {
	if l.ready {
		return
	}
	l.ready = true
	if l.seq.Loaded() == 0 && l.seq.Len() > 0 {
		log.Printf("Warning: none of the %d frames could be loaded", l.seq.Len())
	}
	if l.opts.OnReady != nil {
		l.opts.OnReady()
	}
}

// checkMemory estimates the decoded footprint from the first frame and
// warns when it would take more than half of the available memory.
func (l *Loader) checkMemory(index int) {
	l.memWarned = true
	w, h, ok := l.seq.Dimensions(index)
	if !ok {
		return
	}
	avail, err := l.opts.AvailableMemory()
	if err != nil || avail == 0 {
		return
	}
	need := uint64(l.seq.Len()) * uint64(w) * uint64(h) * 4
	if need > avail/2 {
		log.Printf("Warning: %d frames of %dx%d need ~%d MiB, only %d MiB available",
			l.seq.Len(), w, h, need>>20, avail>>20)
	}
}

// Ready reports whether the join has fired.
func (l *Loader) Ready() bool {
	return l.ready
}

func (l *Loader) Percent() int {
	return l.seq.Percent()
}

func (l *Loader) Sequence() *Sequence {
	return l.seq
}

// Close cancels outstanding fetches. Settlements arriving afterwards are
// dropped and Drain becomes a no-op.
func (l *Loader) Close() {
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
}

// Wait blocks until every fetch goroutine has returned. Used by tests and
// headless tools; the game loop only ever calls Drain.
func (l *Loader) Wait() {
	if l.group == nil {
		return
	}
	<-l.fed
	_ = l.group.Wait()
}
