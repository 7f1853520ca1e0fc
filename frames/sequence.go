// Package frames owns the fixed-length frame sequence and the loader that
// fills it.
package frames

import (
	"image"
	"math"
)

// SlotState is the lifecycle of one frame slot.
type SlotState int

const (
	Pending SlotState = iota
	Loaded
	Failed
)

func (s SlotState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "pending"
}

// Slot is one frame of the sequence. Image is set only when Loaded.
type Slot struct {
	State  SlotState
	Width  int
	Height int
	Image  image.Image
}

// Sequence is an ordered set of N write-once slots.
type Sequence struct {
	slots   []Slot
	settled int
	loaded  int
}

func NewSequence(n int) *Sequence {
	if n < 0 {
		n = 0
	}
	return &Sequence{slots: make([]Slot, n)}
}

func (s *Sequence) Len() int {
	return len(s.slots)
}

// Settle records the outcome of slot i. It returns false when i is out of
// range or the slot already settled; the first settlement wins.
func (s *Sequence) Settle(i int, img image.Image, err error) bool {
	if i < 0 || i >= len(s.slots) || s.slots[i].State != Pending {
		return false
	}
	if err != nil || img == nil {
		s.slots[i] = Slot{State: Failed}
	} else {
		b := img.Bounds()
		s.slots[i] = Slot{State: Loaded, Width: b.Dx(), Height: b.Dy(), Image: img}
		s.loaded++
	}
	s.settled++
	return true
}

// ReleaseImage drops the decoded pixels of slot i once they have been
// copied elsewhere. The slot stays loaded and keeps its dimensions.
func (s *Sequence) ReleaseImage(i int) {
	if i >= 0 && i < len(s.slots) {
		s.slots[i].Image = nil
	}
}

// Slot returns a copy of slot i; out of range indices read as Pending.
func (s *Sequence) Slot(i int) Slot {
	if i < 0 || i >= len(s.slots) {
		return Slot{}
	}
	return s.slots[i]
}

// Dimensions reports the decoded size of slot i when it is loaded.
func (s *Sequence) Dimensions(i int) (w, h int, ok bool) {
	sl := s.Slot(i)
	if sl.State != Loaded {
		return 0, 0, false
	}
	return sl.Width, sl.Height, true
}

// NearestLoaded finds the closest loaded slot to i, preferring earlier frames.
func (s *Sequence) NearestLoaded(i int) (int, bool) {
	if s.loaded == 0 {
		return 0, false
	}
	for d := 0; d < len(s.slots); d++ {
		if j := i - d; j >= 0 && j < len(s.slots) && s.slots[j].State == Loaded {
			return j, true
		}
		if j := i + d; j >= 0 && j < len(s.slots) && s.slots[j].State == Loaded {
			return j, true
		}
	}
	return 0, false
}

func (s *Sequence) Settled() int { return s.settled }
func (s *Sequence) Loaded() int  { return s.loaded }
func (s *Sequence) Failed() int  { return s.settled - s.loaded }

// Percent is the settled share as a whole percentage. Failures count.
func (s *Sequence) Percent() int {
	if len(s.slots) == 0 {
		return 100
	}
	return int(math.Round(float64(s.settled) / float64(len(s.slots)) * 100))
}

// Complete reports whether every slot has settled.
func (s *Sequence) Complete() bool {
	return s.settled == len(s.slots)
}
