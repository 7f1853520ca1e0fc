package timeline

import (
	"errors"
	"testing"
)

func defaultWindows() []Window {
	return []Window{{0.02, 0.20}, {0.25, 0.45}, {0.50, 0.70}, {0.78, 0.96}}
}

func TestSchedulerActive(t *testing.T) {
	s, err := NewScheduler(defaultWindows(), CascadeTiming())
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d", s.Len())
	}

	tests := []struct {
		p    float64
		want []int
	}{
		{0, nil},
		{0.1, []int{0}},
		{0.22, nil},
		{0.45, []int{1}},
		{0.6, []int{2}},
		{0.97, nil},
		{1, nil},
	}
	for _, tt := range tests {
		got := s.Active(tt.p)
		if len(got) != len(tt.want) {
			t.Errorf("Active(%v) = %v, want %v", tt.p, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Active(%v) = %v, want %v", tt.p, got, tt.want)
			}
		}
	}
}

func TestSchedulerGapIsTransparent(t *testing.T) {
	s, _ := NewScheduler(defaultWindows(), CascadeTiming())
	for _, p := range []float64{0, 0.01, 0.21, 0.24, 0.47, 0.75, 0.99} {
		if samples := s.Sample(p); len(samples) != 0 {
			t.Errorf("Sample(%v) returned %d scenes outside every window", p, len(samples))
		}
	}
}

func TestSchedulerOverlap(t *testing.T) {
	s, err := NewScheduler([]Window{{0.1, 0.5}, {0.4, 0.8}}, CascadeTiming())
	if err != nil {
		t.Fatal(err)
	}
	samples := s.Sample(0.45)
	if len(samples) != 2 || samples[0].Scene != 0 || samples[1].Scene != 1 {
		t.Errorf("overlapping windows sample = %+v", samples)
	}

	buf := make([]Sample, 0, 4)
	buf = s.AppendSamples(buf[:0], 0.45)
	if len(buf) != 2 {
		t.Errorf("AppendSamples len = %d", len(buf))
	}
}

func TestSchedulerRejectsBadWindow(t *testing.T) {
	_, err := NewScheduler([]Window{{0.2, 0.1}}, CascadeTiming())
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestAlign(t *testing.T) {
	a, err := ParseAlign("Left")
	if err != nil || a != AlignLeft {
		t.Fatalf("ParseAlign(Left) = %v, %v", a, err)
	}
	if _, err := ParseAlign("diagonal"); err == nil {
		t.Errorf("expected error for unknown alignment")
	}
	if got := AlignRight.Effective(600, 768); got != AlignCenter {
		t.Errorf("narrow viewport kept %v", got)
	}
	if got := AlignRight.Effective(1280, 768); got != AlignRight {
		t.Errorf("wide viewport gave %v", got)
	}
	if AlignLeft.Origin() != 0 || AlignRight.Origin() != 1 || AlignCenter.Origin() != 0.5 {
		t.Errorf("unexpected origins")
	}
}
