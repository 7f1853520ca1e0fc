package motion

import (
	"math"
	"testing"
)

func defaultSpring() SpringParams {
	return SpringParams{Stiffness: 100, Damping: 30, Mass: 1, RestDelta: 0.001, FPS: 60}
}

func TestSpringParams(t *testing.T) {
	p := defaultSpring()
	if got := p.AngularFrequency(); math.Abs(got-10) > 1e-12 {
		t.Errorf("AngularFrequency = %v, want 10", got)
	}
	if got := p.DampingRatio(); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("DampingRatio = %v, want 1.5", got)
	}
}

func TestSmootherConvergesWithoutOvershoot(t *testing.T) {
	s := NewSmoother(defaultSpring())
	s.SetTarget(1)

	const maxTicks = 240
	prev := 0.0
	for tick := 1; tick <= maxTicks; tick++ {
		p := s.Step()
		if p > 1+1e-9 {
			t.Fatalf("tick %d: overshoot to %v", tick, p)
		}
		if p < prev-1e-12 {
			t.Fatalf("tick %d: moved backwards from %v to %v", tick, prev, p)
		}
		prev = p
		if s.AtRest() {
			if s.Position() != 1 {
				t.Fatalf("settled at %v, want 1", s.Position())
			}
			t.Logf("settled after %d ticks", tick)
			return
		}
	}
	t.Fatalf("spring not settled after %d ticks (pos=%v vel=%v)", maxTicks, s.Position(), s.Velocity())
}

func TestSmootherSkipsWhenResting(t *testing.T) {
	s := NewSmoother(defaultSpring())
	s.Jump(0.4)
	for i := 0; i < 10; i++ {
		if got := s.Step(); got != 0.4 {
			t.Fatalf("resting spring moved to %v", got)
		}
	}
	s.SetTarget(0.4)
	if !s.AtRest() {
		t.Errorf("same target woke the spring")
	}
	s.SetTarget(0.2)
	if s.AtRest() {
		t.Errorf("new target did not wake the spring")
	}
	if got := s.Step(); got >= 0.4 {
		t.Errorf("spring did not move toward lower target: %v", got)
	}
}

func TestSmootherRetarget(t *testing.T) {
	s := NewSmoother(defaultSpring())
	s.SetTarget(1)
	for i := 0; i < 20; i++ {
		s.Step()
	}
	s.SetTarget(0)
	for i := 0; i < 600 && !s.AtRest(); i++ {
		s.Step()
	}
	if !s.AtRest() || s.Position() != 0 {
		t.Errorf("spring did not settle back to 0: pos=%v", s.Position())
	}
	if s.Clamped() != 0 {
		t.Errorf("Clamped = %v", s.Clamped())
	}
}
