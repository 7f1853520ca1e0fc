package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringParams describes a damped spring in the stiffness/damping/mass
// form used by web animation libraries.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	RestDelta float64 // position and velocity threshold under which the spring is settled
	FPS       int     // integration rate, one Step per tick
}

// AngularFrequency returns sqrt(k/m).
func (p SpringParams) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.mass())
}

// DampingRatio returns c / (2*sqrt(k*m)). Values above 1 never overshoot.
func (p SpringParams) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.mass()))
}

func (p SpringParams) mass() float64 {
	if p.Mass <= 0 {
		return 1
	}
	return p.Mass
}

// Smoother filters a raw progress signal through a damped spring. It is
// stepped once per display tick by a single owner.
type Smoother struct {
	spring  harmonica.Spring
	rest    float64
	pos     float64
	vel     float64
	target  float64
	resting bool
}

func NewSmoother(p SpringParams) *Smoother {
	fps := p.FPS
	if fps <= 0 {
		fps = 60
	}
	rest := p.RestDelta
	if rest <= 0 {
		rest = 0.001
	}
	return &Smoother{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), p.AngularFrequency(), p.DampingRatio()),
		rest:    rest,
		resting: true,
	}
}

// SetTarget moves the equilibrium point. Integration resumes on the next Step.
func (s *Smoother) SetTarget(target float64) {
	if target == s.target {
		return
	}
	s.target = target
	s.resting = false
}

// Jump places the spring at rest on p.
func (s *Smoother) Jump(p float64) {
	s.pos, s.target, s.vel = p, p, 0
	s.resting = true
}

// Step advances one tick and returns the new position. A settled spring is
// not integrated at all.
func (s *Smoother) Step() float64 {
	if s.resting {
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.target-s.pos) < s.rest && math.Abs(s.vel) < s.rest {
		s.pos = s.target
		s.vel = 0
		s.resting = true
	}
	return s.pos
}

func (s *Smoother) Position() float64 { return s.pos }
func (s *Smoother) Velocity() float64 { return s.vel }
func (s *Smoother) Target() float64   { return s.target }
func (s *Smoother) AtRest() bool      { return s.resting }

// Clamped is the position limited to [0,1] for consumers that index by it.
func (s *Smoother) Clamped() float64 {
	return Clamp01(s.pos)
}
