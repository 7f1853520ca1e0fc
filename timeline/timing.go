package timeline

// Stage describes how one element enters and leaves a scene window.
// Delay, Ramp and FadeLead are fractions of the window duration unless the
// owning Timing is Absolute, in which case they are progress units.
type Stage struct {
	Delay      float64 // entry start after the window start
	Ramp       float64 // entry duration
	FadeLead   float64 // how much earlier than the shared tail this element starts fading
	FromOffset float64 // vertical offset at entry start
	ExitOffset float64 // vertical offset reached at the window end
	FromScale  float64 // uniform scale at entry start, 0 = not animated
	Wipe       bool    // animate horizontal scale 0->1 during entry
}

// Timing configures a whole scene cascade.
type Timing struct {
	Trailing float64 // length of the shared fade-out tail before the window end
	Absolute bool
	Stages   [ElementCount]Stage
}

// CascadeTiming staggers icon, title, divider and subtitle so they reveal
// one after another and fade out together.
func CascadeTiming() Timing {
	return Timing{
		Trailing: 0.14,
		Stages: [ElementCount]Stage{
			Icon: {
				Delay:      0,
				Ramp:       0.07,
				FadeLead:   0.04,
				FromOffset: 12,
				ExitOffset: -8,
				FromScale:  0.5,
			},
			Title: {
				Delay:      0.04,
				Ramp:       0.12,
				FromOffset: 40,
				ExitOffset: -40,
			},
			Divider: {
				Delay: 0.12,
				Ramp:  0.12,
				Wipe:  true,
			},
			Subtitle: {
				Delay:      0.16,
				Ramp:       0.16,
				FromOffset: 24,
				ExitOffset: -24,
			},
		},
	}
}

// SimpleTiming fades the whole composition in and out as one block over a
// fixed 0.03 progress, sliding 40px up.
func SimpleTiming() Timing {
	stage := Stage{Ramp: 0.03, FromOffset: 40, ExitOffset: -40}
	tm := Timing{Trailing: 0.03, Absolute: true}
	for i := range tm.Stages {
		tm.Stages[i] = stage
	}
	return tm
}

// TimingByName resolves the scene file's timing selector.
func TimingByName(name string) (Timing, bool) {
	switch name {
	case "", "cascade":
		return CascadeTiming(), true
	case "simple":
		return SimpleTiming(), true
	}
	return Timing{}, false
}
