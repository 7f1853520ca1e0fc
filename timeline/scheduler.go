package timeline

// Sample is the state of one active scene at a progress value.
type Sample struct {
	Scene    int
	Elements [ElementCount]ElementState
}

// Scheduler routes raw progress to the scenes whose window contains it.
// Windows may overlap; every active scene is reported.
type Scheduler struct {
	scenes []SceneTimeline
}

func NewScheduler(windows []Window, tm Timing) (*Scheduler, error) {
	s := &Scheduler{scenes: make([]SceneTimeline, 0, len(windows))}
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		s.scenes = append(s.scenes, Build(w.Start, w.End, tm))
	}
	return s, nil
}

func (s *Scheduler) Len() int {
	return len(s.scenes)
}

// Scene returns the built timeline of scene i.
func (s *Scheduler) Scene(i int) SceneTimeline {
	return s.scenes[i]
}

// Active lists the indices of scenes containing p.
func (s *Scheduler) Active(p float64) []int {
	var out []int
	for i, sc := range s.scenes {
		if sc.Window.Contains(p) {
			out = append(out, i)
		}
	}
	return out
}

// Sample evaluates every active scene at p.
func (s *Scheduler) Sample(p float64) []Sample {
	return s.AppendSamples(nil, p)
}

// AppendSamples is Sample without allocating when dst has capacity.
func (s *Scheduler) AppendSamples(dst []Sample, p float64) []Sample {
	for i, sc := range s.scenes {
		if !sc.Window.Contains(p) {
			continue
		}
		dst = append(dst, Sample{Scene: i, Elements: sc.At(p)})
	}
	return dst
}
