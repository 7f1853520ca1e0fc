package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/automoto/cinescroll/timeline"
	"gopkg.in/yaml.v3"
)

//go:embed scenes.yaml
var defaultScenes []byte

// SceneFile is the on-disk scene list
type SceneFile struct {
	Timing string      `yaml:"timing"` // cascade (default) or simple
	Scenes []SceneSpec `yaml:"scenes"`
}

// SceneSpec is one overlay scene as written in the file
type SceneSpec struct {
	Start    float64 `yaml:"start"`
	End      float64 `yaml:"end"`
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Icon     string  `yaml:"icon"`
	Align    string  `yaml:"align"`
}

// SceneDef is a validated scene
type SceneDef struct {
	Window   timeline.Window
	Title    string
	Subtitle string
	Icon     string
	Align    timeline.Align
}

// SceneSet is a validated scene file
type SceneSet struct {
	TimingName string
	Timing     timeline.Timing
	Scenes     []SceneDef
}

// ParseScenes decodes and validates a scene file. Every window must satisfy
// 0 <= start < end <= 1.
func ParseScenes(data []byte) (*SceneSet, error) {
	var file SceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode scenes: %w", err)
	}

	tm, ok := timeline.TimingByName(file.Timing)
	if !ok {
		return nil, fmt.Errorf("unknown timing %q", file.Timing)
	}
	name := file.Timing
	if name == "" {
		name = "cascade"
	}

	set := &SceneSet{TimingName: name, Timing: tm, Scenes: make([]SceneDef, 0, len(file.Scenes))}
	for i, spec := range file.Scenes {
		w := timeline.Window{Start: spec.Start, End: spec.End}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("scene %d (%q): %w", i, spec.Title, err)
		}
		align, err := timeline.ParseAlign(spec.Align)
		if err != nil {
			return nil, fmt.Errorf("scene %d (%q): %w", i, spec.Title, err)
		}
		set.Scenes = append(set.Scenes, SceneDef{
			Window:   w,
			Title:    spec.Title,
			Subtitle: spec.Subtitle,
			Icon:     spec.Icon,
			Align:    align,
		})
	}
	return set, nil
}

// LoadScenes reads the scene file at path, or the embedded default when
// path is empty.
func LoadScenes(path string) (*SceneSet, error) {
	if path == "" {
		return ParseScenes(defaultScenes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenes: %w", err)
	}
	return ParseScenes(data)
}

// DefaultScenes returns the embedded scene set.
func DefaultScenes() *SceneSet {
	set, err := ParseScenes(defaultScenes)
	if err != nil {
		panic(err)
	}
	return set
}

// Windows lists the scene windows in file order.
func (s *SceneSet) Windows() []timeline.Window {
	out := make([]timeline.Window, len(s.Scenes))
	for i, sc := range s.Scenes {
		out[i] = sc.Window
	}
	return out
}

// Scheduler builds the timelines of every scene.
func (s *SceneSet) Scheduler() (*timeline.Scheduler, error) {
	return timeline.NewScheduler(s.Windows(), s.Timing)
}
