package systems

import (
	"testing"

	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
)

func TestShouldRepeat(t *testing.T) {
	delay, interval := cfg.Scroll.RepeatDelay, cfg.Scroll.RepeatInterval
	tests := []struct {
		held int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{delay, false},
		{delay + 1, false},
		{delay + interval, true},
		{delay + 2*interval, true},
	}
	for _, tt := range tests {
		if got := shouldRepeat(tt.held); got != tt.want {
			t.Errorf("shouldRepeat(%d) = %v, want %v", tt.held, got, tt.want)
		}
	}
}

func TestActionDelta(t *testing.T) {
	input := &components.InputData{}
	input.HeldTicks[cfg.ActionLineDown] = 1
	if got := actionDelta(input, 1000); got != cfg.Scroll.LineStep {
		t.Errorf("line down = %v, want %v", got, cfg.Scroll.LineStep)
	}

	input = &components.InputData{}
	input.HeldTicks[cfg.ActionPageUp] = 1
	if got, want := actionDelta(input, 1000), -1000*cfg.Scroll.PageFraction; got != want {
		t.Errorf("page up = %v, want %v", got, want)
	}

	input.HeldTicks[cfg.ActionPageUp] = 2
	if got := actionDelta(input, 1000); got != 0 {
		t.Errorf("held page up before repeat = %v, want 0", got)
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionHome] = true
	if st := GetAction(input, cfg.ActionHome); !st.JustPressed || !st.Pressed {
		t.Errorf("press = %+v", st)
	}
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	if st := GetAction(input, cfg.ActionHome); !st.JustReleased || st.Pressed {
		t.Errorf("release = %+v", st)
	}
}
