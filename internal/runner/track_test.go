package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/trench-runner/internal/config"
)

func TestTrackProject(t *testing.T) {
	tr := NewTrack(config.DefaultRunnerConfig().Track)

	at := tr.Project(1, 0)
	if at.X != 0 || at.Z != 0 || at.Scale != 1 {
		t.Errorf("Project(1, 0) = %+v, expected centre at full scale", at)
	}

	far := tr.Project(0, tr.Far)
	if far.X != -1 || far.Z != 1 {
		t.Errorf("Project(0, far) = %+v", far)
	}
	if math.Abs(far.Scale-0.2) > 1e-9 {
		t.Errorf("horizon scale = %g, expected 0.2", far.Scale)
	}

	beyond := tr.Project(7, tr.Far*3)
	if beyond.X != 1 || beyond.Z != 1 {
		t.Errorf("out-of-range input not clamped: %+v", beyond)
	}

	nan := tr.Project(math.NaN(), math.NaN())
	if math.IsNaN(nan.X) || math.IsNaN(nan.Scale) {
		t.Errorf("Project(NaN) produced NaN: %+v", nan)
	}
}

func TestTrackLanes(t *testing.T) {
	tr := NewTrack(config.DefaultRunnerConfig().Track)

	tests := []struct {
		lane float64
		want int
	}{
		{-3, 0},
		{0.4, 0},
		{0.6, 1},
		{1.5, 2},
		{9, 2},
	}
	for _, tc := range tests {
		if got := tr.LaneIndex(tc.lane); got != tc.want {
			t.Errorf("LaneIndex(%g) = %d, expected %d", tc.lane, got, tc.want)
		}
	}

	if tr.Center() != 1 {
		t.Errorf("Center() = %g, expected 1", tr.Center())
	}
	if !tr.Passed(tr.Behind-1) || tr.Passed(-1) {
		t.Error("Passed() boundary wrong")
	}
}
