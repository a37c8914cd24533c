package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledKeepsInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(1000, 1000); got != 0.5 {
		t.Errorf("Level() = %v, want 0.5", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
	})

	if got := d.Interval(300, 100, 0, 0); got != 300 {
		t.Errorf("Interval at level 0 = %d, want 300", got)
	}
	if got := d.Interval(300, 100, 0, 5); got != 200 {
		t.Errorf("Interval at level 0.5 = %d, want 200", got)
	}
	if got := d.Interval(300, 100, 0, 50); got != 100 {
		t.Errorf("Interval at level 1 = %d, want 100", got)
	}
}
