package systems

import (
	"testing"

	"github.com/pthm-cable/vinopet/components"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		experience int
		want       int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{16900, 14},
		{19600, 15},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.experience); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.experience, got, tt.want)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := LevelFor(0)
	for exp := 1; exp <= 50000; exp++ {
		lvl := LevelFor(exp)
		if lvl < prev {
			t.Fatalf("LevelFor(%d) = %d < LevelFor(%d) = %d", exp, lvl, exp-1, prev)
		}
		prev = lvl
	}
}

func TestMoodForBoundaries(t *testing.T) {
	tests := []struct {
		happiness int
		want      components.Mood
	}{
		{0, components.MoodVerySad},
		{9, components.MoodVerySad},
		{10, components.MoodSad},
		{29, components.MoodSad},
		{30, components.MoodNeutral},
		{49, components.MoodNeutral},
		{50, components.MoodHappy},
		{69, components.MoodHappy},
		{70, components.MoodVeryHappy},
		{89, components.MoodVeryHappy},
		{90, components.MoodEcstatic},
		{100, components.MoodEcstatic},
	}
	for _, tt := range tests {
		if got := MoodFor(tt.happiness); got != tt.want {
			t.Errorf("MoodFor(%d) = %s, want %s", tt.happiness, got, tt.want)
		}
	}
}
