package systems

import (
	"math"

	"github.com/pthm-cable/vinopet/components"
)

// MoodFor maps happiness to a mood. It is a total function with no history.
func MoodFor(happiness int) components.Mood {
	switch {
	case happiness >= 90:
		return components.MoodEcstatic
	case happiness >= 70:
		return components.MoodVeryHappy
	case happiness >= 50:
		return components.MoodHappy
	case happiness >= 30:
		return components.MoodNeutral
	case happiness >= 10:
		return components.MoodSad
	default:
		return components.MoodVerySad
	}
}

// LevelFor returns floor(sqrt(experience/100)) + 1.
// Negative experience counts as zero.
func LevelFor(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return int(math.Floor(math.Sqrt(float64(experience)/100))) + 1
}
