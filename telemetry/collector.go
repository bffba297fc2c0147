package telemetry

import (
	"time"

	"github.com/pthm-cable/vinopet/components"
)

// Collector accumulates activity within windows of simulated time and produces WindowStats.
type Collector struct {
	window  time.Duration
	origin  time.Time
	started time.Time

	// Event counters for current window
	feeds             int
	decays            int
	evolutions        int
	levelUps          int
	moodChanges       int
	experienceAwarded int
	newRegions        int
	newCountries      int
}

// NewCollector creates a collector whose windows last windowHours of simulated time,
// starting at origin.
func NewCollector(windowHours float64, origin time.Time) *Collector {
	window := time.Duration(windowHours * float64(time.Hour))
	if window < time.Hour {
		window = time.Hour
	}
	return &Collector{
		window:  window,
		origin:  origin,
		started: origin,
	}
}

// RecordFeed records a feeding result.
func (c *Collector) RecordFeed(result components.FeedingResult) {
	c.feeds++
	c.experienceAwarded += result.ExperienceGained
	c.newRegions += len(result.NewRegionsDiscovered)
	c.newCountries += len(result.NewCountriesExplored)
	if result.LeveledUp {
		c.levelUps++
	}
	if result.MoodChange != nil {
		c.moodChanges++
	}
}

// RecordDecay records a decay tick that changed a pet.
func (c *Collector) RecordDecay(moodChanged bool) {
	c.decays++
	if moodChanged {
		c.moodChanges++
	}
}

// RecordEvolution records an evolution.
func (c *Collector) RecordEvolution() {
	c.evolutions++
}

// ShouldFlush returns true once the current window has elapsed.
func (c *Collector) ShouldFlush(now time.Time) bool {
	return now.Sub(c.started) >= c.window
}

// Flush produces a WindowStats for the window ending at now and resets
// counters for the next window.
func (c *Collector) Flush(now time.Time, pets []components.Pet) WindowStats {
	stats := WindowStats{
		WindowStart:       c.started.UTC().Format(time.RFC3339),
		WindowEnd:         now.UTC().Format(time.RFC3339),
		SimHours:          now.Sub(c.origin).Hours(),
		Feeds:             c.feeds,
		Decays:            c.decays,
		Evolutions:        c.evolutions,
		LevelUps:          c.levelUps,
		MoodChanges:       c.moodChanges,
		ExperienceAwarded: c.experienceAwarded,
		NewRegions:        c.newRegions,
		NewCountries:      c.newCountries,
	}
	stats.CohortStats(pets)

	// Reset for next window
	c.started = now
	c.feeds = 0
	c.decays = 0
	c.evolutions = 0
	c.levelUps = 0
	c.moodChanges = 0
	c.experienceAwarded = 0
	c.newRegions = 0
	c.newCountries = 0

	return stats
}

// Window returns the window duration.
func (c *Collector) Window() time.Duration {
	return c.window
}
