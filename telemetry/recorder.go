package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/vinopet/components"
)

// Recorder turns cellar events into activity rows, milestones and windowed
// stats. It satisfies sim.Observer.
type Recorder struct {
	collector  *Collector
	milestones *MilestoneDetector
	output     *OutputManager
	logger     *slog.Logger
	logStats   bool

	// StatsCallback, if set, receives every flushed window.
	StatsCallback func(WindowStats)
}

// NewRecorder creates a recorder. output may be nil to disable file output.
func NewRecorder(collector *Collector, milestones *MilestoneDetector, output *OutputManager, logger *slog.Logger, logStats bool) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		collector:  collector,
		milestones: milestones,
		output:     output,
		logger:     logger,
		logStats:   logStats,
	}
}

// OnAdopt records an adoption.
func (r *Recorder) OnAdopt(pet components.Pet, at time.Time) {
	r.writeActivity(NewAdoptRecord(pet, at))
}

// OnFeed records a feeding and any milestones it reached.
func (r *Recorder) OnFeed(before, after components.Pet, tasting components.WineTasting, result components.FeedingResult, at time.Time) {
	r.collector.RecordFeed(result)
	r.writeActivity(NewFeedRecord(after, tasting, result, at))
	for _, m := range r.milestones.CheckFeed(before, after, result, at) {
		r.writeMilestone(m)
	}
}

// OnDecay records a decay that changed a pet.
func (r *Recorder) OnDecay(before, after components.Pet, at time.Time) {
	r.collector.RecordDecay(before.Mood != after.Mood)
	r.writeActivity(NewDecayRecord(before, after, at))
}

// OnEvolve records an evolution.
func (r *Recorder) OnEvolve(_, after components.Pet, check components.EvolutionCheck, at time.Time) {
	r.collector.RecordEvolution()
	r.writeActivity(NewEvolveRecord(after, check, at))
	r.writeMilestone(r.milestones.CheckEvolution(after, check, at))
}

// Flush emits window stats if the current window has elapsed.
// Returns true if a window was flushed.
func (r *Recorder) Flush(now time.Time, pets []components.Pet) bool {
	if !r.collector.ShouldFlush(now) {
		return false
	}
	r.flush(now, pets)
	return true
}

// FlushFinal emits the partial window ending at now.
func (r *Recorder) FlushFinal(now time.Time, pets []components.Pet) {
	r.flush(now, pets)
}

func (r *Recorder) flush(now time.Time, pets []components.Pet) {
	stats := r.collector.Flush(now, pets)

	if r.StatsCallback != nil {
		r.StatsCallback(stats)
	}
	if r.logStats {
		stats.LogStats()
	}
	if err := r.output.WriteStats(stats); err != nil {
		r.logger.Error("failed to write stats", "error", err)
	}
}

func (r *Recorder) writeActivity(rec ActivityRecord) {
	if err := r.output.WriteActivity(rec); err != nil {
		r.logger.Error("failed to write activity", "error", err)
	}
}

func (r *Recorder) writeMilestone(m Milestone) {
	if r.logStats {
		m.LogMilestone()
	}
	if err := r.output.WriteMilestone(m); err != nil {
		r.logger.Error("failed to write milestone", "error", err)
	}
}
