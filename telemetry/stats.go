package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/vinopet/components"
)

// WindowStats holds aggregated statistics for a window of simulated time.
type WindowStats struct {
	WindowStart string  `csv:"-"`
	WindowEnd   string  `csv:"window_end"`
	SimHours    float64 `csv:"sim_hours"`

	Pets int `csv:"pets"`

	// Events during window
	Feeds             int `csv:"feeds"`
	Decays            int `csv:"decays"`
	Evolutions        int `csv:"evolutions"`
	LevelUps          int `csv:"level_ups"`
	MoodChanges       int `csv:"mood_changes"`
	ExperienceAwarded int `csv:"experience_awarded"`
	NewRegions        int `csv:"new_regions"`
	NewCountries      int `csv:"new_countries"`

	// Cohort distribution at window end
	ExperienceMean float64 `csv:"experience_mean"`
	ExperienceStd  float64 `csv:"experience_std"`
	ExperienceP10  float64 `csv:"experience_p10"`
	ExperienceP50  float64 `csv:"experience_p50"`
	ExperienceP90  float64 `csv:"experience_p90"`

	HappinessMean float64 `csv:"happiness_mean"`
	HappinessP10  float64 `csv:"happiness_p10"`
	HappinessP50  float64 `csv:"happiness_p50"`
	HappinessP90  float64 `csv:"happiness_p90"`

	ExpertiseMean float64 `csv:"expertise_mean"`
	LevelMean     float64 `csv:"level_mean"`
	HungryPets    int     `csv:"hungry"`
	SleepyPets    int     `csv:"sleepy"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// ComputeDistribution returns mean, standard deviation and empirical
// quantiles of values. Returns all zeros for an empty sample.
func ComputeDistribution(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	// Sample deviation is undefined for one value
	if n > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}
	return d
}

// CohortStats fills the distribution fields of s from the given pets.
func (s *WindowStats) CohortStats(pets []components.Pet) {
	s.Pets = len(pets)
	experience := make([]float64, 0, len(pets))
	happiness := make([]float64, 0, len(pets))
	expertise := make([]float64, 0, len(pets))
	levels := make([]float64, 0, len(pets))
	s.HungryPets, s.SleepyPets = 0, 0
	for _, p := range pets {
		experience = append(experience, float64(p.TotalExperience))
		happiness = append(happiness, float64(p.Happiness))
		expertise = append(expertise, float64(p.Expertise.Total()))
		levels = append(levels, float64(p.Level))
		if p.IsHungry {
			s.HungryPets++
		}
		if p.IsSleepy {
			s.SleepyPets++
		}
	}

	exp := ComputeDistribution(experience)
	s.ExperienceMean, s.ExperienceStd = exp.Mean, exp.Std
	s.ExperienceP10, s.ExperienceP50, s.ExperienceP90 = exp.P10, exp.P50, exp.P90

	hap := ComputeDistribution(happiness)
	s.HappinessMean = hap.Mean
	s.HappinessP10, s.HappinessP50, s.HappinessP90 = hap.P10, hap.P50, hap.P90

	s.ExpertiseMean = ComputeDistribution(expertise).Mean
	s.LevelMean = ComputeDistribution(levels).Mean
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("window_start", s.WindowStart),
		slog.String("window_end", s.WindowEnd),
		slog.Float64("sim_hours", s.SimHours),
		slog.Int("pets", s.Pets),
		slog.Int("feeds", s.Feeds),
		slog.Int("decays", s.Decays),
		slog.Int("evolutions", s.Evolutions),
		slog.Int("level_ups", s.LevelUps),
		slog.Int("mood_changes", s.MoodChanges),
		slog.Int("experience_awarded", s.ExperienceAwarded),
		slog.Int("new_regions", s.NewRegions),
		slog.Int("new_countries", s.NewCountries),
		slog.Float64("experience_mean", s.ExperienceMean),
		slog.Float64("experience_std", s.ExperienceStd),
		slog.Float64("experience_p50", s.ExperienceP50),
		slog.Float64("happiness_mean", s.HappinessMean),
		slog.Float64("happiness_p10", s.HappinessP10),
		slog.Float64("expertise_mean", s.ExpertiseMean),
		slog.Float64("level_mean", s.LevelMean),
		slog.Int("hungry", s.HungryPets),
		slog.Int("sleepy", s.SleepyPets),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
