package systems

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/pthm-cable/vinopet/components"
)

// Message thresholds for the feeding result.
const (
	exceptionalExperience = 50
	greatExperience       = 25
	overjoyedHappiness    = 20
	pleasedHappiness      = 10
)

// Feed resolves, computes and applies one tasting. Callers must feed each
// tasting to a pet at most once; re-applying double counts.
func (e *Engine) Feed(pet components.Pet, tasting components.WineTasting, mappings []components.GrowthMapping, now time.Time) (components.Pet, components.FeedingResult) {
	impact := e.CalculateImpact(pet, tasting, mappings)
	return e.ApplyImpact(pet, impact, now)
}

// AwardedExperience returns floor((base + bonus) * multiplier), never negative.
func AwardedExperience(impact components.Impact) int {
	awarded := int(math.Floor(float64(impact.BaseExperience+impact.BonusExperience) * impact.RarityMultiplier))
	return max(0, awarded)
}

// ApplyImpact applies an impact to a copy of pet and summarizes the change.
// The input pet is not modified.
func (e *Engine) ApplyImpact(pet components.Pet, impact components.Impact, now time.Time) (components.Pet, components.FeedingResult) {
	lo, hi := e.cfg.Stats.Min, e.cfg.Stats.Max
	out := pet.Clone()

	// Out-of-range snapshots are clamped before use
	oldHealth := clampInt(pet.Health, lo, hi)
	oldHappiness := clampInt(pet.Happiness, lo, hi)
	oldEnergy := clampInt(pet.Energy, lo, hi)
	prevMood := pet.Mood
	if prevMood == "" {
		prevMood = MoodFor(oldHappiness)
	}

	out.Health = clampInt(oldHealth+impact.StatEffects.Health, lo, hi)
	out.Happiness = clampInt(oldHappiness+impact.StatEffects.Happiness, lo, hi)
	out.Energy = clampInt(oldEnergy+impact.StatEffects.Energy, lo, hi)
	out.Mood = MoodFor(out.Happiness)

	awarded := AwardedExperience(impact)
	oldExperience := max(0, pet.TotalExperience)
	oldLevel := LevelFor(oldExperience)
	out.TotalExperience = oldExperience + awarded
	out.Level = LevelFor(out.TotalExperience)
	out.WineKnowledge = max(0, pet.WineKnowledge) + awarded/2

	d := impact.NewDiscoveries
	out.RegionsDiscovered = union(out.RegionsDiscovered, d.Regions)
	out.CountriesExplored = union(out.CountriesExplored, d.Countries)
	out.GrapeVarietiesTasted = union(out.GrapeVarietiesTasted, d.GrapeVarieties)
	if impact.Rare {
		out.RareWinesEncountered++
	}

	expertiseMax := e.cfg.Expertise.Max
	for _, b := range components.Buckets {
		out.Expertise.Set(b, clampInt(out.Expertise.Get(b)+impact.ExpertiseGains[b], 0, expertiseMax))
	}

	out.DailyStreak = nextStreak(pet.LastFedAt, pet.DailyStreak, now)
	out.LongestStreak = max(pet.LongestStreak, out.DailyStreak)
	out.LastFedAt = now
	out.LastInteractionAt = now
	out.IsHungry = false

	result := components.FeedingResult{
		Success: true,
		StatsChanged: components.StatEffects{
			Health:    out.Health - oldHealth,
			Happiness: out.Happiness - oldHappiness,
			Energy:    out.Energy - oldEnergy,
		},
		ExperienceGained:     awarded,
		WineDiscoveryBonus:   d.Any(),
		NewRegionsDiscovered: slices.Clone(d.Regions),
		NewCountriesExplored: slices.Clone(d.Countries),
		ExpertiseGains:       maps.Clone(impact.ExpertiseGains),
		LeveledUp:            out.Level > oldLevel,
		NewLevel:             out.Level,
		StreakDays:           out.DailyStreak,
	}
	if out.Mood != prevMood {
		mood := out.Mood
		result.MoodChange = &mood
	}
	result.Message = feedingMessage(out, impact, result)

	return out, result
}

// union appends the values of add missing from set, preserving order.
func union(set, add []string) []string {
	for _, v := range add {
		if !slices.Contains(set, v) {
			set = append(set, v)
		}
	}
	return set
}

// nextStreak advances a daily streak across UTC calendar days.
func nextStreak(lastFed time.Time, streak int, now time.Time) int {
	if lastFed.IsZero() || streak <= 0 {
		return 1
	}
	days := calendarDay(now).Sub(calendarDay(lastFed)) / (24 * time.Hour)
	switch {
	case days <= 0:
		return streak
	case days == 1:
		return streak + 1
	default:
		return 1
	}
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func feedingMessage(pet components.Pet, impact components.Impact, result components.FeedingResult) string {
	name := pet.Name
	if name == "" {
		name = "Your pet"
	}

	var parts []string
	if result.LeveledUp {
		parts = append(parts, fmt.Sprintf("%s reached level %d!", name, result.NewLevel))
	}

	d := impact.NewDiscoveries
	switch {
	case len(d.Regions) > 0:
		parts = append(parts, fmt.Sprintf("Discovered %s!", strings.Join(d.Regions, ", ")))
	case len(d.Countries) > 0:
		parts = append(parts, fmt.Sprintf("First taste of %s!", strings.Join(d.Countries, ", ")))
	case len(d.GrapeVarieties) > 0:
		parts = append(parts, fmt.Sprintf("New grapes: %s.", strings.Join(d.GrapeVarieties, ", ")))
	}

	switch {
	case result.ExperienceGained >= exceptionalExperience:
		parts = append(parts, fmt.Sprintf("An exceptional bottle: +%d XP.", result.ExperienceGained))
	case result.ExperienceGained >= greatExperience:
		parts = append(parts, fmt.Sprintf("A great tasting: +%d XP.", result.ExperienceGained))
	}

	switch {
	case impact.StatEffects.Happiness >= overjoyedHappiness:
		parts = append(parts, fmt.Sprintf("%s is overjoyed!", name))
	case impact.StatEffects.Happiness >= pleasedHappiness:
		parts = append(parts, fmt.Sprintf("%s looks pleased.", name))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("%s enjoyed the wine. +%d XP.", name, result.ExperienceGained)
	}
	return strings.Join(parts, " ")
}
