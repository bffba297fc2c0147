// Package telemetry records pet activity: per-event CSV logs, milestone
// detection, windowed cohort statistics and pet snapshots.
package telemetry

import (
	"strings"
	"time"

	"github.com/pthm-cable/vinopet/components"
)

// ActivityKind identifies what happened to a pet.
type ActivityKind string

const (
	ActivityAdopt  ActivityKind = "adopt"
	ActivityFeed   ActivityKind = "feed"
	ActivityDecay  ActivityKind = "decay"
	ActivityEvolve ActivityKind = "evolve"
)

// ActivityRecord is one row of the activity feed.
type ActivityRecord struct {
	At         string       `csv:"at"`
	PetID      string       `csv:"pet_id"`
	PetName    string       `csv:"pet"`
	Kind       ActivityKind `csv:"kind"`
	Wine       string       `csv:"wine"`
	Experience int          `csv:"experience_gained"`
	Level      int          `csv:"level"`
	Health     int          `csv:"health"`
	Happiness  int          `csv:"happiness"`
	Energy     int          `csv:"energy"`
	Mood       string       `csv:"mood"`
	Stage      string       `csv:"stage"`
	Discovery  bool         `csv:"discovery"`
	Message    string       `csv:"message"`
}

func baseRecord(kind ActivityKind, pet components.Pet, at time.Time) ActivityRecord {
	return ActivityRecord{
		At:        at.UTC().Format(time.RFC3339),
		PetID:     pet.ID.String(),
		PetName:   pet.Name,
		Kind:      kind,
		Level:     pet.Level,
		Health:    pet.Health,
		Happiness: pet.Happiness,
		Energy:    pet.Energy,
		Mood:      string(pet.Mood),
		Stage:     pet.StageID,
	}
}

// NewAdoptRecord creates an adoption record.
func NewAdoptRecord(pet components.Pet, at time.Time) ActivityRecord {
	r := baseRecord(ActivityAdopt, pet, at)
	r.Message = "adopted"
	return r
}

// NewFeedRecord creates a record for a tasting fed to a pet.
func NewFeedRecord(after components.Pet, tasting components.WineTasting, result components.FeedingResult, at time.Time) ActivityRecord {
	r := baseRecord(ActivityFeed, after, at)
	r.Wine = tasting.WineName
	r.Experience = result.ExperienceGained
	r.Discovery = result.WineDiscoveryBonus
	r.Message = result.Message
	return r
}

// NewDecayRecord creates a record for a decay tick.
func NewDecayRecord(before, after components.Pet, at time.Time) ActivityRecord {
	r := baseRecord(ActivityDecay, after, at)
	var flags []string
	if after.IsHungry && !before.IsHungry {
		flags = append(flags, "hungry")
	}
	if after.IsSleepy && !before.IsSleepy {
		flags = append(flags, "sleepy")
	}
	r.Message = strings.Join(flags, ",")
	return r
}

// NewEvolveRecord creates a record for an evolution.
func NewEvolveRecord(after components.Pet, check components.EvolutionCheck, at time.Time) ActivityRecord {
	r := baseRecord(ActivityEvolve, after, at)
	r.Message = check.Story
	return r
}
