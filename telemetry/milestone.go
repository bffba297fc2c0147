package telemetry

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/pthm-cable/vinopet/components"
)

// MilestoneType identifies the type of milestone.
type MilestoneType string

const (
	MilestoneLevelUp         MilestoneType = "level_up"
	MilestoneEvolution       MilestoneType = "evolution"
	MilestoneNewCountry      MilestoneType = "new_country"
	MilestoneStreak          MilestoneType = "streak"
	MilestoneExpertiseMaster MilestoneType = "expertise_master"
	MilestoneFirstRare       MilestoneType = "first_rare_wine"
)

// Milestone is a notable moment in a pet's life, for achievement and
// notification consumers.
type Milestone struct {
	Type        MilestoneType `csv:"type"`
	At          string        `csv:"at"`
	PetID       string        `csv:"pet_id"`
	PetName     string        `csv:"pet"`
	Description string        `csv:"description"`
}

// LogMilestone logs the milestone using slog.
func (m Milestone) LogMilestone() {
	slog.Info("milestone",
		"type", string(m.Type),
		"at", m.At,
		"pet", m.PetName,
		"description", m.Description,
	)
}

// MilestoneDetector derives milestones from before/after pet snapshots.
type MilestoneDetector struct {
	streaks      []int
	expertiseMax int
}

// NewMilestoneDetector creates a detector that fires on the given streak
// lengths and when an expertise bucket reaches expertiseMax.
func NewMilestoneDetector(streaks []int, expertiseMax int) *MilestoneDetector {
	return &MilestoneDetector{
		streaks:      slices.Clone(streaks),
		expertiseMax: expertiseMax,
	}
}

// CheckFeed returns the milestones reached by a feeding.
func (md *MilestoneDetector) CheckFeed(before, after components.Pet, result components.FeedingResult, at time.Time) []Milestone {
	var milestones []Milestone
	add := func(t MilestoneType, desc string) {
		milestones = append(milestones, Milestone{
			Type:        t,
			At:          at.UTC().Format(time.RFC3339),
			PetID:       after.ID.String(),
			PetName:     after.Name,
			Description: desc,
		})
	}

	if result.LeveledUp {
		add(MilestoneLevelUp, fmt.Sprintf("Reached level %d", result.NewLevel))
	}
	for _, country := range result.NewCountriesExplored {
		add(MilestoneNewCountry, fmt.Sprintf("First wine from %s (%d countries)", country, len(after.CountriesExplored)))
	}
	if result.StreakDays != before.DailyStreak && slices.Contains(md.streaks, result.StreakDays) {
		add(MilestoneStreak, fmt.Sprintf("%d day tasting streak", result.StreakDays))
	}
	for _, b := range components.Buckets {
		if before.Expertise.Get(b) < md.expertiseMax && after.Expertise.Get(b) >= md.expertiseMax {
			add(MilestoneExpertiseMaster, fmt.Sprintf("Mastered %s wines", b))
		}
	}
	if before.RareWinesEncountered == 0 && after.RareWinesEncountered > 0 {
		add(MilestoneFirstRare, "Tasted a first rare wine")
	}

	return milestones
}

// CheckEvolution returns the milestone for an evolution.
func (md *MilestoneDetector) CheckEvolution(after components.Pet, check components.EvolutionCheck, at time.Time) Milestone {
	name := after.StageID
	if check.Next != nil {
		name = check.Next.Name
	}
	return Milestone{
		Type:        MilestoneEvolution,
		At:          at.UTC().Format(time.RFC3339),
		PetID:       after.ID.String(),
		PetName:     after.Name,
		Description: fmt.Sprintf("Evolved into %s", name),
	}
}
