package systems

import (
	"fmt"
	"time"

	"github.com/pthm-cable/vinopet/components"
)

// CheckEvolution reports whether pet meets the requirements of the next
// stage in its species chain. A pet at the final stage cannot evolve.
func (e *Engine) CheckEvolution(pet components.Pet, stages []components.EvolutionStage) components.EvolutionCheck {
	current := findStage(stages, func(s components.EvolutionStage) bool {
		return s.ID == pet.StageID
	})
	if current == nil {
		e.logger.Warn("pet evolution stage not found",
			"pet_id", pet.ID.String(),
			"stage_id", pet.StageID,
			"species_id", pet.SpeciesID,
		)
		return components.EvolutionCheck{}
	}

	next := findStage(stages, func(s components.EvolutionStage) bool {
		return s.SpeciesID == current.SpeciesID && s.Number == current.Number+1
	})
	if next == nil {
		return components.EvolutionCheck{Current: current}
	}

	missing := Deficits(pet, next.Requirements)
	check := components.EvolutionCheck{
		Current: current,
		Next:    next,
	}
	if len(missing) > 0 {
		check.Missing = missing
		return check
	}

	check.CanEvolve = true
	check.Story = evolutionStory(pet, *current, *next)
	return check
}

// Deficits returns, for each requirement the pet falls short of, how far short it is.
// Level is derived from total experience rather than the cached field.
func Deficits(pet components.Pet, req components.EvolutionRequirements) map[components.Requirement]int {
	missing := make(map[components.Requirement]int)
	check := func(r components.Requirement, threshold *int, have int) {
		if threshold == nil {
			return
		}
		if d := *threshold - have; d > 0 {
			missing[r] = d
		}
	}
	check(components.RequireLevel, req.Level, LevelFor(pet.TotalExperience))
	check(components.RequireRegionsDiscovered, req.RegionsDiscovered, len(pet.RegionsDiscovered))
	check(components.RequireRareWines, req.RareWines, pet.RareWinesEncountered)
	check(components.RequireTotalExpertise, req.TotalExpertise, pet.Expertise.Total())
	return missing
}

// Evolve moves an eligible pet to its next stage and grants prestige.
// Returns the unchanged pet and false when the pet cannot evolve.
func (e *Engine) Evolve(pet components.Pet, stages []components.EvolutionStage, now time.Time) (components.Pet, components.EvolutionCheck, bool) {
	check := e.CheckEvolution(pet, stages)
	if !check.CanEvolve {
		return pet, check, false
	}

	out := pet.Clone()
	out.StageID = check.Next.ID
	out.PrestigePoints += e.cfg.Evolution.PrestigePerStage * check.Next.Number
	out.LastInteractionAt = now
	return out, check, true
}

func findStage(stages []components.EvolutionStage, match func(components.EvolutionStage) bool) *components.EvolutionStage {
	for i := range stages {
		if match(stages[i]) {
			s := stages[i]
			return &s
		}
	}
	return nil
}

func evolutionStory(pet components.Pet, from, to components.EvolutionStage) string {
	name := pet.Name
	if name == "" {
		name = "Your pet"
	}
	return fmt.Sprintf(
		"After %d regions and %d rare bottles, %s the %s shimmers like a swirl of ruby and gold, and emerges as %s!",
		len(pet.RegionsDiscovered), pet.RareWinesEncountered, name, from.Name, to.Name,
	)
}
