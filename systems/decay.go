package systems

import (
	"math"

	"github.com/pthm-cable/vinopet/components"
)

// Decay computes stat attrition after hoursElapsed without interaction.
// hoursElapsed must be measured from the pet's last interaction and applied
// to the vitals as of that interaction; feeding it time since the previous
// decay call instead would decay twice. Negative durations count as zero.
func (e *Engine) Decay(pet components.Pet, hoursElapsed float64) components.DecayUpdate {
	cfg := e.cfg
	hours := math.Max(0, hoursElapsed)
	days := hours / 24

	healthDecay := int(math.Floor(cfg.Decay.Health * days))
	happinessDecay := int(math.Floor(cfg.Decay.Happiness * days))
	energyDecay := int(math.Floor(cfg.Decay.Energy * days))

	lo, hi := cfg.Stats.Min, cfg.Stats.Max
	update := components.DecayUpdate{
		Health:    max(lo, clampInt(pet.Health, lo, hi)-healthDecay),
		Happiness: max(lo, clampInt(pet.Happiness, lo, hi)-happinessDecay),
		Energy:    max(lo, clampInt(pet.Energy, lo, hi)-energyDecay),
		IsHungry:  hours > cfg.Decay.HungryAfterHours,
		IsSleepy:  hours > cfg.Decay.SleepyAfterHours,
	}
	update.Mood = MoodFor(update.Happiness)
	return update
}
