package systems

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/vinopet/components"
	"github.com/pthm-cable/vinopet/config"
)

// Initial vitals for an adopted pet.
const (
	AdoptHealth    = 100
	AdoptHappiness = 60
	AdoptEnergy    = 100
)

// Engine turns tastings, elapsed time and stage tables into pet updates.
// It holds only read-only configuration; every method takes a pet snapshot
// and returns a replacement, so one Engine can serve many pets concurrently.
type Engine struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewEngine creates an engine. A nil logger uses slog.Default().
func NewEngine(cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Config returns the engine configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Adopt creates a new pet at the given species and first stage.
func (e *Engine) Adopt(owner uuid.UUID, species, stageID, name string, now time.Time) components.Pet {
	return components.Pet{
		ID:                uuid.New(),
		OwnerID:           owner,
		SpeciesID:         species,
		StageID:           stageID,
		Name:              name,
		Health:            AdoptHealth,
		Happiness:         AdoptHappiness,
		Energy:            AdoptEnergy,
		Level:             LevelFor(0),
		Mood:              MoodFor(AdoptHappiness),
		LastInteractionAt: now,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
