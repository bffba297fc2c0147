// Package sim runs a headless cellar of wine pets. Pets live in an ECS world;
// every mutation goes through the Cellar so updates to one pet never
// interleave.
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vinopet/components"
	"github.com/pthm-cable/vinopet/refdata"
	"github.com/pthm-cable/vinopet/systems"
)

var (
	// ErrUnknownPet is returned for operations addressed to a pet the cellar does not hold.
	ErrUnknownPet = errors.New("unknown pet")
	// ErrUnknownSpecies is returned when adopting a species with no stages.
	ErrUnknownSpecies = errors.New("unknown species")
)

// Care is the decay baseline of a pet: its vitals as of the last interaction.
// Decay is always computed from this baseline, so repeated ticks at the same
// time give the same result.
type Care struct {
	Health    int
	Happiness int
	Energy    int
	Since     time.Time
}

func careOf(p components.Pet, at time.Time) Care {
	return Care{Health: p.Health, Happiness: p.Happiness, Energy: p.Energy, Since: at}
}

// Observer receives every change the cellar makes.
type Observer interface {
	OnAdopt(pet components.Pet, at time.Time)
	OnFeed(before, after components.Pet, tasting components.WineTasting, result components.FeedingResult, at time.Time)
	OnDecay(before, after components.Pet, at time.Time)
	OnEvolve(before, after components.Pet, check components.EvolutionCheck, at time.Time)
}

// Cellar holds the pet world.
type Cellar struct {
	mu sync.Mutex

	world *ecs.World

	petMapper *ecs.Map2[components.Pet, Care]
	petFilter *ecs.Filter2[components.Pet, Care]
	petMap    *ecs.Map1[components.Pet]
	careMap   *ecs.Map1[Care]

	byID map[uuid.UUID]ecs.Entity

	engine   *systems.Engine
	catalog  *refdata.Catalog
	mappings []components.GrowthMapping
	observer Observer
	logger   *slog.Logger
}

// NewCellar creates an empty cellar. A nil observer discards events.
func NewCellar(engine *systems.Engine, catalog *refdata.Catalog, mappings []components.GrowthMapping, observer Observer, logger *slog.Logger) *Cellar {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	world := ecs.NewWorld()
	return &Cellar{
		world:     world,
		petMapper: ecs.NewMap2[components.Pet, Care](world),
		petFilter: ecs.NewFilter2[components.Pet, Care](world),
		petMap:    ecs.NewMap1[components.Pet](world),
		careMap:   ecs.NewMap1[Care](world),
		byID:      make(map[uuid.UUID]ecs.Entity),
		engine:    engine,
		catalog:   catalog,
		mappings:  mappings,
		observer:  observer,
		logger:    logger,
	}
}

// Adopt creates a pet of the given species at its first stage.
func (c *Cellar) Adopt(owner uuid.UUID, species, name string, now time.Time) (components.Pet, error) {
	first, ok := c.catalog.First(species)
	if !ok {
		return components.Pet{}, fmt.Errorf("%w: %s", ErrUnknownSpecies, species)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	pet := c.engine.Adopt(owner, species, first.ID, name, now)
	care := careOf(pet, now)
	entity := c.petMapper.NewEntity(&pet, &care)
	c.byID[pet.ID] = entity

	c.logger.Debug("adopted", "pet", pet.Name, "species", species, "stage", first.ID)
	c.observer.OnAdopt(pet, now)
	return pet, nil
}

// Feed applies a tasting to a pet. Decay up to now is settled first so the
// tasting lands on the pet's current vitals.
func (c *Cellar) Feed(id uuid.UUID, tasting components.WineTasting, now time.Time) (components.FeedingResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, ok := c.byID[id]
	if !ok {
		return components.FeedingResult{}, fmt.Errorf("%w: %s", ErrUnknownPet, id)
	}
	pet := c.petMap.Get(entity)
	care := c.careMap.Get(entity)
	c.settle(pet, care, now)

	before := *pet
	after, result := c.engine.Feed(before, tasting, c.mappings, now)
	*pet = after
	*care = careOf(after, now)

	c.observer.OnFeed(before, after, tasting, result, now)
	return result, nil
}

// Tick applies decay to every pet as of now.
func (c *Cellar) Tick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	query := c.petFilter.Query()
	for query.Next() {
		pet, care := query.Get()
		c.settle(pet, care, now)
	}
}

// settle brings a pet's vitals up to date with decay since its baseline.
func (c *Cellar) settle(pet *components.Pet, care *Care, now time.Time) {
	base := pet.Clone()
	base.Health, base.Happiness, base.Energy = care.Health, care.Happiness, care.Energy

	update := c.engine.Decay(base, now.Sub(care.Since).Hours())
	after := update.Apply(*pet)
	if after.Health == pet.Health && after.Happiness == pet.Happiness && after.Energy == pet.Energy &&
		after.Mood == pet.Mood && after.IsHungry == pet.IsHungry && after.IsSleepy == pet.IsSleepy {
		return
	}

	before := *pet
	*pet = after
	c.observer.OnDecay(before, after, now)
}

// CheckEvolutions evolves every eligible pet by one stage and returns the
// evolutions that happened.
func (c *Cellar) CheckEvolutions(now time.Time) []components.EvolutionCheck {
	c.mu.Lock()
	defer c.mu.Unlock()

	var evolved []components.EvolutionCheck
	query := c.petFilter.Query()
	for query.Next() {
		pet, care := query.Get()
		chain := c.catalog.Chain(pet.SpeciesID)
		if len(chain) == 0 {
			c.logger.Warn("no stages for species", "pet", pet.Name, "species", pet.SpeciesID)
			continue
		}

		before := *pet
		after, check, ok := c.engine.Evolve(before, chain, now)
		if !ok {
			continue
		}
		*pet = after
		*care = careOf(after, now)
		evolved = append(evolved, check)
		c.observer.OnEvolve(before, after, check, now)
	}
	return evolved
}

// Pet returns a copy of one pet.
func (c *Cellar) Pet(id uuid.UUID) (components.Pet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, ok := c.byID[id]
	if !ok {
		return components.Pet{}, fmt.Errorf("%w: %s", ErrUnknownPet, id)
	}
	return c.petMap.Get(entity).Clone(), nil
}

// Pets returns copies of all pets ordered by name.
func (c *Cellar) Pets() []components.Pet {
	c.mu.Lock()
	defer c.mu.Unlock()

	pets := make([]components.Pet, 0, len(c.byID))
	query := c.petFilter.Query()
	for query.Next() {
		pet, _ := query.Get()
		pets = append(pets, pet.Clone())
	}
	sort.Slice(pets, func(i, j int) bool {
		if pets[i].Name != pets[j].Name {
			return pets[i].Name < pets[j].Name
		}
		return pets[i].ID.String() < pets[j].ID.String()
	})
	return pets
}

// Len returns the number of pets.
func (c *Cellar) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byID)
}

type nopObserver struct{}

func (nopObserver) OnAdopt(components.Pet, time.Time) {}

func (nopObserver) OnFeed(components.Pet, components.Pet, components.WineTasting, components.FeedingResult, time.Time) {
}

func (nopObserver) OnDecay(components.Pet, components.Pet, time.Time) {}

func (nopObserver) OnEvolve(components.Pet, components.Pet, components.EvolutionCheck, time.Time) {}
