package refdata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pthm-cable/vinopet/components"
)

// ErrBrokenChain is returned when a species' stages are not numbered 1..n.
var ErrBrokenChain = errors.New("broken evolution chain")

type stageKey struct {
	species string
	number  int
}

// Catalog indexes evolution stages by id and by (species, stage number).
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	stages  []components.EvolutionStage
	byID    map[string]int
	byKey   map[stageKey]int
	species []string
}

// NewCatalog validates and indexes the given stages.
func NewCatalog(stages []components.EvolutionStage) (*Catalog, error) {
	c := &Catalog{
		stages: append([]components.EvolutionStage(nil), stages...),
		byID:   make(map[string]int, len(stages)),
		byKey:  make(map[stageKey]int, len(stages)),
	}
	for i, s := range c.stages {
		if s.ID == "" {
			return nil, fmt.Errorf("stage %d of %s has no id", s.Number, s.SpeciesID)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate stage id %q", s.ID)
		}
		key := stageKey{s.SpeciesID, s.Number}
		if _, dup := c.byKey[key]; dup {
			return nil, fmt.Errorf("%w: %s has stage %d twice", ErrBrokenChain, s.SpeciesID, s.Number)
		}
		c.byID[s.ID] = i
		c.byKey[key] = i
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate checks that every species chain is numbered contiguously from 1.
func (c *Catalog) validate() error {
	counts := make(map[string]int)
	for _, s := range c.stages {
		counts[s.SpeciesID]++
	}
	for species, n := range counts {
		for number := 1; number <= n; number++ {
			if _, ok := c.byKey[stageKey{species, number}]; !ok {
				return fmt.Errorf("%w: %s is missing stage %d", ErrBrokenChain, species, number)
			}
		}
		c.species = append(c.species, species)
	}
	sort.Strings(c.species)
	return nil
}

// Stages returns all stages in load order.
func (c *Catalog) Stages() []components.EvolutionStage {
	return c.stages
}

// Species returns the species ids in sorted order.
func (c *Catalog) Species() []string {
	return c.species
}

// Stage looks up a stage by id.
func (c *Catalog) Stage(id string) (components.EvolutionStage, bool) {
	i, ok := c.byID[id]
	if !ok {
		return components.EvolutionStage{}, false
	}
	return c.stages[i], true
}

// At looks up the stage of a species by number.
func (c *Catalog) At(species string, number int) (components.EvolutionStage, bool) {
	i, ok := c.byKey[stageKey{species, number}]
	if !ok {
		return components.EvolutionStage{}, false
	}
	return c.stages[i], true
}

// First returns the first stage of a species.
func (c *Catalog) First(species string) (components.EvolutionStage, bool) {
	return c.At(species, 1)
}

// Chain returns the stages of one species ordered by stage number.
func (c *Catalog) Chain(species string) []components.EvolutionStage {
	var chain []components.EvolutionStage
	for number := 1; ; number++ {
		s, ok := c.At(species, number)
		if !ok {
			return chain
		}
		chain = append(chain, s)
	}
}
