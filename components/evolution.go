package components

// Requirement names one evolution criterion.
type Requirement string

const (
	RequireLevel             Requirement = "level"
	RequireRegionsDiscovered Requirement = "regions_discovered"
	RequireRareWines         Requirement = "rare_wines"
	RequireTotalExpertise    Requirement = "total_expertise"
)

// EvolutionRequirements are the sparse thresholds to reach a stage.
// A nil field is not checked.
type EvolutionRequirements struct {
	Level             *int `json:"level,omitempty"`
	RegionsDiscovered *int `json:"regions_discovered,omitempty"`
	RareWines         *int `json:"rare_wines,omitempty"`
	TotalExpertise    *int `json:"total_expertise,omitempty"`
}

// EvolutionStage is one rung of a species' linear evolution chain.
// Numbers start at 1 and are contiguous per species.
type EvolutionStage struct {
	ID           string                `json:"id"`
	SpeciesID    string                `json:"species_id"`
	Number       int                   `json:"stage_number"`
	Name         string                `json:"name"`
	Requirements EvolutionRequirements `json:"evolution_requirements"`
}

// EvolutionCheck reports whether a pet may move to its next stage.
// Missing holds one positive deficit per failing criterion and is only
// populated when CanEvolve is false.
type EvolutionCheck struct {
	CanEvolve bool                `json:"can_evolve"`
	Current   *EvolutionStage     `json:"current_stage,omitempty"`
	Next      *EvolutionStage     `json:"next_stage,omitempty"`
	Missing   map[Requirement]int `json:"missing_requirements,omitempty"`
	Story     string              `json:"evolution_story,omitempty"`
}
