package components

// StatEffects are vital deltas. Each is floored at 0 when computed.
type StatEffects struct {
	Health    int `json:"health"`
	Happiness int `json:"happiness"`
	Energy    int `json:"energy"`
}

// Discoveries are the regions, countries and grapes new to a pet.
type Discoveries struct {
	Regions        []string `json:"regions"`
	Countries      []string `json:"countries"`
	GrapeVarieties []string `json:"grape_varieties"`
}

// Any reports whether anything was discovered.
func (d Discoveries) Any() bool {
	return len(d.Regions) > 0 || len(d.Countries) > 0 || len(d.GrapeVarieties) > 0
}

// Impact is the computed effect of one tasting on one pet.
type Impact struct {
	BaseExperience    int            `json:"base_experience"`
	BonusExperience   int            `json:"bonus_experience"`
	StatEffects       StatEffects    `json:"stat_effects"`
	ExpertiseGains    map[Bucket]int `json:"expertise_gains"`
	NewDiscoveries    Discoveries    `json:"new_discoveries"`
	RarityMultiplier  float64        `json:"rarity_multiplier"`
	SpecialEffects    []string       `json:"special_effects"`
	EvolutionCatalyst bool           `json:"evolution_catalyst"`
	Rare              bool           `json:"rare"`
	MappingID         string         `json:"mapping_id,omitempty"`
}

// FeedingResult summarizes an applied impact.
type FeedingResult struct {
	Success              bool           `json:"success"`
	Message              string         `json:"message"`
	StatsChanged         StatEffects    `json:"stats_changed"`
	ExperienceGained     int            `json:"experience_gained"`
	MoodChange           *Mood          `json:"mood_change,omitempty"`
	WineDiscoveryBonus   bool           `json:"wine_discovery_bonus"`
	NewRegionsDiscovered []string       `json:"new_regions_discovered"`
	NewCountriesExplored []string       `json:"new_countries_explored"`
	ExpertiseGains       map[Bucket]int `json:"expertise_gains"`
	LeveledUp            bool           `json:"leveled_up"`
	NewLevel             int            `json:"new_level"`
	StreakDays           int            `json:"streak_days"`
}

// DecayUpdate is the partial pet update produced by a decay tick.
type DecayUpdate struct {
	Health    int  `json:"health"`
	Happiness int  `json:"happiness"`
	Energy    int  `json:"energy"`
	Mood      Mood `json:"mood"`
	IsHungry  bool `json:"is_hungry"`
	IsSleepy  bool `json:"is_sleepy"`
}

// Apply returns a copy of p with the decay update merged in.
func (u DecayUpdate) Apply(p Pet) Pet {
	out := p.Clone()
	out.Health = u.Health
	out.Happiness = u.Happiness
	out.Energy = u.Energy
	out.Mood = u.Mood
	out.IsHungry = u.IsHungry
	out.IsSleepy = u.IsSleepy
	return out
}
