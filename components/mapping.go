package components

// GrowthMapping correlates wine attributes with growth effects.
// Empty match fields never match; nil effect fields fall back to defaults,
// while a present zero is a legitimate zero effect.
type GrowthMapping struct {
	ID string `json:"id"`

	// Match criteria
	Region       string  `json:"region,omitempty"`
	Country      string  `json:"country,omitempty"`
	Quality      Quality `json:"quality_level,omitempty"`
	GrapeVariety string  `json:"grape_variety,omitempty"`

	// Effects
	BaseExperience    *int           `json:"base_experience,omitempty"`
	HealthEffect      *int           `json:"health_effect,omitempty"`
	HappinessEffect   *int           `json:"happiness_effect,omitempty"`
	EnergyEffect      *int           `json:"energy_effect,omitempty"`
	ExpertiseBonus    map[Bucket]int `json:"expertise_bonus,omitempty"` // per-bucket override of the base gain
	RarityMultiplier  *float64       `json:"rarity_multiplier,omitempty"`
	EvolutionCatalyst bool           `json:"evolution_catalyst"`
}
