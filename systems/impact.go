package systems

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pthm-cable/vinopet/components"
)

// CalculateImpact computes the effect of feeding the tasting to the pet.
// It does not modify the pet.
func (e *Engine) CalculateImpact(pet components.Pet, tasting components.WineTasting, mappings []components.GrowthMapping) components.Impact {
	cfg := e.cfg
	defaults := cfg.MappingDefaults

	var mapping *components.GrowthMapping
	if m, ok := ResolveMapping(tasting, mappings); ok {
		mapping = &m
	}

	impact := components.Impact{
		BaseExperience:   defaults.BaseExperience,
		RarityMultiplier: defaults.RarityMultiplier,
		ExpertiseGains:   make(map[components.Bucket]int, 1),
	}
	health, happiness, energy := defaults.Health, defaults.Happiness, defaults.Energy
	if mapping != nil {
		impact.MappingID = mapping.ID
		impact.BaseExperience = components.IntOr(mapping.BaseExperience, defaults.BaseExperience)
		impact.RarityMultiplier = components.FloatOr(mapping.RarityMultiplier, defaults.RarityMultiplier)
		impact.EvolutionCatalyst = mapping.EvolutionCatalyst
		health = components.IntOr(mapping.HealthEffect, defaults.Health)
		happiness = components.IntOr(mapping.HappinessEffect, defaults.Happiness)
		energy = components.IntOr(mapping.EnergyEffect, defaults.Energy)
	}

	impact.NewDiscoveries = findDiscoveries(pet, tasting)

	// Unknown qualities miss every lookup and contribute 0
	q, _ := components.ParseQuality(string(tasting.Quality))
	quality := string(q)
	d := impact.NewDiscoveries
	impact.BonusExperience = cfg.Discovery.RegionBonus*len(d.Regions) +
		cfg.Discovery.CountryBonus*len(d.Countries) +
		cfg.Discovery.GrapeBonus*len(d.GrapeVarieties) +
		cfg.Quality.Experience[quality]

	impact.StatEffects = components.StatEffects{
		Health:    max(0, health+cfg.Quality.Health[quality]),
		Happiness: max(0, happiness+cfg.Quality.Happiness[quality]),
		Energy:    max(0, energy+cfg.Quality.Energy[quality]),
	}

	// Exactly one bucket is credited, chosen by country
	if bucket, ok := e.bucketFor(tasting.Country); ok {
		gain := cfg.Expertise.BaseGain
		if mapping != nil {
			if override, ok := mapping.ExpertiseBonus[bucket]; ok {
				gain = override
			}
		}
		impact.ExpertiseGains[bucket] = gain
	}

	impact.Rare = impact.RarityMultiplier > cfg.Rarity.NoticeThreshold
	impact.SpecialEffects = specialEffects(q, impact)

	return impact
}

// bucketFor returns the expertise bucket credited by a country.
func (e *Engine) bucketFor(country string) (components.Bucket, bool) {
	name, ok := e.cfg.Derived.CountryBucket[country]
	if !ok {
		return "", false
	}
	return components.Bucket(name), true
}

func findDiscoveries(pet components.Pet, tasting components.WineTasting) components.Discoveries {
	d := components.Discoveries{
		Regions:        []string{},
		Countries:      []string{},
		GrapeVarieties: []string{},
	}
	if tasting.Region != "" && !pet.HasRegion(tasting.Region) {
		d.Regions = append(d.Regions, tasting.Region)
	}
	if tasting.Country != "" && !pet.HasCountry(tasting.Country) {
		d.Countries = append(d.Countries, tasting.Country)
	}
	for _, grape := range tasting.GrapeVarieties {
		if grape == "" || pet.HasGrape(grape) || slices.Contains(d.GrapeVarieties, grape) {
			continue
		}
		d.GrapeVarieties = append(d.GrapeVarieties, grape)
	}
	return d
}

func specialEffects(quality components.Quality, impact components.Impact) []string {
	effects := []string{}
	if quality == components.QualityOutstanding {
		effects = append(effects, "Exceptional wine! Your pet glows with delight.")
	}
	if len(impact.NewDiscoveries.Regions) > 0 {
		effects = append(effects, fmt.Sprintf("New region discovered: %s", strings.Join(impact.NewDiscoveries.Regions, ", ")))
	}
	if len(impact.NewDiscoveries.Countries) > 0 {
		effects = append(effects, fmt.Sprintf("New country explored: %s", strings.Join(impact.NewDiscoveries.Countries, ", ")))
	}
	if impact.EvolutionCatalyst {
		effects = append(effects, "This wine stirs something within your pet... evolution draws near.")
	}
	if impact.Rare {
		effects = append(effects, fmt.Sprintf("Rare wine! Experience multiplied by %.1fx", impact.RarityMultiplier))
	}
	return effects
}
