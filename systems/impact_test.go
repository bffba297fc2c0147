package systems

import (
	"strings"
	"testing"

	"github.com/pthm-cable/vinopet/components"
)

func bordeauxPet() components.Pet {
	return components.Pet{
		Name:              "Merlo",
		Health:            80,
		Happiness:         50,
		Energy:            60,
		RegionsDiscovered: []string{"Bordeaux"},
		CountriesExplored: []string{"France"},
	}
}

func TestCalculateImpactDefaults(t *testing.T) {
	e := newTestEngine(t)
	tasting := components.WineTasting{Region: "Tuscany", Country: "Italy", Quality: components.QualityOutstanding}

	impact := e.CalculateImpact(bordeauxPet(), tasting, nil)

	if impact.BaseExperience != 10 {
		t.Errorf("base experience = %d, want 10", impact.BaseExperience)
	}
	// 20 new region + 15 new country + 25 outstanding
	if impact.BonusExperience != 60 {
		t.Errorf("bonus experience = %d, want 60", impact.BonusExperience)
	}
	want := components.StatEffects{Health: 10, Happiness: 25, Energy: 5}
	if impact.StatEffects != want {
		t.Errorf("stat effects = %+v, want %+v", impact.StatEffects, want)
	}
	if impact.RarityMultiplier != 1.0 {
		t.Errorf("rarity = %v, want 1.0", impact.RarityMultiplier)
	}
	if got := impact.ExpertiseGains[components.BucketItalian]; got != 5 {
		t.Errorf("italian gain = %d, want 5", got)
	}
	if impact.MappingID != "" {
		t.Errorf("mapping id = %q, want none", impact.MappingID)
	}
}

func TestCalculateImpactDoesNotMutatePet(t *testing.T) {
	e := newTestEngine(t)
	pet := bordeauxPet()
	tasting := components.WineTasting{Region: "Tuscany", Country: "Italy", GrapeVarieties: []string{"Sangiovese"}}

	e.CalculateImpact(pet, tasting, nil)

	if len(pet.RegionsDiscovered) != 1 || len(pet.GrapeVarietiesTasted) != 0 {
		t.Errorf("pet mutated: %+v", pet)
	}
}

func TestCalculateImpactMappingEffects(t *testing.T) {
	e := newTestEngine(t)
	mappings := []components.GrowthMapping{{
		ID:               "barolo",
		Region:           "Barolo",
		BaseExperience:   components.Ptr(30),
		HealthEffect:     components.Ptr(2),
		HappinessEffect:  components.Ptr(0),
		EnergyEffect:     components.Ptr(7),
		RarityMultiplier: components.Ptr(2.0),
		ExpertiseBonus:   map[components.Bucket]int{components.BucketItalian: 12},
	}}
	pet := components.Pet{RegionsDiscovered: []string{"Barolo"}, CountriesExplored: []string{"Italy"}}
	tasting := components.WineTasting{Region: "Barolo", Country: "Italy", Quality: components.Quality("mystery")}

	impact := e.CalculateImpact(pet, tasting, mappings)

	if impact.MappingID != "barolo" || impact.BaseExperience != 30 {
		t.Errorf("mapping/base = %q/%d, want barolo/30", impact.MappingID, impact.BaseExperience)
	}
	// A present zero is not replaced by the default of 10
	want := components.StatEffects{Health: 2, Happiness: 0, Energy: 7}
	if impact.StatEffects != want {
		t.Errorf("stat effects = %+v, want %+v", impact.StatEffects, want)
	}
	if impact.BonusExperience != 0 {
		t.Errorf("bonus = %d, want 0 for unknown quality and no discoveries", impact.BonusExperience)
	}
	if got := impact.ExpertiseGains[components.BucketItalian]; got != 12 {
		t.Errorf("italian gain = %d, want override 12", got)
	}
	if !impact.Rare {
		t.Error("multiplier 2.0 should be rare")
	}
}

func TestCalculateImpactQualityFloorsEffects(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{RegionsDiscovered: []string{"Rioja"}, CountriesExplored: []string{"Spain"}}
	tasting := components.WineTasting{Region: "Rioja", Country: "Spain", Quality: components.QualityFaulty}

	impact := e.CalculateImpact(pet, tasting, nil)

	// health 5-5, happiness 10-10, energy 0+0
	want := components.StatEffects{Health: 0, Happiness: 0, Energy: 0}
	if impact.StatEffects != want {
		t.Errorf("stat effects = %+v, want %+v", impact.StatEffects, want)
	}
	if impact.BonusExperience != -10 {
		t.Errorf("bonus = %d, want -10", impact.BonusExperience)
	}

	mappings := []components.GrowthMapping{{Region: "Rioja", HappinessEffect: components.Ptr(3)}}
	impact = e.CalculateImpact(pet, tasting, mappings)
	if impact.StatEffects.Happiness != 0 {
		t.Errorf("happiness effect = %d, want floor 0", impact.StatEffects.Happiness)
	}
}

func TestCalculateImpactQualityTables(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{RegionsDiscovered: []string{"Mosel"}, CountriesExplored: []string{"Germany"}}

	tests := []struct {
		quality components.Quality
		bonus   int
		effects components.StatEffects
	}{
		{components.QualityOutstanding, 25, components.StatEffects{Health: 10, Happiness: 25, Energy: 5}},
		{components.Quality("very good"), 15, components.StatEffects{Health: 8, Happiness: 20, Energy: 3}},
		{components.QualityGood, 10, components.StatEffects{Health: 7, Happiness: 15, Energy: 2}},
		{components.QualityAcceptable, 5, components.StatEffects{Health: 6, Happiness: 13, Energy: 1}},
		{components.QualityPoor, -5, components.StatEffects{Health: 3, Happiness: 5, Energy: 0}},
		{components.QualityFaulty, -10, components.StatEffects{Health: 0, Happiness: 0, Energy: 0}},
		{components.Quality(""), 0, components.StatEffects{Health: 5, Happiness: 10, Energy: 0}},
	}
	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			tasting := components.WineTasting{Region: "Mosel", Country: "Germany", Quality: tt.quality}
			impact := e.CalculateImpact(pet, tasting, nil)
			if impact.BonusExperience != tt.bonus {
				t.Errorf("bonus = %d, want %d", impact.BonusExperience, tt.bonus)
			}
			if impact.StatEffects != tt.effects {
				t.Errorf("effects = %+v, want %+v", impact.StatEffects, tt.effects)
			}
		})
	}
}

func TestCalculateImpactExpertiseExclusive(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		country string
		bucket  components.Bucket
	}{
		{"France", components.BucketFrench},
		{"Italy", components.BucketItalian},
		{"Spain", components.BucketSpanish},
		{"Germany", components.BucketGerman},
		{"United States", components.BucketNewWorld},
		{"Argentina", components.BucketNewWorld},
		{"Portugal", ""},
	}
	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			impact := e.CalculateImpact(components.Pet{}, components.WineTasting{Country: tt.country}, nil)
			for _, b := range components.Buckets {
				want := 0
				if b == tt.bucket {
					want = 5
				}
				if got := impact.ExpertiseGains[b]; got != want {
					t.Errorf("gain[%s] = %d, want %d", b, got, want)
				}
			}
		})
	}
}

func TestCalculateImpactGrapeDiscoveries(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{
		RegionsDiscovered:    []string{"Bordeaux"},
		CountriesExplored:    []string{"France"},
		GrapeVarietiesTasted: []string{"Merlot"},
	}
	tasting := components.WineTasting{
		Region:         "Bordeaux",
		Country:        "France",
		GrapeVarieties: []string{"Merlot", "Cabernet Franc", "Cabernet Sauvignon", "Cabernet Franc"},
	}

	impact := e.CalculateImpact(pet, tasting, nil)

	got := impact.NewDiscoveries.GrapeVarieties
	if len(got) != 2 || got[0] != "Cabernet Franc" || got[1] != "Cabernet Sauvignon" {
		t.Errorf("new grapes = %v, want [Cabernet Franc Cabernet Sauvignon]", got)
	}
	if impact.BonusExperience != 20 {
		t.Errorf("bonus = %d, want 20", impact.BonusExperience)
	}
}

func TestCalculateImpactSpecialEffects(t *testing.T) {
	e := newTestEngine(t)
	mappings := []components.GrowthMapping{{
		Region:            "Pomerol",
		EvolutionCatalyst: true,
		RarityMultiplier:  components.Ptr(1.8),
	}}
	tasting := components.WineTasting{Region: "Pomerol", Country: "France", Quality: components.QualityOutstanding}

	impact := e.CalculateImpact(components.Pet{}, tasting, mappings)

	if len(impact.SpecialEffects) != 5 {
		t.Fatalf("special effects = %d, want 5: %v", len(impact.SpecialEffects), impact.SpecialEffects)
	}
	if !strings.Contains(impact.SpecialEffects[1], "Pomerol") {
		t.Errorf("region notice = %q", impact.SpecialEffects[1])
	}

	// Nothing noteworthy
	pet := components.Pet{RegionsDiscovered: []string{"Pomerol"}, CountriesExplored: []string{"France"}}
	impact = e.CalculateImpact(pet, components.WineTasting{Region: "Pomerol", Country: "France"}, nil)
	if len(impact.SpecialEffects) != 0 {
		t.Errorf("special effects = %v, want none", impact.SpecialEffects)
	}

	// 1.5 is not above the threshold
	mappings = []components.GrowthMapping{{Region: "Pomerol", RarityMultiplier: components.Ptr(1.5)}}
	impact = e.CalculateImpact(pet, components.WineTasting{Region: "Pomerol"}, mappings)
	if impact.Rare || len(impact.SpecialEffects) != 0 {
		t.Errorf("rarity 1.5 should not be rare: %v", impact.SpecialEffects)
	}
}
