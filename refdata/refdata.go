// Package refdata loads the reference tables consumed by the growth engine:
// growth mappings, evolution stages and tasting journals, all stored as CSV.
package refdata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/vinopet/components"
)

//go:embed data/mappings.csv
var defaultMappingsCSV []byte

//go:embed data/stages.csv
var defaultStagesCSV []byte

//go:embed data/journal.csv
var sampleJournalCSV []byte

// ErrUnknownQuality is returned for a journal row whose quality cannot be parsed.
var ErrUnknownQuality = errors.New("unknown quality assessment")

// listSep separates multi-valued cells (grape varieties, expertise bonuses).
const listSep = "|"

// MappingRow is the CSV form of a growth mapping. Empty numeric cells mean "unset".
type MappingRow struct {
	ID                string `csv:"id"`
	Region            string `csv:"region"`
	Country           string `csv:"country"`
	Quality           string `csv:"quality_level"`
	GrapeVariety      string `csv:"grape_variety"`
	BaseExperience    string `csv:"base_experience"`
	HealthEffect      string `csv:"health_effect"`
	HappinessEffect   string `csv:"happiness_effect"`
	EnergyEffect      string `csv:"energy_effect"`
	RarityMultiplier  string `csv:"rarity_multiplier"`
	EvolutionCatalyst string `csv:"evolution_catalyst"`
	ExpertiseBonus    string `csv:"expertise_bonus"` // bucket:gain|bucket:gain
}

// StageRow is the CSV form of an evolution stage.
type StageRow struct {
	ID                string `csv:"id"`
	SpeciesID         string `csv:"species_id"`
	Number            int    `csv:"stage_number"`
	Name              string `csv:"name"`
	Level             string `csv:"level"`
	RegionsDiscovered string `csv:"regions_discovered"`
	RareWines         string `csv:"rare_wines"`
	TotalExpertise    string `csv:"total_expertise"`
}

// JournalRow is one logged tasting in a journal file.
type JournalRow struct {
	Pet            string `csv:"pet"`
	TastedAt       string `csv:"tasted_at"`
	WineName       string `csv:"wine_name"`
	Producer       string `csv:"producer"`
	Vintage        string `csv:"vintage"`
	Region         string `csv:"region"`
	Country        string `csv:"country"`
	GrapeVarieties string `csv:"grape_varieties"`
	Quality        string `csv:"quality_assessment"`
}

// JournalEntry is a parsed journal row.
type JournalEntry struct {
	Pet     string
	At      time.Time
	Tasting components.WineTasting
}

// LoadMappings parses a growth mapping table.
func LoadMappings(r io.Reader) ([]components.GrowthMapping, error) {
	var rows []MappingRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading mappings: %w", err)
	}

	mappings := make([]components.GrowthMapping, 0, len(rows))
	for i, row := range rows {
		m, err := row.toMapping()
		if err != nil {
			return nil, fmt.Errorf("mapping row %d (%s): %w", i+1, row.ID, err)
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

func (row MappingRow) toMapping() (components.GrowthMapping, error) {
	m := components.GrowthMapping{
		ID:           row.ID,
		Region:       strings.TrimSpace(row.Region),
		Country:      strings.TrimSpace(row.Country),
		GrapeVariety: strings.TrimSpace(row.GrapeVariety),
	}
	if row.Quality != "" {
		q, ok := components.ParseQuality(row.Quality)
		if !ok {
			return m, fmt.Errorf("%w: %q", ErrUnknownQuality, row.Quality)
		}
		m.Quality = q
	}

	var err error
	if m.BaseExperience, err = optionalInt(row.BaseExperience); err != nil {
		return m, fmt.Errorf("base_experience: %w", err)
	}
	if m.HealthEffect, err = optionalInt(row.HealthEffect); err != nil {
		return m, fmt.Errorf("health_effect: %w", err)
	}
	if m.HappinessEffect, err = optionalInt(row.HappinessEffect); err != nil {
		return m, fmt.Errorf("happiness_effect: %w", err)
	}
	if m.EnergyEffect, err = optionalInt(row.EnergyEffect); err != nil {
		return m, fmt.Errorf("energy_effect: %w", err)
	}
	if m.RarityMultiplier, err = optionalFloat(row.RarityMultiplier); err != nil {
		return m, fmt.Errorf("rarity_multiplier: %w", err)
	}
	if s := strings.TrimSpace(row.EvolutionCatalyst); s != "" {
		if m.EvolutionCatalyst, err = strconv.ParseBool(s); err != nil {
			return m, fmt.Errorf("evolution_catalyst: %w", err)
		}
	}
	if m.ExpertiseBonus, err = parseExpertiseBonus(row.ExpertiseBonus); err != nil {
		return m, fmt.Errorf("expertise_bonus: %w", err)
	}
	return m, nil
}

// parseExpertiseBonus parses "french:8|italian:3".
func parseExpertiseBonus(s string) (map[components.Bucket]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	bonus := make(map[components.Bucket]int)
	for _, part := range strings.Split(s, listSep) {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("malformed entry %q", part)
		}
		bucket := components.Bucket(strings.TrimSpace(name))
		if !isBucket(bucket) {
			return nil, fmt.Errorf("unknown bucket %q", name)
		}
		gain, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("bucket %s: %w", bucket, err)
		}
		bonus[bucket] = gain
	}
	return bonus, nil
}

func isBucket(b components.Bucket) bool {
	for _, known := range components.Buckets {
		if b == known {
			return true
		}
	}
	return false
}

// LoadStages parses an evolution stage table and indexes it.
func LoadStages(r io.Reader) (*Catalog, error) {
	var rows []StageRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading stages: %w", err)
	}

	stages := make([]components.EvolutionStage, 0, len(rows))
	for i, row := range rows {
		s := components.EvolutionStage{
			ID:        row.ID,
			SpeciesID: row.SpeciesID,
			Number:    row.Number,
			Name:      row.Name,
		}
		req := &s.Requirements
		var err error
		if req.Level, err = optionalInt(row.Level); err != nil {
			return nil, fmt.Errorf("stage row %d (%s) level: %w", i+1, row.ID, err)
		}
		if req.RegionsDiscovered, err = optionalInt(row.RegionsDiscovered); err != nil {
			return nil, fmt.Errorf("stage row %d (%s) regions_discovered: %w", i+1, row.ID, err)
		}
		if req.RareWines, err = optionalInt(row.RareWines); err != nil {
			return nil, fmt.Errorf("stage row %d (%s) rare_wines: %w", i+1, row.ID, err)
		}
		if req.TotalExpertise, err = optionalInt(row.TotalExpertise); err != nil {
			return nil, fmt.Errorf("stage row %d (%s) total_expertise: %w", i+1, row.ID, err)
		}
		stages = append(stages, s)
	}
	return NewCatalog(stages)
}

// LoadJournal parses a tasting journal.
func LoadJournal(r io.Reader) ([]JournalEntry, error) {
	var rows []JournalRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}

	entries := make([]JournalEntry, 0, len(rows))
	for i, row := range rows {
		at, err := time.Parse(time.RFC3339, strings.TrimSpace(row.TastedAt))
		if err != nil {
			return nil, fmt.Errorf("journal row %d: tasted_at: %w", i+1, err)
		}
		quality, ok := components.ParseQuality(row.Quality)
		if !ok {
			return nil, fmt.Errorf("journal row %d: %w: %q", i+1, ErrUnknownQuality, row.Quality)
		}
		vintage := 0
		if v := strings.TrimSpace(row.Vintage); v != "" {
			// Non-numeric vintages (NV) stay 0
			vintage, _ = strconv.Atoi(v)
		}
		entries = append(entries, JournalEntry{
			Pet: strings.TrimSpace(row.Pet),
			At:  at,
			Tasting: components.WineTasting{
				WineName:       row.WineName,
				Producer:       row.Producer,
				Vintage:        vintage,
				Region:         strings.TrimSpace(row.Region),
				Country:        strings.TrimSpace(row.Country),
				GrapeVarieties: splitList(row.GrapeVarieties),
				Quality:        quality,
			},
		})
	}
	return entries, nil
}

// DefaultMappings returns the embedded growth mapping table.
func DefaultMappings() ([]components.GrowthMapping, error) {
	return LoadMappings(bytes.NewReader(defaultMappingsCSV))
}

// DefaultCatalog returns the embedded evolution stage table.
func DefaultCatalog() (*Catalog, error) {
	return LoadStages(bytes.NewReader(defaultStagesCSV))
}

// SampleJournal returns the embedded example tasting journal.
func SampleJournal() ([]JournalEntry, error) {
	return LoadJournal(bytes.NewReader(sampleJournalCSV))
}

func optionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, listSep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
