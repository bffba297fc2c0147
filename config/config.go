// Package config provides configuration loading for the pet growth engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all growth engine configuration parameters.
type Config struct {
	Stats           StatsConfig           `yaml:"stats"`
	Expertise       ExpertiseConfig       `yaml:"expertise"`
	Decay           DecayConfig           `yaml:"decay"`
	MappingDefaults MappingDefaultsConfig `yaml:"mapping_defaults"`
	Discovery       DiscoveryConfig       `yaml:"discovery"`
	Quality         QualityConfig         `yaml:"quality"`
	Rarity          RarityConfig          `yaml:"rarity"`
	Evolution       EvolutionConfig       `yaml:"evolution"`
	Sim             SimConfig             `yaml:"sim"`
	Telemetry       TelemetryConfig       `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// StatsConfig bounds health, happiness and energy.
type StatsConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ExpertiseConfig holds regional expertise parameters.
// Countries maps a bucket name (french, italian, ...) to the countries that credit it.
type ExpertiseConfig struct {
	Max       int                 `yaml:"max"`
	BaseGain  int                 `yaml:"base_gain"`
	Countries map[string][]string `yaml:"countries"`
}

// DecayConfig holds stat attrition rates in points per day.
type DecayConfig struct {
	Health           float64 `yaml:"health"`
	Happiness        float64 `yaml:"happiness"`
	Energy           float64 `yaml:"energy"`
	HungryAfterHours float64 `yaml:"hungry_after_hours"`
	SleepyAfterHours float64 `yaml:"sleepy_after_hours"`
}

// MappingDefaultsConfig holds the values used when no growth mapping
// matches a tasting, or a matching mapping leaves a field unset.
type MappingDefaultsConfig struct {
	BaseExperience   int     `yaml:"base_experience"`
	Health           int     `yaml:"health"`
	Happiness        int     `yaml:"happiness"`
	Energy           int     `yaml:"energy"`
	RarityMultiplier float64 `yaml:"rarity_multiplier"`
}

// DiscoveryConfig holds bonus experience per new discovery.
type DiscoveryConfig struct {
	RegionBonus  int `yaml:"region_bonus"`
	CountryBonus int `yaml:"country_bonus"`
	GrapeBonus   int `yaml:"grape_bonus"`
}

// QualityConfig holds per-quality bonus lookups. Keys are quality names
// (faulty, poor, acceptable, good, very_good, outstanding); a missing key is 0.
type QualityConfig struct {
	Experience map[string]int `yaml:"experience"`
	Health     map[string]int `yaml:"health"`
	Happiness  map[string]int `yaml:"happiness"`
	Energy     map[string]int `yaml:"energy"`
}

// RarityConfig holds rare wine parameters.
type RarityConfig struct {
	NoticeThreshold float64 `yaml:"notice_threshold"` // multiplier above this counts as a rare wine
}

// EvolutionConfig holds evolution rewards.
type EvolutionConfig struct {
	PrestigePerStage int `yaml:"prestige_per_stage"`
}

// SimConfig holds headless cellar simulation parameters.
type SimConfig struct {
	TickHours float64 `yaml:"tick_hours"`
	Pets      int     `yaml:"pets"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowHours float64 `yaml:"stats_window_hours"`
	MilestoneStreaks []int   `yaml:"milestone_streaks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CountryBucket map[string]string // country -> expertise bucket name
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Stats.Min > c.Stats.Max {
		return fmt.Errorf("stats: min %d exceeds max %d", c.Stats.Min, c.Stats.Max)
	}
	if c.Expertise.Max < 0 {
		return fmt.Errorf("expertise: negative max %d", c.Expertise.Max)
	}
	if c.MappingDefaults.RarityMultiplier < 0 {
		return fmt.Errorf("mapping_defaults: negative rarity multiplier %v", c.MappingDefaults.RarityMultiplier)
	}
	seen := make(map[string]string)
	for bucket, countries := range c.Expertise.Countries {
		for _, country := range countries {
			if prev, ok := seen[country]; ok && prev != bucket {
				return fmt.Errorf("expertise: country %q assigned to both %s and %s", country, prev, bucket)
			}
			seen[country] = bucket
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CountryBucket = make(map[string]string)
	for bucket, countries := range c.Expertise.Countries {
		for _, country := range countries {
			c.Derived.CountryBucket[country] = bucket
		}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
