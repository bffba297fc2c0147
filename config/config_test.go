package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Stats.Min != 0 || cfg.Stats.Max != 100 {
		t.Errorf("stat limits = [%d,%d], want [0,100]", cfg.Stats.Min, cfg.Stats.Max)
	}
	if cfg.MappingDefaults.BaseExperience != 10 {
		t.Errorf("base experience = %d, want 10", cfg.MappingDefaults.BaseExperience)
	}
	if got := cfg.Quality.Experience["outstanding"]; got != 25 {
		t.Errorf("outstanding experience bonus = %d, want 25", got)
	}
	if got := cfg.Quality.Energy["poor"]; got != 0 {
		t.Errorf("poor energy bonus = %d, want 0", got)
	}
}

func TestDerivedCountryBucket(t *testing.T) {
	cfg := MustLoad("")

	tests := []struct {
		country string
		want    string
	}{
		{"France", "french"},
		{"Italy", "italian"},
		{"Spain", "spanish"},
		{"Germany", "german"},
		{"Chile", "new_world"},
		{"New Zealand", "new_world"},
		{"Portugal", ""},
	}
	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			if got := cfg.Derived.CountryBucket[tt.country]; got != tt.want {
				t.Errorf("CountryBucket[%q] = %q, want %q", tt.country, got, tt.want)
			}
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("decay:\n  happiness: 24\nexpertise:\n  countries:\n    new_world: [Portugal]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Decay.Happiness != 24 {
		t.Errorf("happiness decay = %v, want 24", cfg.Decay.Happiness)
	}
	// Untouched fields keep their defaults
	if cfg.Decay.Health != 5 {
		t.Errorf("health decay = %v, want default 5", cfg.Decay.Health)
	}
	if got := cfg.Derived.CountryBucket["Portugal"]; got != "new_world" {
		t.Errorf("Portugal bucket = %q, want new_world", got)
	}
	if got := cfg.Derived.CountryBucket["France"]; got != "french" {
		t.Errorf("France bucket = %q, want french", got)
	}
}

func TestLoadRejectsConflictingCountry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	data := []byte("expertise:\n  countries:\n    italian: [France]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for country credited to two buckets")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := MustLoad("")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Discovery != cfg.Discovery {
		t.Errorf("discovery = %+v, want %+v", loaded.Discovery, cfg.Discovery)
	}
}
