package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/vinopet/components"
	"github.com/pthm-cable/vinopet/config"
	"github.com/pthm-cable/vinopet/refdata"
	"github.com/pthm-cable/vinopet/sim"
	"github.com/pthm-cable/vinopet/systems"
	"github.com/pthm-cable/vinopet/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mappingsPath := flag.String("mappings", "", "Growth mapping CSV (empty = built-in table)")
	stagesPath := flag.String("stages", "", "Evolution stage CSV (empty = built-in table)")
	journalPath := flag.String("journal", "", "Tasting journal CSV (empty = sample journal)")
	logStats := flag.Bool("log-stats", false, "Output stats and milestones via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in hours (0 = use config)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for the final pet snapshot")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	idleDays := flag.Int("idle-days", 3, "Days to keep ticking after the last tasting")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	mappings, catalog, journal, err := loadReference(*mappingsPath, *stagesPath, *journalPath)
	if err != nil {
		slog.Error("failed to load reference data", "error", err)
		os.Exit(1)
	}
	sort.SliceStable(journal, func(i, j int) bool { return journal[i].At.Before(journal[j].At) })
	if len(journal) == 0 {
		slog.Warn("journal is empty, nothing to replay")
		return
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	// Use config stats window if not overridden by CLI
	windowHours := cfg.Telemetry.StatsWindowHours
	if *statsWindow > 0 {
		windowHours = *statsWindow
	}

	start := journal[0].At
	recorder := telemetry.NewRecorder(
		telemetry.NewCollector(windowHours, start),
		telemetry.NewMilestoneDetector(cfg.Telemetry.MilestoneStreaks, cfg.Expertise.Max),
		output,
		logger,
		*logStats,
	)
	cellar := sim.NewCellar(systems.NewEngine(cfg, logger), catalog, mappings, recorder, logger)

	r := &replay{
		cellar:   cellar,
		recorder: recorder,
		step:     time.Duration(cfg.Sim.TickHours * float64(time.Hour)),
		clock:    start,
		limit:    cfg.Sim.Pets,
		species:  catalog.Species(),
		owner:    uuid.New(),
		pets:     make(map[string]uuid.UUID),
	}

	slog.Info("starting replay",
		"tastings", len(journal),
		"mappings", len(mappings),
		"species", len(r.species),
		"tick_hours", cfg.Sim.TickHours,
		"stats_window_hours", windowHours,
	)

	for _, entry := range journal {
		r.advance(entry.At)
		r.feed(entry)
	}
	end := r.clock.Add(time.Duration(*idleDays) * 24 * time.Hour)
	r.advance(end)

	pets := cellar.Pets()
	recorder.FlushFinal(end, pets)

	for _, p := range pets {
		slog.Info("pet",
			"name", p.Name,
			"stage", p.StageID,
			"level", p.Level,
			"experience", p.TotalExperience,
			"mood", string(p.Mood),
			"regions", len(p.RegionsDiscovered),
			"streak", p.LongestStreak,
		)
	}

	if *snapshotDir != "" {
		path, err := telemetry.SavePetSnapshot(&telemetry.PetSnapshot{
			Version: telemetry.SnapshotVersion,
			At:      end,
			Pets:    pets,
		}, *snapshotDir)
		if err != nil {
			slog.Error("failed to save snapshot", "error", err)
		} else {
			slog.Info("snapshot saved", "path", path)
		}
	}
}

// replay drives the cellar through a journal in simulated time.
type replay struct {
	cellar   *sim.Cellar
	recorder *telemetry.Recorder
	step     time.Duration
	clock    time.Time
	limit    int
	species  []string
	owner    uuid.UUID
	pets     map[string]uuid.UUID
}

// advance ticks the cellar forward in fixed steps up to until.
func (r *replay) advance(until time.Time) {
	if r.step <= 0 {
		r.step = time.Hour
	}
	for next := r.clock.Add(r.step); !next.After(until); next = next.Add(r.step) {
		r.tick(next)
	}
	if until.After(r.clock) {
		r.tick(until)
	}
}

func (r *replay) tick(now time.Time) {
	r.clock = now
	r.cellar.Tick(now)
	r.cellar.CheckEvolutions(now)
	r.recorder.Flush(now, r.cellar.Pets())
}

func (r *replay) feed(entry refdata.JournalEntry) {
	id, ok := r.pets[entry.Pet]
	if !ok {
		if r.limit > 0 && len(r.pets) >= r.limit {
			slog.Warn("cellar full, skipping tasting", "pet", entry.Pet, "wine", entry.Tasting.WineName)
			return
		}
		species := r.species[len(r.pets)%len(r.species)]
		pet, err := r.cellar.Adopt(r.owner, species, entry.Pet, entry.At)
		if err != nil {
			slog.Error("failed to adopt pet", "pet", entry.Pet, "error", err)
			return
		}
		id = pet.ID
		r.pets[entry.Pet] = id
	}

	if _, err := r.cellar.Feed(id, entry.Tasting, entry.At); err != nil {
		slog.Error("failed to feed pet", "pet", entry.Pet, "error", err)
	}
}

func loadReference(mappingsPath, stagesPath, journalPath string) ([]components.GrowthMapping, *refdata.Catalog, []refdata.JournalEntry, error) {
	mappings, err := loadOr(mappingsPath, refdata.LoadMappings, refdata.DefaultMappings)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("mappings: %w", err)
	}
	catalog, err := loadOr(stagesPath, refdata.LoadStages, refdata.DefaultCatalog)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("stages: %w", err)
	}
	if len(catalog.Species()) == 0 {
		return nil, nil, nil, fmt.Errorf("stages: no species defined")
	}
	journal, err := loadOr(journalPath, refdata.LoadJournal, refdata.SampleJournal)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("journal: %w", err)
	}
	return mappings, catalog, journal, nil
}

// loadOr parses the file at path, or returns the built-in table when path is empty.
func loadOr[T any](path string, parse func(io.Reader) (T, error), builtin func() (T, error)) (T, error) {
	if path == "" {
		return builtin()
	}
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return parse(f)
}
