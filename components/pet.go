package components

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Mood is derived from happiness; it is never stored as a transition history.
type Mood string

const (
	MoodEcstatic  Mood = "ecstatic"
	MoodVeryHappy Mood = "very_happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very_sad"
)

// Bucket names one of the five regional expertise scores.
type Bucket string

const (
	BucketFrench   Bucket = "french"
	BucketItalian  Bucket = "italian"
	BucketSpanish  Bucket = "spanish"
	BucketGerman   Bucket = "german"
	BucketNewWorld Bucket = "new_world"
)

// Buckets lists all expertise buckets in display order.
var Buckets = []Bucket{BucketFrench, BucketItalian, BucketSpanish, BucketGerman, BucketNewWorld}

// Expertise holds the five regional expertise scores, each in [0, max].
type Expertise struct {
	French   int `json:"french"`
	Italian  int `json:"italian"`
	Spanish  int `json:"spanish"`
	German   int `json:"german"`
	NewWorld int `json:"new_world"`
}

// Get returns the score for bucket b, 0 for an unknown bucket.
func (e Expertise) Get(b Bucket) int {
	switch b {
	case BucketFrench:
		return e.French
	case BucketItalian:
		return e.Italian
	case BucketSpanish:
		return e.Spanish
	case BucketGerman:
		return e.German
	case BucketNewWorld:
		return e.NewWorld
	}
	return 0
}

// Set assigns the score for bucket b. Unknown buckets are ignored.
func (e *Expertise) Set(b Bucket, v int) {
	switch b {
	case BucketFrench:
		e.French = v
	case BucketItalian:
		e.Italian = v
	case BucketSpanish:
		e.Spanish = v
	case BucketGerman:
		e.German = v
	case BucketNewWorld:
		e.NewWorld = v
	}
}

// Total returns the sum of all five scores.
func (e Expertise) Total() int {
	return e.French + e.Italian + e.Spanish + e.German + e.NewWorld
}

// Pet is the persistent companion. Callers load a snapshot, hand it to the
// engine, and persist the returned replacement.
type Pet struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	SpeciesID string    `json:"species_id"`
	StageID   string    `json:"stage_id"`
	Name      string    `json:"name"`

	// Vitals, bounded by stat limits
	Health    int `json:"health"`
	Happiness int `json:"happiness"`
	Energy    int `json:"energy"`

	// Progression. Level is a cache of LevelFor(TotalExperience).
	TotalExperience int `json:"total_experience"`
	Level           int `json:"level"`
	WineKnowledge   int `json:"wine_knowledge_score"`

	// Discovery sets, insertion ordered, never shrink
	RegionsDiscovered    []string `json:"regions_discovered"`
	CountriesExplored    []string `json:"countries_explored"`
	GrapeVarietiesTasted []string `json:"grape_varieties_tasted"`
	RareWinesEncountered int      `json:"rare_wines_encountered"`

	Expertise Expertise `json:"expertise"`

	LastFedAt         time.Time `json:"last_fed_at"`
	LastInteractionAt time.Time `json:"last_interaction_at"`
	DailyStreak       int       `json:"daily_streak"`
	LongestStreak     int       `json:"longest_streak"`

	Mood           Mood `json:"mood"`
	IsHungry       bool `json:"is_hungry"`
	IsSleepy       bool `json:"is_sleepy"`
	BattleWins     int  `json:"battle_wins"`
	BattleLosses   int  `json:"battle_losses"`
	PrestigePoints int  `json:"prestige_points"`
}

// Clone returns a deep copy of p so the copy's discovery sets can be
// extended without touching the original.
func (p Pet) Clone() Pet {
	p.RegionsDiscovered = slices.Clone(p.RegionsDiscovered)
	p.CountriesExplored = slices.Clone(p.CountriesExplored)
	p.GrapeVarietiesTasted = slices.Clone(p.GrapeVarietiesTasted)
	return p
}

// HasRegion reports whether region was already discovered.
func (p Pet) HasRegion(region string) bool {
	return slices.Contains(p.RegionsDiscovered, region)
}

// HasCountry reports whether country was already explored.
func (p Pet) HasCountry(country string) bool {
	return slices.Contains(p.CountriesExplored, country)
}

// HasGrape reports whether grape was already tasted.
func (p Pet) HasGrape(grape string) bool {
	return slices.Contains(p.GrapeVarietiesTasted, grape)
}
