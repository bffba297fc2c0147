package components

import (
	"slices"
	"strings"
)

// Quality is the WSET quality assessment of a wine, ordered faulty < outstanding.
type Quality string

const (
	QualityFaulty      Quality = "faulty"
	QualityPoor        Quality = "poor"
	QualityAcceptable  Quality = "acceptable"
	QualityGood        Quality = "good"
	QualityVeryGood    Quality = "very_good"
	QualityOutstanding Quality = "outstanding"
)

var qualityRanks = map[Quality]int{
	QualityFaulty:      1,
	QualityPoor:        2,
	QualityAcceptable:  3,
	QualityGood:        4,
	QualityVeryGood:    5,
	QualityOutstanding: 6,
}

// ParseQuality normalizes s ("Very Good", "very good", "very_good") into a Quality.
// Returns false for unrecognized values.
func ParseQuality(s string) (Quality, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.Join(strings.Fields(key), "_")
	q := Quality(key)
	if _, ok := qualityRanks[q]; !ok {
		return q, false
	}
	return q, true
}

// Rank returns the ordinal position of q (1 = faulty, 6 = outstanding), 0 if unknown.
func (q Quality) Rank() int {
	return qualityRanks[q]
}

// WineTasting is a completed tasting record from the capture pipeline.
// The engine treats it as read-only.
type WineTasting struct {
	WineName       string   `json:"wine_name"`
	Producer       string   `json:"producer"`
	Vintage        int      `json:"vintage,omitempty"`
	Region         string   `json:"region"`
	Country        string   `json:"country"`
	GrapeVarieties []string `json:"grape_varieties"`
	Quality        Quality  `json:"quality_assessment"`
}

// HasGrape reports whether the tasting lists the given grape variety.
func (t WineTasting) HasGrape(grape string) bool {
	return slices.Contains(t.GrapeVarieties, grape)
}
