package systems

import "github.com/pthm-cable/vinopet/components"

// Match weights for growth mapping resolution.
const (
	scoreRegion  = 10
	scoreCountry = 5
	scoreQuality = 3
	scoreGrape   = 2
)

// ResolveMapping returns the mapping that best matches the tasting.
// Ties go to the earliest mapping in the list. Returns false when no
// mapping scores above zero.
func ResolveMapping(tasting components.WineTasting, mappings []components.GrowthMapping) (components.GrowthMapping, bool) {
	bestIdx, bestScore := -1, 0
	for i := range mappings {
		// Strictly greater keeps the first of equal scores
		if s := ScoreMapping(tasting, mappings[i]); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	if bestIdx < 0 {
		return components.GrowthMapping{}, false
	}
	return mappings[bestIdx], true
}

// ScoreMapping sums the weights of every criterion the mapping shares with
// the tasting. Empty criteria never match.
func ScoreMapping(tasting components.WineTasting, m components.GrowthMapping) int {
	score := 0
	if m.Region != "" && m.Region == tasting.Region {
		score += scoreRegion
	}
	if m.Country != "" && m.Country == tasting.Country {
		score += scoreCountry
	}
	if m.Quality != "" && sameQuality(m.Quality, tasting.Quality) {
		score += scoreQuality
	}
	if m.GrapeVariety != "" && tasting.HasGrape(m.GrapeVariety) {
		score += scoreGrape
	}
	return score
}

// sameQuality compares qualities after normalization; unknown values compare raw.
func sameQuality(a, b components.Quality) bool {
	qa, okA := components.ParseQuality(string(a))
	qb, okB := components.ParseQuality(string(b))
	if okA && okB {
		return qa == qb
	}
	return a == b
}
