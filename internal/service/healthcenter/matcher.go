package healthcenter

import "strings"

// Match scores.
const (
	ScoreSameLocation      = 0
	ScoreDifferentLocation = 100

	// MatchThreshold is the cut-off below which a center counts as nearby.
	MatchThreshold = 50
)

// LocationMatcher scores how far a user's location is from a center's
// location. Lower is closer.
type LocationMatcher interface {
	Score(userLocation, centerLocation string) int
}

// SubstringMatcher treats a case-insensitive substring match as "same
// location" and everything else as far away. It stands in for a real
// geocoding routine.
type SubstringMatcher struct{}

func NewSubstringMatcher() LocationMatcher {
	return SubstringMatcher{}
}

func (SubstringMatcher) Score(userLocation, centerLocation string) int {
	if strings.Contains(strings.ToLower(centerLocation), strings.ToLower(userLocation)) {
		return ScoreSameLocation
	}
	return ScoreDifferentLocation
}
