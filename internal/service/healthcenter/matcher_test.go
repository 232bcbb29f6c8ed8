package healthcenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstringMatcherScore(t *testing.T) {
	matcher := NewSubstringMatcher()

	tests := []struct {
		name           string
		userLocation   string
		centerLocation string
		want           int
	}{
		{"exact substring", "Lagos", "456 Main St, Lagos", ScoreSameLocation},
		{"case insensitive", "lagos", "456 Main St, LAGOS", ScoreSameLocation},
		{"no match", "Kano", "456 Main St, Lagos", ScoreDifferentLocation},
		{"full address", "456 Main St, Lagos", "456 Main St, Lagos", ScoreSameLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Score(tt.userLocation, tt.centerLocation))
		})
	}
}

func TestMatchThreshold(t *testing.T) {
	matcher := NewSubstringMatcher()

	assert.Less(t, matcher.Score("Lagos", "456 Main St, Lagos"), MatchThreshold)
	assert.GreaterOrEqual(t, matcher.Score("Kano", "456 Main St, Lagos"), MatchThreshold)
}
