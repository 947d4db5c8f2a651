package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoresDominant(t *testing.T) {
	scores := Scores{Alegria: 0.2, Tristeza: 0.9, Enojo: 0.5}

	dominant, ok := scores.Dominant()
	require.True(t, ok)
	assert.Equal(t, Tristeza, dominant)
}

func TestScoresDominantTieUsesCanonicalOrder(t *testing.T) {
	scores := Scores{Sorpresa: 0.5, Enojo: 0.5, Tristeza: 0.5}

	dominant, ok := scores.Dominant()
	require.True(t, ok)
	assert.Equal(t, Tristeza, dominant)
}

func TestScoresDominantEmpty(t *testing.T) {
	_, ok := Scores{}.Dominant()
	assert.False(t, ok)
}

func TestScoresRanked(t *testing.T) {
	scores := Scores{Alegria: 0.1, Tristeza: 0.9, Enojo: 0.5, Sorpresa: 0.5}

	// Descending by score; the tie between enojo and sorpresa resolves in
	// canonical order.
	assert.Equal(t, []Sentiment{Tristeza, Enojo, Sorpresa, Alegria}, scores.Ranked())
}

func TestScoresCloneIsIndependent(t *testing.T) {
	original := Scores{Alegria: 0.5}
	clone := original.Clone()
	clone[Alegria] = 0.9

	assert.InDelta(t, 0.5, original[Alegria], 1e-9)
}

func TestQualityFor(t *testing.T) {
	assert.Equal(t, QualityHigh, QualityFor(0.8))
	assert.Equal(t, QualityHigh, QualityFor(0.95))
	assert.Equal(t, QualityMedium, QualityFor(0.6))
	assert.Equal(t, QualityMedium, QualityFor(0.79))
	assert.Equal(t, QualityLow, QualityFor(0.59))
	assert.Equal(t, QualityLow, QualityFor(0.0))
}

func TestPlaceholderResult(t *testing.T) {
	result := PlaceholderResult("texto fallido")

	assert.Equal(t, "texto fallido", result.Text)
	assert.Empty(t, result.Sentiments)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, QualityLow, result.AnalysisQuality)
	for _, sentiment := range Sentiments {
		assert.Empty(t, result.MatchedKeywords[sentiment])
	}
}

func TestSearchResultCloneIsDeep(t *testing.T) {
	original := &SearchResult{
		Path:            []string{"root", "leaf_1"},
		Scores:          Scores{Alegria: 0.9},
		MatchedKeywords: map[Sentiment][]string{Alegria: {"feliz"}},
	}
	clone := original.Clone()

	clone.Path[0] = "tampered"
	clone.Scores[Alegria] = 0.1
	clone.MatchedKeywords[Alegria][0] = "tampered"

	assert.Equal(t, "root", original.Path[0])
	assert.InDelta(t, 0.9, original.Scores[Alegria], 1e-9)
	assert.Equal(t, "feliz", original.MatchedKeywords[Alegria][0])
}
