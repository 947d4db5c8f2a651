package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

func newTestNormalizer() *Normalizer {
	return New(config.DefaultOptions())
}

func TestNormalizeScoresMinMax(t *testing.T) {
	n := newTestNormalizer()

	scores := domain.Scores{
		domain.Alegria:  0.8,
		domain.Tristeza: 0.2,
		domain.Enojo:    0.5,
	}
	normalized, err := n.NormalizeScores(scores)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, normalized[domain.Alegria], 1e-9)
	assert.InDelta(t, 0.0, normalized[domain.Tristeza], 1e-9)
	assert.InDelta(t, 0.5, normalized[domain.Enojo], 1e-9)
}

func TestNormalizeScoresEqualValues(t *testing.T) {
	n := newTestNormalizer()

	scores := domain.Scores{
		domain.Alegria:  0.4,
		domain.Tristeza: 0.4,
		domain.Enojo:    0.4,
	}
	normalized, err := n.NormalizeScores(scores)
	require.NoError(t, err)

	for sentiment := range scores {
		assert.InDelta(t, 0.5, normalized[sentiment], 1e-9)
	}
}

func TestNormalizeScoresClampsFirst(t *testing.T) {
	n := newTestNormalizer()

	scores := domain.Scores{
		domain.Alegria:  1.7,
		domain.Tristeza: -0.3,
	}
	normalized, err := n.NormalizeScores(scores)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, normalized[domain.Alegria], 1e-9)
	assert.InDelta(t, 0.0, normalized[domain.Tristeza], 1e-9)
}

func TestNormalizeScoresRounding(t *testing.T) {
	n := newTestNormalizer()

	scores := domain.Scores{
		domain.Alegria:  1.0,
		domain.Tristeza: 0.0,
		domain.Enojo:    1.0 / 3.0,
	}
	normalized, err := n.NormalizeScores(scores)
	require.NoError(t, err)

	assert.Equal(t, 0.333, normalized[domain.Enojo])
}

func TestNormalizeScoresRejectsNonFinite(t *testing.T) {
	n := newTestNormalizer()

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		scores := domain.Scores{domain.Alegria: bad, domain.Tristeza: 0.5}
		_, err := n.NormalizeScores(scores)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.TypeNormalization))
	}
}

func TestNormalizeScoresEmpty(t *testing.T) {
	n := newTestNormalizer()

	normalized, err := n.NormalizeScores(domain.Scores{})
	require.NoError(t, err)
	assert.Empty(t, normalized)
}

func TestConfidenceEmptyScores(t *testing.T) {
	n := newTestNormalizer()
	assert.Zero(t, n.Confidence(domain.Scores{}, nil))
}

func TestConfidenceKeywordFloor(t *testing.T) {
	n := newTestNormalizer()

	scores := domain.Scores{domain.Alegria: 0.5, domain.Tristeza: 0.5}
	// No matches: the keyword factor floors at 0.1 instead of zero.
	withNone := n.Confidence(scores, domain.EmptyKeywordMatches())

	matched := domain.EmptyKeywordMatches()
	matched[domain.Alegria] = []string{"feliz"}
	withOne := n.Confidence(scores, matched)

	assert.Greater(t, withOne, withNone)
	assert.Greater(t, withNone, 0.0)
}

func TestConfidenceKeywordSaturation(t *testing.T) {
	n := newTestNormalizer()
	scores := domain.Scores{domain.Alegria: 0.9, domain.Tristeza: 0.1}

	five := domain.EmptyKeywordMatches()
	five[domain.Alegria] = []string{"a", "b", "c", "d", "e"}
	ten := domain.EmptyKeywordMatches()
	ten[domain.Alegria] = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	assert.InDelta(t, n.Confidence(scores, five), n.Confidence(scores, ten), 1e-9)
}

func TestConfidenceRewardsSeparation(t *testing.T) {
	n := newTestNormalizer()
	matched := domain.EmptyKeywordMatches()

	flat := domain.Scores{domain.Alegria: 0.5, domain.Tristeza: 0.5}
	separated := domain.Scores{domain.Alegria: 0.9, domain.Tristeza: 0.1}

	assert.Greater(t, n.Confidence(separated, matched), n.Confidence(flat, matched))
}

func TestConfidenceSingleDominantBeatsMany(t *testing.T) {
	n := newTestNormalizer()
	matched := domain.EmptyKeywordMatches()

	single := domain.Scores{domain.Alegria: 0.9, domain.Tristeza: 0.1, domain.Enojo: 0.1}
	multiple := domain.Scores{domain.Alegria: 0.9, domain.Tristeza: 0.85, domain.Enojo: 0.8}

	assert.Greater(t, n.Confidence(single, matched), n.Confidence(multiple, matched))
}

func TestConfidenceStaysInRange(t *testing.T) {
	n := newTestNormalizer()

	matched := domain.EmptyKeywordMatches()
	matched[domain.Alegria] = []string{"a", "b", "c", "d", "e", "f"}
	scoresList := []domain.Scores{
		{domain.Alegria: 1.0, domain.Tristeza: 0.0},
		{domain.Alegria: 0.5},
		{domain.Alegria: 0.9, domain.Tristeza: 0.9, domain.Enojo: 0.9},
	}
	for _, scores := range scoresList {
		c := n.Confidence(scores, matched)
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 1.0)
	}
}

func TestConfidenceExactComposition(t *testing.T) {
	n := newTestNormalizer()

	scores := domain.Scores{domain.Alegria: 1.0, domain.Tristeza: 0.0}
	matched := domain.EmptyKeywordMatches()
	matched[domain.Alegria] = []string{"feliz"}

	// keyword 1/5, distribution min(1, 2.0)=1, consistency 0.9 (one high),
	// thresholds: alegria 1.0>=0.4, tristeza 0.0<0.4 -> 0.5
	want := 0.4*(1.0/5.0) + 0.3*1.0 + 0.2*0.9 + 0.1*0.5
	assert.InDelta(t, want, n.Confidence(scores, matched), 1e-9)
}

func TestDominantAndSecondary(t *testing.T) {
	n := newTestNormalizer()

	scores := domain.Scores{
		domain.Alegria:     0.9,
		domain.Informacion: 0.5,
		domain.Sorpresa:    0.3,
		domain.Tristeza:    0.1,
	}

	dominant, ok := n.Dominant(scores)
	require.True(t, ok)
	assert.Equal(t, domain.Alegria, dominant)

	secondary := n.Secondary(scores, 2)
	assert.Equal(t, []domain.Sentiment{domain.Informacion, domain.Sorpresa}, secondary)
}

func TestSecondarySmallMaps(t *testing.T) {
	n := newTestNormalizer()

	assert.Empty(t, n.Secondary(domain.Scores{}, 2))
	assert.Empty(t, n.Secondary(domain.Scores{domain.Alegria: 1.0}, 2))

	two := domain.Scores{domain.Alegria: 0.9, domain.Tristeza: 0.4}
	assert.Equal(t, []domain.Sentiment{domain.Tristeza}, n.Secondary(two, 2))
}

func TestDominantTieBreaksCanonically(t *testing.T) {
	n := newTestNormalizer()

	scores := domain.Scores{domain.Sorpresa: 0.7, domain.Tristeza: 0.7, domain.Alegria: 0.7}
	dominant, ok := n.Dominant(scores)
	require.True(t, ok)
	assert.Equal(t, domain.Alegria, dominant)
}
