package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
)

func testDictionary() Dictionary {
	return Dictionary{
		domain.Alegria: {
			Keywords:  []string{"feliz", "contento", "alegre"},
			Synonyms:  [][]string{{"gozoso", "radiante"}},
			VerbForms: [][]string{{"alegrarse", "celebrar"}},
		},
		domain.Tristeza: {
			Keywords:  []string{"triste", "deprimido"},
			Synonyms:  [][]string{{"apenado"}},
			VerbForms: [][]string{{"llorar"}},
		},
	}
}

func TestFindMatchesBasic(t *testing.T) {
	m := NewMatcher(testDictionary())

	matches := m.FindMatches([]string{"estoy", "feliz", "hoy"})

	assert.Equal(t, []string{"feliz"}, matches[domain.Alegria])
	assert.Empty(t, matches[domain.Tristeza])
	// Every category is present even with no matches.
	for _, sentiment := range domain.Sentiments {
		_, ok := matches[sentiment]
		assert.True(t, ok, "missing entry for %s", sentiment)
	}
}

func TestFindMatchesCaseInsensitivePreservesCasing(t *testing.T) {
	m := NewMatcher(testDictionary())

	matches := m.FindMatches([]string{"FELIZ", "Triste"})

	assert.Equal(t, []string{"FELIZ"}, matches[domain.Alegria])
	assert.Equal(t, []string{"Triste"}, matches[domain.Tristeza])
}

func TestFindMatchesSynonymsAndVerbForms(t *testing.T) {
	m := NewMatcher(testDictionary())

	matches := m.FindMatches([]string{"radiante", "celebrar", "llorar"})

	assert.ElementsMatch(t, []string{"radiante", "celebrar"}, matches[domain.Alegria])
	assert.Equal(t, []string{"llorar"}, matches[domain.Tristeza])
}

func TestFindMatchesEmptyTokens(t *testing.T) {
	m := NewMatcher(testDictionary())

	matches := m.FindMatches(nil)

	for _, sentiment := range domain.Sentiments {
		assert.Empty(t, matches[sentiment])
	}
}

func TestWordScoresProportionalBase(t *testing.T) {
	m := NewMatcher(testDictionary())

	matches := domain.EmptyKeywordMatches()
	matches[domain.Alegria] = []string{"feliz"}
	matches[domain.Tristeza] = []string{"triste"}

	scores := m.WordScores(matches)

	// Each sentiment holds half the matches; the bonus adds the keyword
	// weight on top.
	assert.InDelta(t, 0.5+0.3, scores[domain.Alegria], 1e-9)
	assert.InDelta(t, 0.5+0.3, scores[domain.Tristeza], 1e-9)
	assert.Zero(t, scores[domain.Enojo])
}

func TestWordScoresCategoryWeights(t *testing.T) {
	m := NewMatcher(testDictionary())

	tests := []struct {
		name  string
		word  string
		bonus float64
	}{
		{"keyword", "feliz", 0.3},
		{"synonym", "gozoso", 0.2},
		{"verb form", "celebrar", 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A second match elsewhere keeps the base share below 1 so the
			// bonus is visible.
			matches := domain.EmptyKeywordMatches()
			matches[domain.Alegria] = []string{tt.word}
			matches[domain.Tristeza] = []string{"triste"}

			scores := m.WordScores(matches)
			assert.InDelta(t, 0.5+tt.bonus, scores[domain.Alegria], 1e-9)
		})
	}
}

func TestWordScoresBonusCap(t *testing.T) {
	m := NewMatcher(testDictionary())

	// Three keywords would earn 0.9 of bonus uncapped.
	matches := domain.EmptyKeywordMatches()
	matches[domain.Alegria] = []string{"feliz", "contento", "alegre"}
	matches[domain.Tristeza] = []string{"triste", "deprimido", "apenado"}

	scores := m.WordScores(matches)

	// Base 0.5 each, bonus capped at 0.5.
	assert.InDelta(t, 1.0, scores[domain.Alegria], 1e-9)
	assert.InDelta(t, 1.0, scores[domain.Tristeza], 1e-9)
}

func TestWordScoresTotalCap(t *testing.T) {
	m := NewMatcher(testDictionary())

	matches := domain.EmptyKeywordMatches()
	matches[domain.Alegria] = []string{"feliz", "contento", "alegre"}

	scores := m.WordScores(matches)
	for sentiment, score := range scores {
		assert.LessOrEqual(t, score, 1.0, "score for %s", sentiment)
		assert.GreaterOrEqual(t, score, 0.0, "score for %s", sentiment)
	}
}

func TestWordScoresNoMatches(t *testing.T) {
	m := NewMatcher(testDictionary())

	scores := m.WordScores(domain.EmptyKeywordMatches())

	for _, sentiment := range domain.Sentiments {
		assert.Zero(t, scores[sentiment])
	}
}

func TestParseDictionary(t *testing.T) {
	data := []byte(`{
		"alegria": {
			"keywords": ["feliz"],
			"synonyms": [["gozoso"]],
			"verb_forms": [["celebrar"]]
		}
	}`)

	dict, err := ParseDictionary(data)
	require.NoError(t, err)

	entry, ok := dict[domain.Alegria]
	require.True(t, ok)
	assert.Equal(t, []string{"feliz"}, entry.Keywords)
}

func TestParseDictionaryMalformed(t *testing.T) {
	_, err := ParseDictionary([]byte(`{not json`))
	require.Error(t, err)
}
