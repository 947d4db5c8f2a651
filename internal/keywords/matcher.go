package keywords

import (
	"strings"

	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
)

// Bonus weights by vocabulary category. A matched token earns the weight of
// the first category it belongs to (keyword beats synonym beats verb form);
// the summed bonus per sentiment is capped at maxWeightedBonus.
const (
	keywordWeight    = 0.3
	synonymWeight    = 0.2
	verbFormWeight   = 0.25
	maxWeightedBonus = 0.5
)

// Matcher finds vocabulary matches for tokens. It never fails; unknown
// sentiments and empty entries simply produce no matches.
type Matcher struct {
	dict Dictionary
}

// NewMatcher creates a matcher over the given dictionary.
func NewMatcher(dict Dictionary) *Matcher {
	return &Matcher{dict: dict}
}

// FindMatches returns, per sentiment, the tokens that matched its vocabulary.
// Matching is case-insensitive; the original token casing is preserved.
// A token is appended once per category it matches (keyword, first synonym
// group, first verb-form group), so duplicates are possible.
func (m *Matcher) FindMatches(tokens []string) map[domain.Sentiment][]string {
	matches := domain.EmptyKeywordMatches()
	if len(tokens) == 0 {
		return matches
	}

	for _, sentiment := range domain.Sentiments {
		entry, ok := m.dict[sentiment]
		if !ok {
			continue
		}
		for _, tok := range tokens {
			word := strings.ToLower(strings.TrimSpace(tok))
			if containsWord(entry.Keywords, word) {
				matches[sentiment] = append(matches[sentiment], tok)
			}
			for _, group := range entry.Synonyms {
				if containsWord(group, word) {
					matches[sentiment] = append(matches[sentiment], tok)
					break
				}
			}
			for _, group := range entry.VerbForms {
				if containsWord(group, word) {
					matches[sentiment] = append(matches[sentiment], tok)
					break
				}
			}
		}
	}
	return matches
}

// WordScores turns matches into per-sentiment score contributions: the
// sentiment's share of all matches plus a capped category-weighted bonus,
// the sum capped at 1.
func (m *Matcher) WordScores(matches map[domain.Sentiment][]string) domain.Scores {
	scores := make(domain.Scores, len(domain.Sentiments))
	for _, sentiment := range domain.Sentiments {
		scores[sentiment] = 0
	}

	total := 0
	for _, words := range matches {
		total += len(words)
	}
	if total == 0 {
		return scores
	}

	for _, sentiment := range domain.Sentiments {
		words := matches[sentiment]
		if len(words) == 0 {
			continue
		}
		base := float64(len(words)) / float64(total)
		scores[sentiment] = min(1.0, base+m.weightedBonus(sentiment, words))
	}
	return scores
}

// weightedBonus sums the per-token category weight, first applicable category
// only, capped at maxWeightedBonus.
func (m *Matcher) weightedBonus(sentiment domain.Sentiment, words []string) float64 {
	entry, ok := m.dict[sentiment]
	if !ok {
		return 0
	}

	bonus := 0.0
	for _, w := range words {
		word := strings.ToLower(w)
		switch {
		case containsWord(entry.Keywords, word):
			bonus += keywordWeight
		case inAnyGroup(entry.Synonyms, word):
			bonus += synonymWeight
		case inAnyGroup(entry.VerbForms, word):
			bonus += verbFormWeight
		}
	}
	return min(maxWeightedBonus, bonus)
}

func containsWord(words []string, lower string) bool {
	for _, w := range words {
		if strings.ToLower(w) == lower {
			return true
		}
	}
	return false
}

func inAnyGroup(groups [][]string, lower string) bool {
	for _, group := range groups {
		if containsWord(group, lower) {
			return true
		}
	}
	return false
}
