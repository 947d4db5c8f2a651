package domain

// Sentiment is one of the six fixed categories the classifier distinguishes.
type Sentiment string

const (
	Alegria      Sentiment = "alegria"
	Tristeza     Sentiment = "tristeza"
	Enojo        Sentiment = "enojo"
	Preocupacion Sentiment = "preocupacion"
	Informacion  Sentiment = "informacion"
	Sorpresa     Sentiment = "sorpresa"
)

// Sentiments is the canonical category order. Every "first wins" tie-break in
// the pipeline iterates in this order, so results are deterministic even though
// Go map iteration is not.
var Sentiments = []Sentiment{Alegria, Tristeza, Enojo, Preocupacion, Informacion, Sorpresa}

// Scores maps each sentiment to a value in [0, 1]. Scores are not required to
// sum to 1. Pipeline stages treat a Scores value as immutable and return a new
// map instead of mutating in place.
type Scores map[Sentiment]float64

// Clone returns an independent copy of s.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Dominant returns the sentiment with the highest score, resolving ties by
// canonical order. The second return is false for an empty map.
func (s Scores) Dominant() (Sentiment, bool) {
	if len(s) == 0 {
		return "", false
	}
	var best Sentiment
	bestScore := -1.0
	for _, sentiment := range Sentiments {
		score, ok := s[sentiment]
		if !ok {
			continue
		}
		if score > bestScore {
			best = sentiment
			bestScore = score
		}
	}
	if bestScore < 0 {
		return "", false
	}
	return best, true
}

// Ranked returns the sentiments present in s sorted by descending score,
// ties broken by canonical order.
func (s Scores) Ranked() []Sentiment {
	ranked := make([]Sentiment, 0, len(s))
	for _, sentiment := range Sentiments {
		if _, ok := s[sentiment]; ok {
			ranked = append(ranked, sentiment)
		}
	}
	// Insertion sort keeps the canonical order stable for equal scores.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && s[ranked[j]] > s[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked
}

// EmptyKeywordMatches returns a match map with an empty (non-nil) entry for
// every category, the shape consumers expect even when nothing matched.
func EmptyKeywordMatches() map[Sentiment][]string {
	m := make(map[Sentiment][]string, len(Sentiments))
	for _, sentiment := range Sentiments {
		m[sentiment] = []string{}
	}
	return m
}
