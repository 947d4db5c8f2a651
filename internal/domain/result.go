package domain

import "time"

// Quality is the coarse confidence band attached to every analysis.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

// QualityFor maps a confidence value to its quality band.
func QualityFor(confidence float64) Quality {
	switch {
	case confidence >= 0.8:
		return QualityHigh
	case confidence >= 0.6:
		return QualityMedium
	default:
		return QualityLow
	}
}

// Modifiers summarizes the linguistic modifiers that were applied during the
// fuzzy adjustment stage.
type Modifiers struct {
	Intensifiers     []string `json:"intensifiers"`
	Attenuators      []string `json:"attenuators"`
	Negations        []string `json:"negations"`
	Emoticons        []string `json:"emoticons"`
	ExclamationCount int      `json:"exclamation_count"`
	QuestionCount    int      `json:"question_count"`
}

// SearchResult is the outcome of one decision-tree traversal. Cached entries
// are immutable snapshots; only Elapsed and CacheHits are rewritten on lookup.
type SearchResult struct {
	Path            []string
	Scores          Scores
	MatchedKeywords map[Sentiment][]string
	Confidence      float64
	Depth           int
	NodesVisited    int
	CacheHits       int
	Backtracks      int
	Elapsed         time.Duration
}

// Clone returns a deep copy so cached results stay untouched by callers.
func (r *SearchResult) Clone() *SearchResult {
	cp := *r
	cp.Path = append([]string(nil), r.Path...)
	cp.Scores = r.Scores.Clone()
	cp.MatchedKeywords = make(map[Sentiment][]string, len(r.MatchedKeywords))
	for k, v := range r.MatchedKeywords {
		cp.MatchedKeywords[k] = append([]string(nil), v...)
	}
	return &cp
}

// AnalysisResult is the externally visible artifact of one analyze call.
// ProcessingTime is in seconds.
type AnalysisResult struct {
	Text                string                 `json:"text"`
	Sentiments          Scores                 `json:"sentiments"`
	Confidence          float64                `json:"confidence"`
	ProcessingTime      float64                `json:"processing_time"`
	MatchedKeywords     map[Sentiment][]string `json:"matched_keywords"`
	TreePath            []string               `json:"tree_path"`
	ModifiersApplied    Modifiers              `json:"modifiers_applied"`
	DominantSentiment   Sentiment              `json:"dominant_sentiment,omitempty"`
	SecondarySentiments []Sentiment            `json:"secondary_sentiments"`
	AnalysisQuality     Quality                `json:"analysis_quality"`
}

// PlaceholderResult is the zero-confidence result substituted for a text that
// failed inside a batch. It never carries sentiments or a tree path.
func PlaceholderResult(text string) *AnalysisResult {
	return &AnalysisResult{
		Text:                text,
		Sentiments:          Scores{},
		Confidence:          0,
		MatchedKeywords:     EmptyKeywordMatches(),
		TreePath:            []string{},
		SecondarySentiments: []Sentiment{},
		AnalysisQuality:     QualityLow,
	}
}
