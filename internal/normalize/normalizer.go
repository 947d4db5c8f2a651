// Package normalize clamps and min-max normalizes sentiment scores and
// computes the composite confidence of an analysis.
package normalize

import (
	"fmt"
	"math"

	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

// Confidence sub-factor weights.
const (
	keywordConfidenceWeight      = 0.4
	distributionConfidenceWeight = 0.3
	consistencyConfidenceWeight  = 0.2
	thresholdConfidenceWeight    = 0.1
)

// Normalizer is stateless beyond configuration; safe for concurrent use.
type Normalizer struct {
	thresholds    map[domain.Sentiment]float64
	roundDecimals int
}

// New creates a normalizer from analyzer options.
func New(opts config.Options) *Normalizer {
	return &Normalizer{
		thresholds:    opts.SentimentThresholds,
		roundDecimals: opts.Output.RoundDecimals,
	}
}

// NormalizeScores clamps every score to [0, 1], min-max normalizes across the
// sentiment set, and rounds to the configured precision. When all scores are
// equal, every sentiment maps to 0.5, preserving "no information" semantics
// without dividing by zero. A non-finite score fails with a normalization
// error.
func (n *Normalizer) NormalizeScores(scores domain.Scores) (domain.Scores, error) {
	if len(scores) == 0 {
		return domain.Scores{}, nil
	}

	capped := make(domain.Scores, len(scores))
	for sentiment, score := range scores {
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, apperrors.Normalization(
				fmt.Sprintf("invalid score for %s: %v", sentiment, score))
		}
		capped[sentiment] = max(0.0, min(1.0, score))
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, score := range capped {
		lo = min(lo, score)
		hi = max(hi, score)
	}

	normalized := make(domain.Scores, len(capped))
	for sentiment, score := range capped {
		if hi == lo {
			normalized[sentiment] = 0.5
		} else {
			normalized[sentiment] = (score - lo) / (hi - lo)
		}
		normalized[sentiment] = roundTo(normalized[sentiment], n.roundDecimals)
	}
	return normalized, nil
}

// Confidence blends four weighted sub-factors: keyword volume, score
// distribution spread, dominance consistency, and threshold attainment.
// Empty scores yield 0; non-empty scores always yield at least the keyword
// floor contribution.
func (n *Normalizer) Confidence(scores domain.Scores, matched map[domain.Sentiment][]string) float64 {
	if len(scores) == 0 {
		return 0.0
	}

	confidence := keywordConfidence(matched)*keywordConfidenceWeight +
		distributionConfidence(scores)*distributionConfidenceWeight +
		consistencyConfidence(scores)*consistencyConfidenceWeight +
		n.thresholdConfidence(scores)*thresholdConfidenceWeight

	return max(0.0, min(1.0, confidence))
}

// Dominant returns the arg-max sentiment, ties resolved by canonical order.
func (n *Normalizer) Dominant(scores domain.Scores) (domain.Sentiment, bool) {
	return scores.Dominant()
}

// Secondary returns the next count sentiments after the dominant one, by
// descending score with canonical-order tie-breaks.
func (n *Normalizer) Secondary(scores domain.Scores, count int) []domain.Sentiment {
	ranked := scores.Ranked()
	if len(ranked) <= 1 {
		return []domain.Sentiment{}
	}
	rest := ranked[1:]
	if len(rest) > count {
		rest = rest[:count]
	}
	return append([]domain.Sentiment{}, rest...)
}

// keywordConfidence saturates at 5 matched keywords and floors at 0.1 when
// nothing matched.
func keywordConfidence(matched map[domain.Sentiment][]string) float64 {
	total := 0
	for _, words := range matched {
		total += len(words)
	}
	if total == 0 {
		return 0.1
	}
	return min(1.0, float64(total)/5.0)
}

// distributionConfidence rewards clear separation between the top and bottom
// scores.
func distributionConfidence(scores domain.Scores) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, score := range scores {
		lo = min(lo, score)
		hi = max(hi, score)
	}
	return min(1.0, (hi-lo)*2)
}

// consistencyConfidence penalizes multiple simultaneously dominant sentiments.
func consistencyConfidence(scores domain.Scores) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	high := 0
	for _, score := range scores {
		if score > 0.6 {
			high++
		}
	}
	switch {
	case high == 0:
		return 0.3
	case high == 1:
		return 0.9
	default:
		return max(0.3, 1.0-float64(high-1)*0.2)
	}
}

// thresholdConfidence is the fraction of sentiments meeting their configured
// threshold; 0.5 when no thresholds apply.
func (n *Normalizer) thresholdConfidence(scores domain.Scores) float64 {
	if len(scores) == 0 || len(n.thresholds) == 0 {
		return 0.5
	}
	met, total := 0, 0
	for sentiment, score := range scores {
		threshold, ok := n.thresholds[sentiment]
		if !ok {
			continue
		}
		total++
		if score >= threshold {
			met++
		}
	}
	if total == 0 {
		return 0.5
	}
	return float64(met) / float64(total)
}

func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
