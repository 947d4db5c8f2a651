// Package fuzzy applies the fuzzy-logic adjustment stage: intensification,
// attenuation, negation parity, contextual boosts, and mixed-emotion
// suppression, in that fixed order.
package fuzzy

import (
	"math"

	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
)

// Detection threshold for "high" scores when looking for mixed emotions.
// The suppression threshold applied afterwards comes from configuration.
const highScoreThreshold = 0.6

// Context boost caps and per-occurrence increments.
const (
	emoticonBoostStep    = 0.1
	emoticonBoostCap     = 0.2
	exclamationBoostStep = 0.05
	exclamationBoostCap  = 0.15
	questionBoostStep    = 0.05
	questionBoostCap     = 0.1
)

// Processor applies the adjustment pipeline. Stateless beyond configuration;
// safe for concurrent use.
type Processor struct {
	opts config.FuzzyOptions
}

// NewProcessor creates a processor from analyzer options.
func NewProcessor(opts config.Options) *Processor {
	return &Processor{opts: opts.Fuzzy}
}

// Apply runs the full adjustment sequence over base scores. Every stage
// returns a new map; the input is never mutated.
func (p *Processor) Apply(base domain.Scores, in *domain.Input) domain.Scores {
	if len(base) == 0 {
		return domain.Scores{}
	}

	adjusted := base.Clone()
	if len(in.Intensifiers) > 0 {
		adjusted = p.intensifyAll(adjusted, len(in.Intensifiers))
	}
	if len(in.Attenuators) > 0 {
		adjusted = p.attenuateAll(adjusted, len(in.Attenuators))
	}
	if len(in.Negations) > 0 {
		adjusted = Negate(adjusted, len(in.Negations))
	}
	adjusted = p.applyContext(adjusted, in)
	adjusted = p.CombineEmotions(adjusted)
	return clampAll(adjusted)
}

// Intensify multiplies a positive score by 1 + count*factor, capped at 1.
// Zero scores and a zero count are no-ops.
func (p *Processor) Intensify(score float64, count int) float64 {
	if count == 0 || score <= 0 {
		return score
	}
	factor := 1.0 + float64(count)*p.opts.IntensificationFactor
	return min(1.0, score*factor)
}

// Attenuate decays a positive score by factor^count. There is no floor beyond
// the natural decay toward zero.
func (p *Processor) Attenuate(score float64, count int) float64 {
	if count == 0 || score <= 0 {
		return score
	}
	return score * math.Pow(p.opts.AttenuationFactor, float64(count))
}

// Negate inverts every score symmetrically (1 - score) when the negation
// count is odd; an even count (including zero) is the identity.
func Negate(scores domain.Scores, count int) domain.Scores {
	if count%2 == 0 {
		return scores
	}
	negated := make(domain.Scores, len(scores))
	for sentiment, score := range scores {
		negated[sentiment] = 1.0 - score
	}
	return negated
}

func (p *Processor) intensifyAll(scores domain.Scores, count int) domain.Scores {
	out := make(domain.Scores, len(scores))
	for sentiment, score := range scores {
		out[sentiment] = p.Intensify(score, count)
	}
	return out
}

func (p *Processor) attenuateAll(scores domain.Scores, count int) domain.Scores {
	out := make(domain.Scores, len(scores))
	for sentiment, score := range scores {
		out[sentiment] = p.Attenuate(score, count)
	}
	return out
}

// applyContext nudges scores from non-verbal cues: emoticons lift alegria,
// exclamations lift the currently dominant sentiment (determined before any
// boost), and questions lift sorpresa and informacion. Each boost is additive
// and independently capped.
func (p *Processor) applyContext(scores domain.Scores, in *domain.Input) domain.Scores {
	adjusted := scores.Clone()

	if n := len(in.Emoticons); n > 0 {
		if current, ok := adjusted[domain.Alegria]; ok {
			boost := min(emoticonBoostCap, float64(n)*emoticonBoostStep)
			adjusted[domain.Alegria] = min(1.0, current+boost)
		}
	}

	if in.ExclamationCount > 0 {
		if dominant, ok := scores.Dominant(); ok {
			boost := min(exclamationBoostCap, float64(in.ExclamationCount)*exclamationBoostStep)
			adjusted[dominant] = min(1.0, adjusted[dominant]+boost)
		}
	}

	if in.QuestionCount > 0 {
		boost := min(questionBoostCap, float64(in.QuestionCount)*questionBoostStep)
		for _, sentiment := range []domain.Sentiment{domain.Sorpresa, domain.Informacion} {
			if current, ok := adjusted[sentiment]; ok {
				adjusted[sentiment] = min(1.0, current+boost)
			}
		}
	}

	return adjusted
}

// CombineEmotions suppresses secondary high scores when several sentiments
// are simultaneously strong. The top-ranked sentiment is exempt; each lower
// rank above the configured threshold keeps max(0.3, 1 - rank*0.2) of its
// score. Zero or one high score leaves the map unchanged.
func (p *Processor) CombineEmotions(scores domain.Scores) domain.Scores {
	if len(scores) == 0 {
		return domain.Scores{}
	}

	high := 0
	for _, score := range scores {
		if score > highScoreThreshold {
			high++
		}
	}
	if high <= 1 {
		return scores
	}

	combined := scores.Clone()
	for rank, sentiment := range scores.Ranked() {
		if rank == 0 {
			continue
		}
		if score := scores[sentiment]; score > p.opts.MixedEmotionThreshold {
			retention := max(0.3, 1.0-float64(rank)*0.2)
			combined[sentiment] = score * retention
		}
	}
	return combined
}

func clampAll(scores domain.Scores) domain.Scores {
	out := make(domain.Scores, len(scores))
	for sentiment, score := range scores {
		out[sentiment] = max(0.0, min(1.0, score))
	}
	return out
}
