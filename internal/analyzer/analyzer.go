// Package analyzer orchestrates the full sentiment pipeline: preprocessing,
// keyword matching, decision-tree traversal, fuzzy adjustment, and score
// normalization.
package analyzer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
	"github.com/manuelguarniz/project-nlp-simplified/internal/fuzzy"
	"github.com/manuelguarniz/project-nlp-simplified/internal/keywords"
	"github.com/manuelguarniz/project-nlp-simplified/internal/logging"
	"github.com/manuelguarniz/project-nlp-simplified/internal/metrics"
	"github.com/manuelguarniz/project-nlp-simplified/internal/normalize"
	"github.com/manuelguarniz/project-nlp-simplified/internal/preprocess"
	"github.com/manuelguarniz/project-nlp-simplified/internal/tree"
)

// Quality blends confidence with processing speed; analyses slower than one
// second contribute nothing from the time factor.
const (
	qualityConfidenceWeight = 0.7
	qualityTimeWeight       = 0.3
	qualityTimeScaleSeconds = 1.0
)

// Analyzer wires the pipeline stages together. All stages are stateless or
// internally synchronized, so one Analyzer serves concurrent requests.
type Analyzer struct {
	opts         config.Options
	clock        clockwork.Clock
	preprocessor *preprocess.Preprocessor
	matcher      *keywords.Matcher
	searcher     *tree.Searcher
	fuzzy        *fuzzy.Processor
	normalizer   *normalize.Normalizer
}

// New builds an analyzer over a parsed decision tree and keyword dictionary.
func New(t *tree.Tree, dict keywords.Dictionary, opts config.Options, clock clockwork.Clock) *Analyzer {
	return &Analyzer{
		opts:         opts,
		clock:        clock,
		preprocessor: preprocess.New(opts),
		matcher:      keywords.NewMatcher(dict),
		searcher:     tree.NewSearcher(t, opts, clock),
		fuzzy:        fuzzy.NewProcessor(opts),
		normalizer:   normalize.New(opts),
	}
}

// Analyze runs the full pipeline over one text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	start := a.clock.Now()
	analysisID := uuid.NewString()
	log := logging.WithAnalysis(analysisID)

	result, err := a.analyze(ctx, log, text)
	elapsed := a.clock.Since(start).Seconds()

	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error", string(domain.QualityLow)).Inc()
		log.Error("analysis failed", "error", err, "duration_seconds", elapsed)
		return nil, err
	}

	result.ProcessingTime = elapsed
	result.AnalysisQuality = qualityFor(result.Confidence, elapsed)

	metrics.AnalysesTotal.WithLabelValues("ok", string(result.AnalysisQuality)).Inc()
	metrics.AnalysisDuration.Observe(elapsed)

	log.Info("analysis completed",
		"dominant_sentiment", result.DominantSentiment,
		"confidence", result.Confidence,
		"quality", result.AnalysisQuality,
		"duration_seconds", elapsed)
	return result, nil
}

func (a *Analyzer) analyze(ctx context.Context, log *slog.Logger, text string) (*domain.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Internal("analysis cancelled", err)
	}

	in, err := a.preprocessor.Preprocess(text)
	if err != nil {
		return nil, err
	}
	log.Debug("text preprocessed", "word_count", in.WordCount, "tokens", len(in.Tokens))

	matched := a.matcher.FindMatches(in.Tokens)

	treeResult, err := a.searcher.Search(in)
	if err != nil {
		return nil, err
	}
	log.Debug("tree traversed",
		"path", treeResult.Path,
		"nodes_visited", treeResult.NodesVisited,
		"cache_hits", treeResult.CacheHits)

	scores := treeResult.Scores
	var applied domain.Modifiers
	if a.opts.EnableFuzzyLogic {
		scores = a.fuzzy.Apply(scores, in)
		applied = domain.Modifiers{
			Intensifiers:     in.Intensifiers,
			Attenuators:      in.Attenuators,
			Negations:        in.Negations,
			Emoticons:        in.Emoticons,
			ExclamationCount: in.ExclamationCount,
			QuestionCount:    in.QuestionCount,
		}
	}

	normalized, err := a.normalizer.NormalizeScores(scores)
	if err != nil {
		return nil, err
	}

	confidence := a.normalizer.Confidence(normalized, matched)
	dominant, _ := a.normalizer.Dominant(normalized)

	return &domain.AnalysisResult{
		Text:                text,
		Sentiments:          normalized,
		Confidence:          confidence,
		MatchedKeywords:     matched,
		TreePath:            treeResult.Path,
		ModifiersApplied:    applied,
		DominantSentiment:   dominant,
		SecondarySentiments: a.normalizer.Secondary(normalized, 2),
	}, nil
}

// BatchAnalyze processes texts independently. A failing text yields a
// zero-confidence placeholder in its slot instead of aborting the batch.
func (a *Analyzer) BatchAnalyze(ctx context.Context, texts []string) []*domain.AnalysisResult {
	metrics.BatchSize.Observe(float64(len(texts)))

	results := make([]*domain.AnalysisResult, 0, len(texts))
	for i, text := range texts {
		result, err := a.Analyze(ctx, text)
		if err != nil {
			slog.Warn("batch item failed", "index", i, "error", err)
			result = domain.PlaceholderResult(text)
		}
		results = append(results, result)
	}
	return results
}

// ValidateText reports whether text would be accepted by Analyze, without
// running the pipeline.
func (a *Analyzer) ValidateText(text string) error {
	return a.preprocessor.Validate(text)
}

// ClearCache drops all memoized traversal results.
func (a *Analyzer) ClearCache() {
	a.searcher.ClearCache()
	slog.Info("traversal cache cleared")
}

// TreeInfo exposes decision-tree statistics and the current cache size.
func (a *Analyzer) TreeInfo() tree.Info {
	return a.searcher.Info()
}

func qualityFor(confidence, elapsedSeconds float64) domain.Quality {
	timeFactor := max(0.0, 1.0-elapsedSeconds/qualityTimeScaleSeconds)
	return domain.QualityFor(confidence*qualityConfidenceWeight + timeFactor*qualityTimeWeight)
}
