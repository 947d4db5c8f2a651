package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

// Options is the typed analyzer configuration. Every field has a default and
// is overridden field-by-field from a parsed JSON settings document; unknown
// keys in the document are ignored.
//
// Several knobs are accepted for compatibility but deliberately inert:
// Fuzzy.NegationFactor, Fuzzy.ContextWeight, Preprocessing.RemoveStopwords,
// Preprocessing.Stemming, and TreeSearch.EnableBacktracking have no effect on
// the pipeline.
type Options struct {
	MaxTextLength       int
	MinConfidence       float64
	EnableFuzzyLogic    bool
	EnableMemoization   bool
	SentimentThresholds map[domain.Sentiment]float64
	Fuzzy               FuzzyOptions
	Preprocessing       PreprocessingOptions
	TreeSearch          TreeSearchOptions
	Output              OutputOptions
}

// FuzzyOptions tunes the fuzzy adjustment stage.
type FuzzyOptions struct {
	IntensificationFactor float64
	AttenuationFactor     float64
	NegationFactor        float64 // inert
	MixedEmotionThreshold float64
	ContextWeight         float64 // inert
}

// PreprocessingOptions tunes text cleaning and tokenization.
type PreprocessingOptions struct {
	RemovePunctuation  bool
	ConvertToLowercase bool
	RemoveStopwords    bool // inert
	Stemming           bool // inert
	MaxWordLength      int
}

// TreeSearchOptions bounds the decision-tree traversal.
type TreeSearchOptions struct {
	MaxDepth           int
	Timeout            time.Duration
	EnableBacktracking bool // inert
	CacheSize          int
}

// OutputOptions shapes the presented result.
type OutputOptions struct {
	IncludeConfidence      bool
	IncludeProcessingTime  bool
	IncludeMatchedKeywords bool
	IncludeTreePath        bool
	IncludeModifiers       bool
	RoundDecimals          int
}

// DefaultOptions returns the analyzer defaults.
func DefaultOptions() Options {
	return Options{
		MaxTextLength:     50,
		MinConfidence:     0.3,
		EnableFuzzyLogic:  true,
		EnableMemoization: true,
		SentimentThresholds: map[domain.Sentiment]float64{
			domain.Alegria:      0.4,
			domain.Tristeza:     0.4,
			domain.Enojo:        0.4,
			domain.Preocupacion: 0.4,
			domain.Informacion:  0.3,
			domain.Sorpresa:     0.4,
		},
		Fuzzy: FuzzyOptions{
			IntensificationFactor: 1.5,
			AttenuationFactor:     0.7,
			NegationFactor:        0.3,
			MixedEmotionThreshold: 0.6,
			ContextWeight:         0.3,
		},
		Preprocessing: PreprocessingOptions{
			RemovePunctuation:  true,
			ConvertToLowercase: true,
			MaxWordLength:      20,
		},
		TreeSearch: TreeSearchOptions{
			MaxDepth:  10,
			Timeout:   5 * time.Second,
			CacheSize: 1000,
		},
		Output: OutputOptions{
			IncludeConfidence:      true,
			IncludeProcessingTime:  true,
			IncludeMatchedKeywords: true,
			IncludeTreePath:        true,
			IncludeModifiers:       true,
			RoundDecimals:          3,
		},
	}
}

// optionsDoc is the JSON settings document. Pointer fields distinguish
// "absent" from zero values so defaults survive partial documents.
type optionsDoc struct {
	MaxTextLength       *int                `json:"max_text_length"`
	MinConfidence       *float64            `json:"min_confidence"`
	EnableFuzzyLogic    *bool               `json:"enable_fuzzy_logic"`
	EnableMemoization   *bool               `json:"enable_memoization"`
	SentimentThresholds map[string]float64  `json:"sentiment_thresholds"`
	FuzzyParameters     *fuzzyDoc           `json:"fuzzy_parameters"`
	Preprocessing       *preprocessingDoc   `json:"preprocessing"`
	TreeSearch          *treeSearchDoc      `json:"tree_search"`
	OutputFormat        *outputDoc          `json:"output_format"`
}

type fuzzyDoc struct {
	IntensificationFactor *float64 `json:"intensification_factor"`
	AttenuationFactor     *float64 `json:"attenuation_factor"`
	NegationFactor        *float64 `json:"negation_factor"`
	MixedEmotionThreshold *float64 `json:"mixed_emotion_threshold"`
	ContextWeight         *float64 `json:"context_weight"`
}

type preprocessingDoc struct {
	RemovePunctuation  *bool `json:"remove_punctuation"`
	ConvertToLowercase *bool `json:"convert_to_lowercase"`
	RemoveStopwords    *bool `json:"remove_stopwords"`
	Stemming           *bool `json:"stemming"`
	MaxWordLength      *int  `json:"max_word_length"`
}

type treeSearchDoc struct {
	MaxDepth           *int     `json:"max_depth"`
	TimeoutSeconds     *float64 `json:"timeout_seconds"`
	EnableBacktracking *bool    `json:"enable_backtracking"`
	CacheSize          *int     `json:"cache_size"`
}

type outputDoc struct {
	IncludeConfidence      *bool `json:"include_confidence"`
	IncludeProcessingTime  *bool `json:"include_processing_time"`
	IncludeMatchedKeywords *bool `json:"include_matched_keywords"`
	IncludeTreePath        *bool `json:"include_tree_path"`
	IncludeModifiers       *bool `json:"include_modifiers"`
	RoundDecimals          *int  `json:"round_decimals"`
}

// ParseOptions applies a JSON settings document on top of the defaults and
// validates the result.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()

	var doc optionsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Options{}, apperrors.Configuration("failed to parse analyzer options", err)
	}

	applyDoc(&opts, &doc)

	if err := validateOptions(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads and parses an options file. An empty path yields the defaults.
func LoadOptions(path string) (Options, error) {
	if path == "" {
		return DefaultOptions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, apperrors.Configuration("failed to read analyzer options file", err).
			WithContext("path", path)
	}
	return ParseOptions(data)
}

func applyDoc(opts *Options, doc *optionsDoc) {
	setInt(&opts.MaxTextLength, doc.MaxTextLength)
	setFloat(&opts.MinConfidence, doc.MinConfidence)
	setBool(&opts.EnableFuzzyLogic, doc.EnableFuzzyLogic)
	setBool(&opts.EnableMemoization, doc.EnableMemoization)

	for name, threshold := range doc.SentimentThresholds {
		opts.SentimentThresholds[domain.Sentiment(name)] = threshold
	}

	if d := doc.FuzzyParameters; d != nil {
		setFloat(&opts.Fuzzy.IntensificationFactor, d.IntensificationFactor)
		setFloat(&opts.Fuzzy.AttenuationFactor, d.AttenuationFactor)
		setFloat(&opts.Fuzzy.NegationFactor, d.NegationFactor)
		setFloat(&opts.Fuzzy.MixedEmotionThreshold, d.MixedEmotionThreshold)
		setFloat(&opts.Fuzzy.ContextWeight, d.ContextWeight)
	}
	if d := doc.Preprocessing; d != nil {
		setBool(&opts.Preprocessing.RemovePunctuation, d.RemovePunctuation)
		setBool(&opts.Preprocessing.ConvertToLowercase, d.ConvertToLowercase)
		setBool(&opts.Preprocessing.RemoveStopwords, d.RemoveStopwords)
		setBool(&opts.Preprocessing.Stemming, d.Stemming)
		setInt(&opts.Preprocessing.MaxWordLength, d.MaxWordLength)
	}
	if d := doc.TreeSearch; d != nil {
		setInt(&opts.TreeSearch.MaxDepth, d.MaxDepth)
		if d.TimeoutSeconds != nil {
			opts.TreeSearch.Timeout = time.Duration(*d.TimeoutSeconds * float64(time.Second))
		}
		setBool(&opts.TreeSearch.EnableBacktracking, d.EnableBacktracking)
		setInt(&opts.TreeSearch.CacheSize, d.CacheSize)
	}
	if d := doc.OutputFormat; d != nil {
		setBool(&opts.Output.IncludeConfidence, d.IncludeConfidence)
		setBool(&opts.Output.IncludeProcessingTime, d.IncludeProcessingTime)
		setBool(&opts.Output.IncludeMatchedKeywords, d.IncludeMatchedKeywords)
		setBool(&opts.Output.IncludeTreePath, d.IncludeTreePath)
		setBool(&opts.Output.IncludeModifiers, d.IncludeModifiers)
		setInt(&opts.Output.RoundDecimals, d.RoundDecimals)
	}
}

func validateOptions(opts *Options) error {
	check := func(ok bool, format string, args ...any) error {
		if ok {
			return nil
		}
		return apperrors.Configuration(fmt.Sprintf(format, args...), nil)
	}

	if err := check(opts.MaxTextLength > 0, "max_text_length must be positive, got %d", opts.MaxTextLength); err != nil {
		return err
	}
	if err := check(opts.Fuzzy.IntensificationFactor > 0, "intensification_factor must be positive, got %v", opts.Fuzzy.IntensificationFactor); err != nil {
		return err
	}
	if err := check(opts.Fuzzy.AttenuationFactor > 0 && opts.Fuzzy.AttenuationFactor <= 1,
		"attenuation_factor must be in (0, 1], got %v", opts.Fuzzy.AttenuationFactor); err != nil {
		return err
	}
	if err := check(opts.Fuzzy.MixedEmotionThreshold >= 0 && opts.Fuzzy.MixedEmotionThreshold <= 1,
		"mixed_emotion_threshold must be in [0, 1], got %v", opts.Fuzzy.MixedEmotionThreshold); err != nil {
		return err
	}
	if err := check(opts.Preprocessing.MaxWordLength > 0, "max_word_length must be positive, got %d", opts.Preprocessing.MaxWordLength); err != nil {
		return err
	}
	if err := check(opts.TreeSearch.MaxDepth > 0, "max_depth must be positive, got %d", opts.TreeSearch.MaxDepth); err != nil {
		return err
	}
	if err := check(opts.TreeSearch.Timeout > 0, "timeout_seconds must be positive, got %v", opts.TreeSearch.Timeout); err != nil {
		return err
	}
	if err := check(opts.TreeSearch.CacheSize > 0, "cache_size must be positive, got %d", opts.TreeSearch.CacheSize); err != nil {
		return err
	}
	if err := check(opts.Output.RoundDecimals >= 0, "round_decimals must be non-negative, got %d", opts.Output.RoundDecimals); err != nil {
		return err
	}
	for sentiment, threshold := range opts.SentimentThresholds {
		if threshold < 0 || threshold > 1 {
			return apperrors.Configuration(fmt.Sprintf("threshold for %s must be in [0, 1], got %v", sentiment, threshold), nil)
		}
	}
	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
