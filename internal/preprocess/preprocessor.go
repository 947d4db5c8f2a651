// Package preprocess turns raw text into the tokenized, modifier-annotated
// form consumed by the rest of the pipeline.
package preprocess

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

// The three modifier sets are disjoint by construction; a token belongs to at
// most one class, first match wins.
var intensifiers = wordSet(
	"muy", "extremadamente", "increíblemente", "sumamente",
	"completamente", "totalmente", "absolutamente", "realmente",
	"verdaderamente", "genuinamente", "profundamente",
)

var attenuators = wordSet(
	"un", "poco", "ligeramente", "levemente", "moderadamente",
	"relativamente", "bastante", "algo", "medianamente",
)

var negations = wordSet(
	"no", "nunca", "jamás", "tampoco", "ni", "nada", "ningún",
	"ninguna", "ninguno", "ningunos", "ningunas",
)

var emoticons = runeSet(
	"😊😄😃😀😁😆😅😂🤣😉😋😎" +
		"😍🥰😘😗😙😚🙂🤗🤔🤨😐😑" +
		"😶🙄😏😣😥😮🤐😯😪😫😴😌" +
		"😛😜😝🤤😒😓😔😕🙃🤑😲😷" +
		"🤒🤕🤢🤮🤧😈👿👹👺💀👻👽" +
		"🤖💩😺😸😹😻😼😽🙀😿😾",
)

// Preprocessor validates and tokenizes raw text.
type Preprocessor struct {
	maxTextLength int
	opts          config.PreprocessingOptions
}

// New creates a preprocessor from analyzer options.
func New(opts config.Options) *Preprocessor {
	return &Preprocessor{
		maxTextLength: opts.MaxTextLength,
		opts:          opts.Preprocessing,
	}
}

// Preprocess validates text and produces the pipeline input. Punctuation,
// exclamation/question runs, uppercase tokens, and emoticons are counted on
// the ORIGINAL text; tokens and modifiers come from the cleaned text.
func (p *Preprocessor) Preprocess(text string) (*domain.Input, error) {
	if err := p.Validate(text); err != nil {
		return nil, err
	}

	cleaned := p.clean(text)
	tokens := p.tokenize(cleaned)
	found := extractModifiers(tokens)

	return &domain.Input{
		CleanedText:      cleaned,
		Tokens:           tokens,
		WordCount:        len(tokens),
		Intensifiers:     found.intensifiers,
		Attenuators:      found.attenuators,
		Negations:        found.negations,
		PunctuationCount: countPunctuation(text),
		ExclamationCount: countRuns(text, '!'),
		QuestionCount:    countRuns(text, '?'),
		UppercaseTokens:  detectUppercase(text),
		Emoticons:        detectEmoticons(text),
	}, nil
}

// Validate checks the input constraints without preprocessing. The word-count
// bound applies to the raw whitespace split, before any cleaning.
func (p *Preprocessor) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.InvalidInput("text is empty")
	}
	if !utf8.ValidString(text) {
		return apperrors.InvalidInput("text is not valid UTF-8")
	}
	if n := len(strings.Fields(text)); n > p.maxTextLength {
		return apperrors.InvalidInput("text exceeds maximum word count").
			WithContext("word_count", n).
			WithContext("max_words", p.maxTextLength)
	}
	for _, r := range text {
		if r != ' ' && unicode.In(r, unicode.C) {
			return apperrors.InvalidInput("text contains control characters")
		}
	}
	return nil
}

// clean normalizes whitespace runs, then optionally lowercases and strips
// punctuation, in that order.
func (p *Preprocessor) clean(text string) string {
	cleaned := strings.Join(strings.Fields(text), " ")
	if p.opts.ConvertToLowercase {
		cleaned = strings.ToLower(cleaned)
	}
	if p.opts.RemovePunctuation {
		cleaned = strings.Map(func(r rune) rune {
			if isWordRune(r) || r == ' ' {
				return r
			}
			return -1
		}, cleaned)
	}
	return cleaned
}

// tokenize splits on whitespace and drops tokens longer than the configured
// maximum. Filtering happens after case handling, so a long word never
// survives into modifier matching.
func (p *Preprocessor) tokenize(cleaned string) []string {
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) <= p.opts.MaxWordLength {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

type modifierLists struct {
	intensifiers []string
	attenuators  []string
	negations    []string
}

func extractModifiers(tokens []string) modifierLists {
	var found modifierLists
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		switch {
		case intensifiers[lower]:
			found.intensifiers = append(found.intensifiers, tok)
		case attenuators[lower]:
			found.attenuators = append(found.attenuators, tok)
		case negations[lower]:
			found.negations = append(found.negations, tok)
		}
	}
	return found
}

// countPunctuation counts every non-word, non-space rune individually.
func countPunctuation(text string) int {
	count := 0
	for _, r := range text {
		if !isWordRune(r) && !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// countRuns counts maximal runs of the given rune; "!!!" counts once.
func countRuns(text string, target rune) int {
	count := 0
	inRun := false
	for _, r := range text {
		if r == target {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	return count
}

// detectUppercase collects tokens from the original whitespace split that
// equal their own uppercase form, contain a letter, and are longer than one rune.
func detectUppercase(text string) []string {
	var upper []string
	for _, tok := range strings.Fields(text) {
		if utf8.RuneCountInString(tok) <= 1 || tok != strings.ToUpper(tok) {
			continue
		}
		if strings.IndexFunc(tok, unicode.IsLetter) >= 0 {
			upper = append(upper, tok)
		}
	}
	return upper
}

// detectEmoticons scans the original text rune by rune, preserving repeats in
// order of appearance.
func detectEmoticons(text string) []string {
	var found []string
	for _, r := range text {
		if emoticons[r] {
			found = append(found, string(r))
		}
	}
	return found
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range s {
		set[r] = true
	}
	return set
}
