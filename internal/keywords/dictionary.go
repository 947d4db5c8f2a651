// Package keywords matches tokens against per-sentiment keyword dictionaries
// and scores the matches.
package keywords

import (
	"encoding/json"

	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

// Entry holds one sentiment's vocabulary: primary keywords, synonym groups,
// and verb-form groups. Missing lists default to empty and contribute nothing.
type Entry struct {
	Keywords  []string   `json:"keywords"`
	Synonyms  [][]string `json:"synonyms"`
	VerbForms [][]string `json:"verb_forms"`
}

// Dictionary maps each sentiment to its vocabulary. Absent sentiments are
// treated as empty entries, never an error.
type Dictionary map[domain.Sentiment]Entry

// ParseDictionary decodes a keyword dictionary from JSON.
func ParseDictionary(data []byte) (Dictionary, error) {
	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, apperrors.KeywordMatch("failed to parse keyword dictionary", err)
	}
	return dict, nil
}

// AllWords returns every distinct word known for a sentiment, across keywords,
// synonyms, and verb forms.
func (d Dictionary) AllWords(sentiment domain.Sentiment) []string {
	entry, ok := d[sentiment]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var words []string
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	for _, w := range entry.Keywords {
		add(w)
	}
	for _, group := range entry.Synonyms {
		for _, w := range group {
			add(w)
		}
	}
	for _, group := range entry.VerbForms {
		for _, w := range group {
			add(w)
		}
	}
	return words
}
