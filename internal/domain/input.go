package domain

import "strings"

// Input is the preprocessed form of one text, produced per analysis call and
// consumed read-only by the tree searcher, keyword matcher, and fuzzy stage.
type Input struct {
	CleanedText      string
	Tokens           []string
	WordCount        int
	Intensifiers     []string
	Attenuators      []string
	Negations        []string
	PunctuationCount int
	ExclamationCount int
	QuestionCount    int
	UppercaseTokens  []string
	Emoticons        []string
}

// HasToken reports whether word is among the input's tokens, case-insensitively.
func (in *Input) HasToken(word string) bool {
	for _, tok := range in.Tokens {
		if strings.EqualFold(tok, word) {
			return true
		}
	}
	return false
}

func (in *Input) HasIntensifier() bool { return len(in.Intensifiers) > 0 }
func (in *Input) HasNegation() bool    { return len(in.Negations) > 0 }
func (in *Input) HasEmoticon() bool    { return len(in.Emoticons) > 0 }
func (in *Input) IsQuestion() bool     { return in.QuestionCount > 0 }
func (in *Input) IsExclamation() bool  { return in.ExclamationCount > 0 }
