package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

func evalCondition(t *testing.T, src string, in *domain.Input) bool {
	t.Helper()
	cond, err := ParseCondition(src)
	require.NoError(t, err, "condition %q", src)
	return cond.Eval(in)
}

func TestParseConditionPredicates(t *testing.T) {
	in := &domain.Input{
		Tokens:           []string{"estoy", "feliz"},
		WordCount:        2,
		Intensifiers:     []string{"muy"},
		ExclamationCount: 1,
	}

	tests := []struct {
		src  string
		want bool
	}{
		{"has_keyword('alegria', 'feliz')", true},
		{"has_keyword('alegria', 'triste')", false},
		{"has_intensifier()", true},
		{"has_negation()", false},
		{"has_emoticon()", false},
		{"is_question()", false},
		{"is_exclamation()", true},
		{"word_count > 1", true},
		{"word_count < 2", false},
		{"word_count >= 2", true},
		{"word_count <= 1", false},
		{"word_count == 2", true},
		{"word_count != 2", false},
		{"true", true},
		{"false", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, evalCondition(t, tt.src, in))
		})
	}
}

func TestParseConditionBooleanOperators(t *testing.T) {
	in := &domain.Input{
		Tokens:       []string{"feliz"},
		WordCount:    1,
		Intensifiers: []string{"muy"},
	}

	tests := []struct {
		src  string
		want bool
	}{
		{"has_keyword('alegria', 'feliz') and has_intensifier()", true},
		{"has_keyword('alegria', 'feliz') and has_negation()", false},
		{"has_negation() or has_intensifier()", true},
		{"has_negation() or is_question()", false},
		{"not has_negation()", true},
		{"not has_intensifier()", false},
		{"has_keyword('alegria', 'feliz') && has_intensifier()", true},
		{"has_negation() || has_intensifier()", true},
		{"!has_negation()", true},
		{"not (has_negation() or is_question())", true},
		// "and" binds tighter than "or".
		{"is_question() or has_intensifier() and word_count == 1", true},
		{"(is_question() or has_intensifier()) and word_count > 5", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, evalCondition(t, tt.src, in))
		})
	}
}

func TestParseConditionCaseInsensitiveKeyword(t *testing.T) {
	in := &domain.Input{Tokens: []string{"FELIZ"}, WordCount: 1}
	assert.True(t, evalCondition(t, "has_keyword('alegria', 'feliz')", in))
}

func TestParseConditionDoubleQuotes(t *testing.T) {
	in := &domain.Input{Tokens: []string{"feliz"}, WordCount: 1}
	assert.True(t, evalCondition(t, `has_keyword("alegria", "feliz")`, in))
}

func TestParseConditionErrors(t *testing.T) {
	tests := []string{
		"",
		"unknown_predicate()",
		"has_keyword('alegria')",
		"has_keyword('alegria', 'feliz'",
		"word_count >",
		"word_count > abc",
		"has_intensifier",
		"has_intensifier() and",
		"(has_intensifier()",
		"has_intensifier() extra",
		"'just a string'",
		"word_count > 1 1",
		"has_keyword('a', 'b') 'trailing'",
		"&& has_intensifier()",
		"has_keyword('alegria', 'unterminated",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := ParseCondition(src)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.TypeTreeSearch))
		})
	}
}

func TestConditionString(t *testing.T) {
	cond, err := ParseCondition("has_keyword('alegria', 'feliz') and not is_question()")
	require.NoError(t, err)
	assert.Contains(t, cond.String(), "has_keyword")
	assert.Contains(t, cond.String(), "not")
}
