package tree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

// Condition is a boolean expression over preprocessed input, evaluated by
// direct recursive descent. The predicate set is closed: conditions are parsed
// once at tree-load time and can only reference the primitives below, which
// removes the arbitrary-expression evaluation the data format would otherwise
// invite.
type Condition interface {
	Eval(in *domain.Input) bool
	String() string
}

// HasKeyword is true when the word appears among the input tokens,
// case-insensitively. The sentiment is provenance only; it does not affect
// evaluation.
type HasKeyword struct {
	Sentiment domain.Sentiment
	Word      string
}

func (c HasKeyword) Eval(in *domain.Input) bool { return in.HasToken(c.Word) }
func (c HasKeyword) String() string {
	return fmt.Sprintf("has_keyword(%q, %q)", string(c.Sentiment), c.Word)
}

// WordCountCompare compares the input token count against a literal.
type WordCountCompare struct {
	Op string // one of > < >= <= == !=
	N  int
}

func (c WordCountCompare) Eval(in *domain.Input) bool {
	switch c.Op {
	case ">":
		return in.WordCount > c.N
	case "<":
		return in.WordCount < c.N
	case ">=":
		return in.WordCount >= c.N
	case "<=":
		return in.WordCount <= c.N
	case "==":
		return in.WordCount == c.N
	case "!=":
		return in.WordCount != c.N
	}
	return false
}
func (c WordCountCompare) String() string { return fmt.Sprintf("word_count %s %d", c.Op, c.N) }

// HasIntensifier is true when the input carries at least one intensifier.
type HasIntensifier struct{}

func (HasIntensifier) Eval(in *domain.Input) bool { return in.HasIntensifier() }
func (HasIntensifier) String() string             { return "has_intensifier()" }

// HasNegation is true when the input carries at least one negation token.
type HasNegation struct{}

func (HasNegation) Eval(in *domain.Input) bool { return in.HasNegation() }
func (HasNegation) String() string             { return "has_negation()" }

// HasEmoticon is true when the input contains at least one emoticon.
type HasEmoticon struct{}

func (HasEmoticon) Eval(in *domain.Input) bool { return in.HasEmoticon() }
func (HasEmoticon) String() string             { return "has_emoticon()" }

// IsQuestion is true when the input contains at least one question-mark run.
type IsQuestion struct{}

func (IsQuestion) Eval(in *domain.Input) bool { return in.IsQuestion() }
func (IsQuestion) String() string             { return "is_question()" }

// IsExclamation is true when the input contains at least one exclamation run.
type IsExclamation struct{}

func (IsExclamation) Eval(in *domain.Input) bool { return in.IsExclamation() }
func (IsExclamation) String() string             { return "is_exclamation()" }

// And is boolean conjunction.
type And struct{ L, R Condition }

func (c And) Eval(in *domain.Input) bool { return c.L.Eval(in) && c.R.Eval(in) }
func (c And) String() string             { return fmt.Sprintf("(%s and %s)", c.L, c.R) }

// Or is boolean disjunction.
type Or struct{ L, R Condition }

func (c Or) Eval(in *domain.Input) bool { return c.L.Eval(in) || c.R.Eval(in) }
func (c Or) String() string             { return fmt.Sprintf("(%s or %s)", c.L, c.R) }

// Not is boolean negation.
type Not struct{ X Condition }

func (c Not) Eval(in *domain.Input) bool { return !c.X.Eval(in) }
func (c Not) String() string             { return fmt.Sprintf("not %s", c.X) }

// Literal is a constant condition, from "true"/"false" in the source.
type Literal bool

func (c Literal) Eval(*domain.Input) bool { return bool(c) }
func (c Literal) String() string {
	if c {
		return "true"
	}
	return "false"
}

// ParseCondition parses a condition expression. Grammar, lowest precedence
// first:
//
//	expr    := term (("or" | "||") term)*
//	term    := factor (("and" | "&&") factor)*
//	factor  := ("not" | "!") factor | "(" expr ")" | primary
//	primary := has_keyword('<sentiment>', '<word>')
//	         | has_intensifier() | has_negation() | has_emoticon()
//	         | is_question() | is_exclamation()
//	         | word_count OP <int>        (OP: > < >= <= == !=)
//	         | true | false
//
// Malformed or unknown constructs fail with a tree-search error naming the
// offending condition.
func ParseCondition(src string) (Condition, error) {
	tokens, err := lexCondition(src)
	if err != nil {
		return nil, condErr(src, err)
	}
	p := &condParser{src: src, tokens: tokens}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, condErr(src, err)
	}
	if !p.atEnd() {
		return nil, condErr(src, fmt.Errorf("unexpected token %q", p.peek().text))
	}
	return cond, nil
}

func condErr(src string, err error) error {
	return apperrors.TreeSearch(fmt.Sprintf("malformed condition %q: %v", src, err))
}

type condToken struct {
	kind condTokenKind
	text string
}

type condTokenKind int

const (
	tokIdent condTokenKind = iota
	tokNumber
	tokString
	tokOp     // comparison operators
	tokLParen
	tokRParen
	tokComma
	tokAnd
	tokOr
	tokNot
	tokEOF
)

func lexCondition(src string) ([]condToken, error) {
	var tokens []condToken
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, condToken{tokLParen, "("})
			i++
		case r == ')':
			tokens = append(tokens, condToken{tokRParen, ")"})
			i++
		case r == ',':
			tokens = append(tokens, condToken{tokComma, ","})
			i++
		case r == '\'' || r == '"':
			quote := r
			j := i + 1
			for j < len(runes) && runes[j] != quote {
				j++
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("unterminated string literal")
			}
			tokens = append(tokens, condToken{tokString, string(runes[i+1 : j])})
			i = j + 1
		case r == '>' || r == '<':
			op := string(r)
			if i+1 < len(runes) && runes[i+1] == '=' {
				op += "="
				i++
			}
			tokens = append(tokens, condToken{tokOp, op})
			i++
		case r == '=' || r == '!':
			if i+1 < len(runes) && runes[i+1] == '=' {
				tokens = append(tokens, condToken{tokOp, string(r) + "="})
				i += 2
			} else if r == '!' {
				tokens = append(tokens, condToken{tokNot, "!"})
				i++
			} else {
				return nil, fmt.Errorf("unexpected character %q", string(r))
			}
		case r == '&' || r == '|':
			if i+1 >= len(runes) || runes[i+1] != r {
				return nil, fmt.Errorf("unexpected character %q", string(r))
			}
			if r == '&' {
				tokens = append(tokens, condToken{tokAnd, "&&"})
			} else {
				tokens = append(tokens, condToken{tokOr, "||"})
			}
			i += 2
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			tokens = append(tokens, condToken{tokNumber, string(runes[i:j])})
			i = j
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			word := string(runes[i:j])
			switch strings.ToLower(word) {
			case "and":
				tokens = append(tokens, condToken{tokAnd, word})
			case "or":
				tokens = append(tokens, condToken{tokOr, word})
			case "not":
				tokens = append(tokens, condToken{tokNot, word})
			default:
				tokens = append(tokens, condToken{tokIdent, word})
			}
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q", string(r))
		}
	}
	tokens = append(tokens, condToken{tokEOF, ""})
	return tokens, nil
}

type condParser struct {
	src    string
	tokens []condToken
	pos    int
}

func (p *condParser) peek() condToken { return p.tokens[p.pos] }

func (p *condParser) next() condToken {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *condParser) atEnd() bool { return p.peek().kind == tokEOF }

func (p *condParser) expect(kind condTokenKind, what string) (condToken, error) {
	t := p.next()
	if t.kind != kind {
		return t, fmt.Errorf("expected %s, got %q", what, t.text)
	}
	return t, nil
}

func (p *condParser) parseExpr() (Condition, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Or{L: left, R: right}
	}
	return left, nil
}

func (p *condParser) parseTerm() (Condition, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = And{L: left, R: right}
	}
	return left, nil
}

func (p *condParser) parseFactor() (Condition, error) {
	switch p.peek().kind {
	case tokNot:
		p.next()
		inner, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return Not{X: inner}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return p.parsePrimary()
	}
}

func (p *condParser) parsePrimary() (Condition, error) {
	t, err := p.expect(tokIdent, "predicate")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(t.text) {
	case "true":
		return Literal(true), nil
	case "false":
		return Literal(false), nil
	case "word_count":
		op, err := p.expect(tokOp, "comparison operator")
		if err != nil {
			return nil, err
		}
		num, err := p.expect(tokNumber, "integer")
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(num.text)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", num.text)
		}
		return WordCountCompare{Op: op.text, N: n}, nil
	case "has_keyword":
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		sentiment, err := p.expect(tokString, "sentiment string")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokComma, "','"); err != nil {
			return nil, err
		}
		word, err := p.expect(tokString, "word string")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return HasKeyword{Sentiment: domain.Sentiment(sentiment.text), Word: word.text}, nil
	case "has_intensifier", "has_negation", "has_emoticon", "is_question", "is_exclamation":
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		switch strings.ToLower(t.text) {
		case "has_intensifier":
			return HasIntensifier{}, nil
		case "has_negation":
			return HasNegation{}, nil
		case "has_emoticon":
			return HasEmoticon{}, nil
		case "is_question":
			return IsQuestion{}, nil
		default:
			return IsExclamation{}, nil
		}
	default:
		return nil, fmt.Errorf("unknown predicate %q", t.text)
	}
}
