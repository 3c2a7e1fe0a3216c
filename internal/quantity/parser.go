package quantity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokMul
	tokDiv
	tokPow
	tokLParen
	tokRParen
	tokMinus
	tokPlus
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

// term is one unit symbol raised to an exponent.
type term struct {
	symbol string
	exp    float64
}

// parsed is the syntactic form of an expression: an optional leading number
// followed by unit terms.
type parsed struct {
	terms     []term
	number    float64
	hasNumber bool
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			start := i
			i = scanNumber(runes, i)
			tokens = append(tokens, token{kind: tokNumber, text: string(runes[start:i]), pos: start})
		case unicode.IsLetter(r) || r == 'µ':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: string(runes[start:i]), pos: start})
		default:
			kind, ok := punctuation[r]
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at position %d", r, i)
			}
			tokens = append(tokens, token{kind: kind, text: string(r), pos: i})
			i++
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(runes)}), nil
}

var punctuation = map[rune]tokenKind{
	'*': tokMul,
	'·': tokMul,
	'/': tokDiv,
	'^': tokPow,
	'(': tokLParen,
	')': tokRParen,
	'-': tokMinus,
	'+': tokPlus,
}

// scanNumber consumes digits, an optional fraction and an optional exponent.
// An 'e' is only part of the number when digits follow it, so "5eV" scans as 5.
func scanNumber(runes []rune, i int) int {
	for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
		i++
	}
	if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
		j := i + 1
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j < len(runes) && unicode.IsDigit(runes[j]) {
			i = j
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
		}
	}
	return i
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, fmt.Errorf("expected %s at position %d", what, t.pos)
	}
	return t, nil
}

// parse reads `[sign] [number ['*']] [unit-expression]`.
func parse(input string) (parsed, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return parsed{}, err
	}
	p := &parser{tokens: tokens}
	var out parsed

	sign := 1.0
	switch p.peek().kind {
	case tokMinus:
		p.next()
		sign = -1
	case tokPlus:
		p.next()
	}

	if p.peek().kind == tokNumber {
		t := p.next()
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return parsed{}, fmt.Errorf("invalid number %q", t.text)
		}
		out.number = sign * v
		out.hasNumber = true
		if p.peek().kind == tokMul {
			p.next()
		}
	} else if sign < 0 {
		return parsed{}, fmt.Errorf("expected number after sign")
	}

	if p.peek().kind != tokEOF {
		terms, err := p.unitExpr()
		if err != nil {
			return parsed{}, err
		}
		out.terms = terms
	}

	if t := p.peek(); t.kind != tokEOF {
		return parsed{}, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
	}
	if !out.hasNumber && len(out.terms) == 0 {
		return parsed{}, fmt.Errorf("empty expression")
	}

	return out, nil
}

// unitExpr := ['/'] unitTerm { ('*' | '/' | juxtaposition) unitTerm }
func (p *parser) unitExpr() ([]term, error) {
	var terms []term

	negate := false
	if p.peek().kind == tokDiv {
		p.next()
		negate = true
	}

	for {
		ts, err := p.unitTerm()
		if err != nil {
			return nil, err
		}
		if negate {
			ts = power(ts, -1)
		}
		terms = append(terms, ts...)

		switch p.peek().kind {
		case tokMul:
			p.next()
			negate = false
		case tokDiv:
			p.next()
			negate = true
		case tokIdent, tokLParen:
			negate = false
		default:
			return terms, nil
		}
	}
}

// unitTerm := (ident | '(' unitExpr ')') ['^' exponent]
func (p *parser) unitTerm() ([]term, error) {
	var ts []term

	switch t := p.next(); t.kind {
	case tokIdent:
		ts = []term{{symbol: t.text, exp: 1}}
	case tokLParen:
		inner, err := p.unitExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		ts = inner
	case tokEOF:
		return nil, fmt.Errorf("expected unit at end of input")
	default:
		return nil, fmt.Errorf("expected unit at position %d, got %q", t.pos, t.text)
	}

	if p.peek().kind == tokPow {
		p.next()
		exp, err := p.exponent()
		if err != nil {
			return nil, err
		}
		ts = power(ts, exp)
	}

	return ts, nil
}

// exponent := ['-'|'+'] number | '(' ['-'] number ['/' number] ')'
func (p *parser) exponent() (float64, error) {
	if p.peek().kind == tokLParen {
		p.next()
		num, err := p.signedNumber()
		if err != nil {
			return 0, err
		}
		if p.peek().kind == tokDiv {
			p.next()
			den, err := p.signedNumber()
			if err != nil {
				return 0, err
			}
			if den == 0 {
				return 0, fmt.Errorf("zero denominator in exponent")
			}
			num /= den
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return 0, err
		}
		return num, nil
	}
	return p.signedNumber()
}

func (p *parser) signedNumber() (float64, error) {
	sign := 1.0
	switch p.peek().kind {
	case tokMinus:
		p.next()
		sign = -1
	case tokPlus:
		p.next()
	}
	t, err := p.expect(tokNumber, "number")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", t.text)
	}
	return sign * v, nil
}

func power(ts []term, exp float64) []term {
	out := make([]term, len(ts))
	for i, t := range ts {
		out[i] = term{symbol: t.symbol, exp: t.exp * exp}
	}
	return out
}

// combine merges repeated symbols, keeping first-occurrence order, and drops
// symbols whose exponents cancel.
func combine(ts []term) []term {
	index := make(map[string]int, len(ts))
	var out []term
	for _, t := range ts {
		if i, ok := index[t.symbol]; ok {
			out[i].exp += t.exp
			continue
		}
		index[t.symbol] = len(out)
		out = append(out, t)
	}

	kept := out[:0]
	for _, t := range out {
		if t.exp != 0 {
			kept = append(kept, t)
		}
	}
	return kept
}

// parseUnit parses a bare unit expression. A leading "1" is accepted so that
// renderings like "1/s" round-trip.
func parseUnit(expr string) ([]term, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("empty unit expression")
	}
	p, err := parse(expr)
	if err != nil {
		return nil, err
	}
	if p.hasNumber && p.number != 1 {
		return nil, fmt.Errorf("unit expression %q must not carry a magnitude", expr)
	}
	if len(p.terms) == 0 {
		return nil, fmt.Errorf("unit expression %q has no units", expr)
	}
	return combine(p.terms), nil
}
