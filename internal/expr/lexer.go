package expr

import "unicode"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNot
	tokAnd
	tokOr
	tokXor
	tokImplies
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokNot:
		return "NOT"
	case tokAnd:
		return "AND"
	case tokOr:
		return "OR"
	case tokXor:
		return "XOR"
	case tokImplies:
		return "IMPL"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	}
	return "unknown"
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	s []rune
	i int
}

func newLexer(s string) *lexer { return &lexer{s: []rune(s)} }

func (l *lexer) peek() token {
	pos := l.i
	tok := l.next()
	l.i = pos
	return tok
}

func (l *lexer) next() token {
	for {
		for l.i < len(l.s) && unicode.IsSpace(l.s[l.i]) {
			l.i++
		}
		if l.i >= len(l.s) {
			return token{kind: tokEOF, pos: l.i}
		}
		start := l.i
		ch := l.s[l.i]
		switch {
		case ch == '(':
			l.i++
			return token{kind: tokLParen, text: "(", pos: start}
		case ch == ')':
			l.i++
			return token{kind: tokRParen, text: ")", pos: start}
		case ch == '!' || ch == '¬':
			l.i++
			return token{kind: tokNot, text: string(ch), pos: start}
		case ch == '∧':
			l.i++
			return token{kind: tokAnd, text: string(ch), pos: start}
		case ch == '∨':
			l.i++
			return token{kind: tokOr, text: string(ch), pos: start}
		case ch == '⊻' || ch == '⊕':
			l.i++
			return token{kind: tokXor, text: string(ch), pos: start}
		case ch == '→':
			l.i++
			return token{kind: tokImplies, text: string(ch), pos: start}
		case ch == '&' && l.lookahead() == '&':
			l.i += 2
			return token{kind: tokAnd, text: "&&", pos: start}
		case ch == '|' && l.lookahead() == '|':
			l.i += 2
			return token{kind: tokOr, text: "||", pos: start}
		case ch == '-' && l.lookahead() == '>':
			l.i += 2
			return token{kind: tokImplies, text: "->", pos: start}
		case unicode.IsLetter(ch) || ch == '_':
			l.i++
			for l.i < len(l.s) && isIdentPart(l.s[l.i]) {
				l.i++
			}
			text := string(l.s[start:l.i])
			// Word operators take precedence over identifiers.
			switch text {
			case "and":
				return token{kind: tokAnd, text: text, pos: start}
			case "or":
				return token{kind: tokOr, text: text, pos: start}
			case "not":
				return token{kind: tokNot, text: text, pos: start}
			case "xor":
				return token{kind: tokXor, text: text, pos: start}
			}
			return token{kind: tokIdent, text: text, pos: start}
		default:
			// Skip unknown characters and keep scanning.
			l.i++
		}
	}
}

func (l *lexer) lookahead() rune {
	if l.i+1 < len(l.s) {
		return l.s[l.i+1]
	}
	return 0
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
