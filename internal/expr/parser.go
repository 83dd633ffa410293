package expr

import "fmt"

// ParseError reports a syntax error with the rune offset it occurred at.
type ParseError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// Parse parses a boolean expression. Binary operators are left-associative
// with precedence, lowest first: implication, or, xor, and. Unary not binds
// tightest.
func Parse(input string) (Expr, error) {
	p := parser{lex: newLexer(input)}
	e, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if tok := p.lex.peek(); tok.kind != tokEOF {
		return nil, unexpected("end of input", tok)
	}
	return e, nil
}

type parser struct {
	lex *lexer
}

func (p *parser) parseImplies() (Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.lex.peek().kind == tokImplies {
		p.lex.next()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = Implies{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.lex.peek().kind == tokOr {
		p.lex.next()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = Or{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseXor() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.lex.peek().kind == tokXor {
		p.lex.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Xor{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.lex.peek().kind == tokAnd {
		p.lex.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.lex.peek().kind == tokNot {
		p.lex.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.lex.next()
	switch tok.kind {
	case tokIdent:
		return Ident{Name: tok.text}, nil
	case tokLParen:
		e, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		if closing := p.lex.next(); closing.kind != tokRParen {
			return nil, unexpected(")", closing)
		}
		return e, nil
	default:
		return nil, unexpected("identifier or '('", tok)
	}
}

func unexpected(expected string, tok token) error {
	found := tok.kind.String()
	if tok.kind == tokIdent {
		found = fmt.Sprintf("%q", tok.text)
	}
	return &ParseError{Pos: tok.pos, Expected: expected, Found: found}
}
