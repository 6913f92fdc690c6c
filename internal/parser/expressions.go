package parser

import (
	"github.com/danirod-live/pascal2go/internal/ast"
	"github.com/danirod-live/pascal2go/pkg/token"
)

var relationalOps = []token.Type{
	token.GREATER, token.GREATEREQ, token.LESS, token.LESSEQ,
	token.EQUAL, token.NEQ, token.IN,
}

// Expression parses the outermost precedence layer: a simple_expression
// optionally followed by one relational operator and another
// simple_expression. With no relational operator, the simple_expression's
// own result is returned unchanged — this layer never adds its own
// Grouping wrapper.
func (p *Parser) Expression() (*ast.Node, error) {
	left, err := p.SimpleExpression()
	if err != nil {
		return nil, err
	}
	if p.atAny(relationalOps...) {
		opTok := p.take()
		right, err := p.SimpleExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(opTok, left, right), nil
	}
	return left, nil
}

// SimpleExpression parses an optional leading unary sign, a term, and an
// optional continuation by +, -, or or, recursing right-associatively.
// The term (with any sign applied) is always wrapped in a Grouping before
// use, whether it ends up standing alone or as the left operand of a
// Binary built here.
func (p *Parser) SimpleExpression() (*ast.Node, error) {
	var sign *token.Token
	if p.atAny(token.PLUS, token.MINUS) {
		t := p.take()
		if p.atAny(token.PLUS, token.MINUS) {
			return nil, newParserError(p.peek(), "unexpected second unary sign")
		}
		sign = &t
	}

	termNode, err := p.Term()
	if err != nil {
		return nil, err
	}
	if sign != nil {
		termNode = ast.NewUnary(*sign, termNode)
	}
	wrapped := ast.NewGrouping(termNode)

	if p.atAny(token.PLUS, token.MINUS, token.OR) {
		opTok := p.take()
		right, err := p.SimpleExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(opTok, wrapped, right), nil
	}
	return wrapped, nil
}

// Term parses a factor optionally continued by *, /, div, mod, or and,
// recursing right-associatively. With no operator, the factor's own
// result is returned unchanged — Grouping at this precedence layer is
// the caller's (SimpleExpression's) job, not Term's.
func (p *Parser) Term() (*ast.Node, error) {
	left, err := p.Factor()
	if err != nil {
		return nil, err
	}
	if p.atAny(token.ASTERISK, token.SLASH, token.DIV, token.MOD, token.AND) {
		opTok := p.take()
		right, err := p.Term()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(opTok, left, right), nil
	}
	return left, nil
}

// Factor dispatches on the current token: variable accessors and
// function calls for an identifier, unsigned constants for literals,
// `not factor`, a parenthesized sub-expression, and a set constructor.
func (p *Parser) Factor() (*ast.Node, error) {
	tok := p.peek()

	switch tok.Type {
	case token.IDENTIFIER:
		switch p.peekFar(1).Type {
		case token.LBRACKET, token.DOT, token.CARET:
			return p.Variable()
		case token.LPAREN:
			return p.functionCall()
		default:
			return p.UnsignedConstant()
		}
	case token.DIGIT, token.NIL, token.STRING:
		return p.UnsignedConstant()
	case token.NOT:
		notTok := p.take()
		inner, err := p.Factor()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(notTok, inner), nil
	case token.LPAREN:
		p.take()
		inner, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return ast.NewGrouping(inner), nil
	case token.LBRACKET:
		return p.setConstructor()
	default:
		return nil, newParserError(tok, "unexpected token in expression: %s", tok.Type)
	}
}

// functionCall parses IDENTIFIER ( expr {, expr} ). Empty parentheses
// produce just the identifier, matching the procedure-call rule.
func (p *Parser) functionCall() (*ast.Node, error) {
	identTok := p.take()
	lparenTok, err := p.expect(token.LPAREN)
	if err != nil {
		return nil, err
	}
	if p.at(token.RPAREN) {
		p.take()
		return lit(identTok), nil
	}

	items := []*ast.Node{}
	seps := []token.Token{}

	first, err := p.Expression()
	if err != nil {
		return nil, err
	}
	items = append(items, first)

	for p.at(token.COMMA) {
		seps = append(seps, p.take())
		next, err := p.Expression()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}

	rparenTok, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}
	spine := buildSpine(lparenTok, items, seps, rparenTok)
	return ast.NewUnary(identTok, spine), nil
}

// setConstructor parses [ expr [.. expr] {, expr [.. expr]} ].
func (p *Parser) setConstructor() (*ast.Node, error) {
	lbracketTok := p.take()

	if p.at(token.RBRACKET) {
		return lit(p.take()), nil
	}

	items := []*ast.Node{}
	seps := []token.Token{}

	first, err := p.setElement()
	if err != nil {
		return nil, err
	}
	items = append(items, first)

	for p.at(token.COMMA) {
		seps = append(seps, p.take())
		next, err := p.setElement()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}

	rbracketTok, err := p.expect(token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return buildSpine(lbracketTok, items, seps, rbracketTok), nil
}

func (p *Parser) setElement() (*ast.Node, error) {
	from, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if p.at(token.DOTDOT) {
		dotdotTok := p.take()
		to, err := p.Expression()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(dotdotTok, from, to), nil
	}
	return from, nil
}

// Variable parses an IDENTIFIER followed by zero or more access suffixes
// (^ dereference, .ident field select, [expr,...] indexing).
func (p *Parser) Variable() (*ast.Node, error) {
	identTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	chain, err := p.variableSuffixChain()
	if err != nil {
		return nil, err
	}
	if chain == nil {
		return lit(identTok), nil
	}
	return ast.NewUnary(identTok, chain), nil
}

func (p *Parser) variableSuffixChain() (*ast.Node, error) {
	if !p.atAny(token.CARET, token.DOT, token.LBRACKET) {
		return nil, nil
	}
	opTok := p.take()

	var payload *ast.Node
	var err error
	switch opTok.Type {
	case token.CARET:
		payload = nil
	case token.DOT:
		var fieldTok token.Token
		fieldTok, err = p.expect(token.IDENTIFIER)
		if err == nil {
			payload = lit(fieldTok)
		}
	case token.LBRACKET:
		payload, err = p.indexExprSpine(opTok)
	}
	if err != nil {
		return nil, err
	}

	next, err := p.variableSuffixChain()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(opTok, payload, next), nil
}

// indexExprSpine parses the comma-separated expression list of a `[`
// suffix, up to and including the closing `]`. openTok is the already
// consumed `[`.
func (p *Parser) indexExprSpine(openTok token.Token) (*ast.Node, error) {
	items := []*ast.Node{}
	seps := []token.Token{}

	first, err := p.Expression()
	if err != nil {
		return nil, err
	}
	items = append(items, first)

	for p.at(token.COMMA) {
		seps = append(seps, p.take())
		next, err := p.Expression()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}

	rbracketTok, err := p.expect(token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return buildSpine(openTok, items, seps, rbracketTok), nil
}

// UnsignedConstant wraps a STRING/NIL/DIGIT/IDENTIFIER token as a Literal.
func (p *Parser) UnsignedConstant() (*ast.Node, error) {
	tok := p.peek()
	switch tok.Type {
	case token.STRING, token.NIL, token.DIGIT, token.IDENTIFIER:
		return lit(p.take()), nil
	default:
		return nil, newParserError(tok, "expected constant, got %s", tok.Type)
	}
}

// Constant parses an unsigned_constant optionally preceded by a sign.
func (p *Parser) Constant() (*ast.Node, error) {
	if p.atAny(token.PLUS, token.MINUS) {
		signTok := p.take()
		inner, err := p.UnsignedConstant()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(signTok, inner), nil
	}
	return p.UnsignedConstant()
}

// UnsignedInteger accepts only a DIGIT token whose literal is pure ASCII
// digits (no '.' or exponent).
func (p *Parser) UnsignedInteger() (*ast.Node, error) {
	tok := p.peek()
	if tok.Type != token.DIGIT || !isPureDigits(tok.Literal) {
		return nil, newParserError(tok, "expected unsigned integer, got %s", tok.Type)
	}
	return lit(p.take()), nil
}

// UnsignedNumber accepts any DIGIT token, fractional/exponent forms
// included.
func (p *Parser) UnsignedNumber() (*ast.Node, error) {
	tok := p.peek()
	if tok.Type != token.DIGIT {
		return nil, newParserError(tok, "expected unsigned number, got %s", tok.Type)
	}
	return lit(p.take()), nil
}

func isPureDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
