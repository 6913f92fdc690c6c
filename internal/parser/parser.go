// Package parser implements a recursive-descent parser that turns a
// drained token stream into an ast.Node tree.
package parser

import (
	"github.com/danirod-live/pascal2go/internal/ast"
	"github.com/danirod-live/pascal2go/internal/lexer"
	"github.com/danirod-live/pascal2go/pkg/token"
)

// Parser holds the fully-drained token sequence and a cursor into it.
// Every grammar entry point (Program, Statement, Expression, …) reads
// from this sequence by index, so
// arbitrary lookahead is just array indexing.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates an empty Parser. Call Load before any grammar entry point.
func New() *Parser {
	return &Parser{}
}

// Load drains s into the parser's token sequence, stopping on (and
// including) EOF. Calling Load replaces any previously loaded tokens.
func (p *Parser) Load(s *lexer.Scanner) {
	tokens := make([]token.Token, 0, 64)
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	p.tokens = tokens
	p.pos = 0
}

// peek returns the token at the current position without advancing.
// Once the cursor runs past the loaded sequence it keeps returning the
// final (EOF) token, so callers never need a separate bounds check.
func (p *Parser) peek() token.Token {
	return p.peekFar(0)
}

// peekFar returns the token k positions ahead of the cursor, clamped to
// the last token in the sequence (always EOF, per the load protocol).
func (p *Parser) peekFar(k int) token.Token {
	i := p.pos + k
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	if i < 0 {
		i = 0
	}
	return p.tokens[i]
}

// take returns the current token and advances the cursor.
func (p *Parser) take() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect takes the current token if it matches kind, otherwise reports a
// ParserError naming what was expected.
func (p *Parser) expect(kind token.Type) (token.Token, error) {
	tok := p.peek()
	if tok.Type != kind {
		return tok, newParserError(tok, "expected %s, got %s", kind, tok.Type)
	}
	return p.take(), nil
}

// at reports whether the current token has the given kind.
func (p *Parser) at(kind token.Type) bool {
	return p.peek().Type == kind
}

// atAny reports whether the current token has any of the given kinds.
func (p *Parser) atAny(kinds ...token.Type) bool {
	cur := p.peek().Type
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

func lit(tok token.Token) *ast.Node { return ast.NewLiteral(tok) }
