package parser

import (
	"github.com/danirod-live/pascal2go/internal/ast"
	"github.com/danirod-live/pascal2go/pkg/token"
)

// Type parses a type denoter, dispatching on the first token and an
// optional leading `packed`.
func (p *Parser) Type() (*ast.Node, error) {
	var packedTok *token.Token
	if p.at(token.PACKED) {
		t := p.take()
		packedTok = &t
	}

	var node *ast.Node
	var err error

	switch p.peek().Type {
	case token.CARET:
		if packedTok != nil {
			return nil, newParserError(*packedTok, "packed is not allowed before a pointer type")
		}
		caretTok := p.take()
		identTok, err2 := p.expect(token.IDENTIFIER)
		if err2 != nil {
			return nil, err2
		}
		return ast.NewUnary(caretTok, lit(identTok)), nil

	case token.ARRAY:
		arrayTok := p.take()
		indexSpine, err2 := p.arrayIndexList()
		if err2 != nil {
			return nil, err2
		}
		if _, err2 = p.expect(token.OF); err2 != nil {
			return nil, err2
		}
		elem, err2 := p.Type()
		if err2 != nil {
			return nil, err2
		}
		node = ast.NewBinary(arrayTok, indexSpine, elem)

	case token.FILE:
		fileTok := p.take()
		if _, err = p.expect(token.OF); err != nil {
			return nil, err
		}
		elem, err2 := p.Type()
		if err2 != nil {
			return nil, err2
		}
		node = ast.NewUnary(fileTok, elem)

	case token.SET:
		setTok := p.take()
		if _, err = p.expect(token.OF); err != nil {
			return nil, err
		}
		elem, err2 := p.SimpleType()
		if err2 != nil {
			return nil, err2
		}
		node = ast.NewUnary(setTok, elem)

	case token.RECORD:
		recordTok := p.take()
		fields, err2 := p.FieldList()
		if err2 != nil {
			return nil, err2
		}
		if _, err2 = p.expect(token.END); err2 != nil {
			return nil, err2
		}
		node = ast.NewUnary(recordTok, fields)

	default:
		if packedTok != nil {
			return nil, newParserError(*packedTok, "packed is not allowed before a simple type")
		}
		return p.SimpleType()
	}

	if packedTok != nil {
		node = ast.NewUnary(*packedTok, node)
	}
	return node, nil
}

func (p *Parser) arrayIndexList() (*ast.Node, error) {
	lbracketTok, err := p.expect(token.LBRACKET)
	if err != nil {
		return nil, err
	}

	items := []*ast.Node{}
	seps := []token.Token{}

	first, err := p.SimpleType()
	if err != nil {
		return nil, err
	}
	items = append(items, first)

	for p.at(token.COMMA) {
		seps = append(seps, p.take())
		next, err := p.SimpleType()
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

// SimpleType parses an enumeration, a subrange or sized type, or a lone
// constant (type-name reference).
func (p *Parser) SimpleType() (*ast.Node, error) {
	if p.at(token.LPAREN) {
		lparenTok := p.take()

		idents := []token.Token{}
		seps := []token.Token{}

		first, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		idents = append(idents, first)

		for p.at(token.COMMA) {
			seps = append(seps, p.take())
			next, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			idents = append(idents, next)
		}

		rparenTok, err := p.expect(token.RPAREN)
		if err != nil {
			return nil, err
		}

		items := make([]*ast.Node, len(idents))
		for i, t := range idents {
			items[i] = lit(t)
		}
		return buildSpine(lparenTok, items, seps, rparenTok), nil
	}

	base, err := p.Constant()
	if err != nil {
		return nil, err
	}

	switch {
	case p.at(token.DOTDOT):
		dotdotTok := p.take()
		high, err := p.Constant()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(dotdotTok, base, high), nil
	case p.at(token.LBRACKET):
		lbracketTok := p.take()
		expr, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return ast.NewBinary(lbracketTok, base, expr), nil
	default:
		return ast.NewGrouping(base), nil
	}
}

// FieldList parses a record body: zero or more fixed-field lines
// followed by an optional variant (case) part. It does not consume the
// terminating `end` — the caller (Type's RECORD branch) does.
func (p *Parser) FieldList() (*ast.Node, error) {
	items := []*ast.Node{}

	for !p.at(token.CASE) && !p.at(token.END) {
		identList, err := p.IdentifierList()
		if err != nil {
			return nil, err
		}
		colonTok, err := p.expect(token.COLON)
		if err != nil {
			return nil, err
		}
		fieldType, err := p.Type()
		if err != nil {
			return nil, err
		}
		items = append(items, ast.NewBinary(colonTok, identList, fieldType))

		if p.at(token.SEMICOLON) {
			p.take()
			continue
		}
		break
	}

	if p.at(token.CASE) {
		caseItems, err := p.fieldListVariantPart()
		if err != nil {
			return nil, err
		}
		items = append(items, caseItems...)
	}

	if len(items) == 0 {
		return nil, newParserError(p.peek(), "record must have at least one field or a variant part")
	}
	return buildNullSpine(items), nil
}

func (p *Parser) fieldListVariantPart() ([]*ast.Node, error) {
	p.take() // 'case'

	var header *ast.Node
	if p.at(token.IDENTIFIER) && p.peekFar(1).Type == token.COLON {
		discTok := p.take()
		p.take() // ':'
		tagTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		ofTok, err := p.expect(token.OF)
		if err != nil {
			return nil, err
		}
		header = ast.NewBinary(ofTok, lit(discTok), lit(tagTok))
	} else {
		tagTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		ofTok, err := p.expect(token.OF)
		if err != nil {
			return nil, err
		}
		header = ast.NewUnary(ofTok, lit(tagTok))
	}

	items := []*ast.Node{header}

	for {
		labels, err := p.constantList()
		if err != nil {
			return nil, err
		}
		colonTok, err := p.expect(token.COLON)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		inner, err := p.FieldList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		items = append(items, ast.NewBinary(colonTok, labels, inner))

		if p.at(token.SEMICOLON) {
			p.take()
			if p.at(token.END) {
				break
			}
			continue
		}
		break
	}

	return items, nil
}

// constantList parses a comma-separated list of constants used as a
// case-branch label set, building a right-leaning chain rooted at the
// first comma with no terminal sentinel (there is no closing delimiter
// to anchor one). A single constant is returned unwrapped.
func (p *Parser) constantList() (*ast.Node, error) {
	first, err := p.Constant()
	if err != nil {
		return nil, err
	}
	if !p.at(token.COMMA) {
		return first, nil
	}

	items := []*ast.Node{first}
	seps := []token.Token{}
	for p.at(token.COMMA) {
		seps = append(seps, p.take())
		next, err := p.Constant()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}

	node := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		node = ast.NewBinary(seps[i], items[i], node)
	}
	return node, nil
}

// IdentifierList parses one or more IDENTIFIER tokens separated by `,`,
// encoded as a left-leaning chain of Unary(ident, nextOrNull).
func (p *Parser) IdentifierList() (*ast.Node, error) {
	idents := []token.Token{}

	first, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	idents = append(idents, first)

	for p.at(token.COMMA) {
		p.take()
		next, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		idents = append(idents, next)
	}

	return buildUnaryChain(idents), nil
}

// Identifier parses a single IDENTIFIER as a Literal.
func (p *Parser) Identifier() (*ast.Node, error) {
	tok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return lit(tok), nil
}

// ParameterList parses `(` ident-group `{` `;` ident-group `}` `)`. A
// missing or empty parenthesis pair is equivalent to no parameter list
// and reports as a nil node with no error.
func (p *Parser) ParameterList() (*ast.Node, error) {
	if !p.at(token.LPAREN) {
		return nil, nil
	}
	lparenTok := p.take()
	if p.at(token.RPAREN) {
		p.take()
		return nil, nil
	}

	groups := []*ast.Node{}
	seps := []token.Token{}

	first, err := p.paramGroup()
	if err != nil {
		return nil, err
	}
	groups = append(groups, first)

	for p.at(token.SEMICOLON) {
		seps = append(seps, p.take())
		next, err := p.paramGroup()
		if err != nil {
			return nil, err
		}
		groups = append(groups, next)
	}

	rparenTok, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return buildSpine(lparenTok, groups, seps, rparenTok), nil
}

// paramGroup parses `[var] ident, ..., ident : IDENT`, anchored at the
// type-name token: Binary(typeIdent, Literal(VAR), ident-list) with
// var, Unary(typeIdent, ident-list) without.
func (p *Parser) paramGroup() (*ast.Node, error) {
	var varTok *token.Token
	if p.at(token.VAR) {
		t := p.take()
		varTok = &t
	}

	identList, err := p.IdentifierList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typeTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if varTok != nil {
		return ast.NewBinary(typeTok, lit(*varTok), identList), nil
	}
	return ast.NewUnary(typeTok, identList), nil
}
