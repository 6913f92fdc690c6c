package parser

import (
	"github.com/danirod-live/pascal2go/internal/ast"
	"github.com/danirod-live/pascal2go/pkg/token"
)

// Program parses `program IDENT [ ( IDENT, … ) ] ; block .`.
func (p *Parser) Program() (*ast.Node, error) {
	progTok, err := p.expect(token.PROGRAM)
	if err != nil {
		return nil, err
	}
	identTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	var header *ast.Node
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
		header = ast.NewUnary(identTok, buildSpine(lparenTok, items, seps, rparenTok))
	} else {
		header = lit(identTok)
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	block, err := p.Block()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOT); err != nil {
		return nil, err
	}
	return ast.NewBinary(progTok, header, block), nil
}

// Block parses a sequence of const/type/var sections and subprogram
// declarations, in any order and multiplicity, terminated by a compound
// statement. The whole sequence is strung into a null-anchored cons
// spine whose final cell holds the compound statement and has a nil
// Right.
func (p *Parser) Block() (*ast.Node, error) {
	items := []*ast.Node{}
	for {
		switch p.peek().Type {
		case token.CONST:
			node, err := p.constSection()
			if err != nil {
				return nil, err
			}
			items = append(items, node)
		case token.TYPE:
			node, err := p.typeSection()
			if err != nil {
				return nil, err
			}
			items = append(items, node)
		case token.VAR:
			node, err := p.varSection()
			if err != nil {
				return nil, err
			}
			items = append(items, node)
		case token.FUNCTION, token.PROCEDURE:
			node, err := p.subprogramDecl()
			if err != nil {
				return nil, err
			}
			items = append(items, node)
		case token.BEGIN:
			compound, err := p.compoundStatement()
			if err != nil {
				return nil, err
			}
			items = append(items, compound)
			return buildNullSpine(items), nil
		default:
			return nil, newParserError(p.peek(), "expected a declaration or 'begin', got %s", p.peek().Type)
		}
	}
}

// constSection parses `const IDENT = constant ; { IDENT = constant ; }`.
func (p *Parser) constSection() (*ast.Node, error) {
	constTok := p.take()

	lines := []*ast.Node{}
	for p.at(token.IDENTIFIER) {
		identTok := p.take()
		eqTok, err := p.expect(token.EQUAL)
		if err != nil {
			return nil, err
		}
		value, err := p.Constant()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		lines = append(lines, ast.NewBinary(eqTok, lit(identTok), value))
	}
	if len(lines) == 0 {
		return nil, newParserError(p.peek(), "const section requires at least one declaration")
	}
	return ast.NewUnary(constTok, buildNullSpine(lines)), nil
}

// typeSection parses `type IDENT = type ; { IDENT = type ; }`.
func (p *Parser) typeSection() (*ast.Node, error) {
	typeTok := p.take()

	lines := []*ast.Node{}
	for p.at(token.IDENTIFIER) {
		identTok := p.take()
		eqTok, err := p.expect(token.EQUAL)
		if err != nil {
			return nil, err
		}
		typeNode, err := p.Type()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		lines = append(lines, ast.NewBinary(eqTok, lit(identTok), typeNode))
	}
	if len(lines) == 0 {
		return nil, newParserError(p.peek(), "type section requires at least one declaration")
	}
	return ast.NewUnary(typeTok, buildNullSpine(lines)), nil
}

// varSection parses `var ident, … : type ; { ident, … : type ; }`.
func (p *Parser) varSection() (*ast.Node, error) {
	varTok := p.take()

	lines := []*ast.Node{}
	for p.at(token.IDENTIFIER) {
		identList, err := p.IdentifierList()
		if err != nil {
			return nil, err
		}
		colonTok, err := p.expect(token.COLON)
		if err != nil {
			return nil, err
		}
		typeNode, err := p.Type()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		lines = append(lines, ast.NewBinary(colonTok, identList, typeNode))
	}
	if len(lines) == 0 {
		return nil, newParserError(p.peek(), "var section requires at least one declaration")
	}
	return ast.NewUnary(varTok, buildNullSpine(lines)), nil
}

// subprogramDecl parses a function or procedure declaration:
// Binary(FUNCTION|PROCEDURE, prototype, block), prototype being
// Binary(IDENT, parameter-list, return-type-or-null).
func (p *Parser) subprogramDecl() (*ast.Node, error) {
	kwTok := p.take()
	identTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	params, err := p.ParameterList()
	if err != nil {
		return nil, err
	}

	var retType *ast.Node
	if kwTok.Type == token.FUNCTION {
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		retType, err = p.Type()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	prototype := ast.NewBinary(identTok, params, retType)

	body, err := p.Block()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewBinary(kwTok, prototype, body), nil
}
