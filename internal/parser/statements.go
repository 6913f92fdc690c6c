package parser

import (
	"github.com/danirod-live/pascal2go/internal/ast"
	"github.com/danirod-live/pascal2go/pkg/token"
)

// Statement parses a single statement, discarding a leading label if
// present and dispatching on the first remaining token. An empty
// statement position (before `;` or `end`) yields a nil node, not an
// error — callers that build a statement sequence must accept that.
func (p *Parser) Statement() (*ast.Node, error) {
	if (p.at(token.IDENTIFIER) || p.at(token.DIGIT)) && p.peekFar(1).Type == token.COLON {
		p.take() // label
		p.take() // ':'
	}

	tok := p.peek()
	switch tok.Type {
	case token.IDENTIFIER:
		switch p.peekFar(1).Type {
		case token.LBRACKET, token.DOT, token.CARET, token.ASSIGN:
			return p.assignmentStatement()
		default:
			return p.procedureCallStatement()
		}
	case token.BEGIN:
		return p.compoundStatement()
	case token.IF:
		return p.ifStatement()
	case token.REPEAT:
		return p.repeatStatement()
	case token.WHILE:
		return p.whileStatement()
	case token.FOR:
		return p.forStatement()
	case token.CASE:
		return p.caseStatement()
	case token.WITH:
		return p.withStatement()
	case token.GOTO:
		return p.gotoStatement()
	case token.EXIT:
		return p.exitStatement()
	case token.SEMICOLON, token.END:
		return nil, nil
	default:
		return nil, newParserError(tok, "unexpected token at start of statement: %s", tok.Type)
	}
}

func (p *Parser) assignmentStatement() (*ast.Node, error) {
	varNode, err := p.Variable()
	if err != nil {
		return nil, err
	}
	assignTok, err := p.expect(token.ASSIGN)
	if err != nil {
		return nil, err
	}
	exprNode, err := p.Expression()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(assignTok, varNode, exprNode), nil
}

// procedureCallStatement parses IDENTIFIER [ ( expr {, expr} ) ]. A
// bare identifier or empty parentheses both produce just the
// identifier.
func (p *Parser) procedureCallStatement() (*ast.Node, error) {
	identTok := p.take()
	if !p.at(token.LPAREN) {
		return lit(identTok), nil
	}
	lparenTok := p.take()
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

// compoundStatement parses `begin S ; S ; … ; S end`, building a
// right-leaning spine anchored at `begin`, each following cell anchored
// at its `;`, terminated by a Literal holding `end`.
func (p *Parser) compoundStatement() (*ast.Node, error) {
	beginTok := p.take()

	items := []*ast.Node{}
	seps := []token.Token{}

	first, err := p.Statement()
	if err != nil {
		return nil, err
	}
	items = append(items, first)

	for p.at(token.SEMICOLON) {
		seps = append(seps, p.take())
		next, err := p.Statement()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}

	endTok, err := p.expect(token.END)
	if err != nil {
		return nil, err
	}
	return buildSpine(beginTok, items, seps, endTok), nil
}

func (p *Parser) ifStatement() (*ast.Node, error) {
	ifTok := p.take()
	cond, err := p.Expression()
	if err != nil {
		return nil, err
	}
	thenTok, err := p.expect(token.THEN)
	if err != nil {
		return nil, err
	}
	thenStmt, err := p.Statement()
	if err != nil {
		return nil, err
	}

	var elseNode *ast.Node
	if p.at(token.ELSE) {
		elseTok := p.take()
		elseStmt, err := p.Statement()
		if err != nil {
			return nil, err
		}
		elseNode = ast.NewUnary(elseTok, elseStmt)
	}

	thenNode := ast.NewBinary(thenTok, thenStmt, elseNode)
	return ast.NewBinary(ifTok, cond, thenNode), nil
}

func (p *Parser) repeatStatement() (*ast.Node, error) {
	repeatTok := p.take()

	stmts := []*ast.Node{}
	seps := []token.Token{}
	first, err := p.Statement()
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, first)

	for p.at(token.SEMICOLON) {
		seps = append(seps, p.take())
		next, err := p.Statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, next)
	}

	untilTok, err := p.expect(token.UNTIL)
	if err != nil {
		return nil, err
	}
	cond, err := p.Expression()
	if err != nil {
		return nil, err
	}

	body := buildGroupingTerminatedChain(stmts, seps)
	return ast.NewBinary(repeatTok, body, ast.NewUnary(untilTok, cond)), nil
}

func (p *Parser) whileStatement() (*ast.Node, error) {
	whileTok := p.take()
	cond, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.Statement()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(whileTok, cond, body), nil
}

func (p *Parser) forStatement() (*ast.Node, error) {
	forTok := p.take()
	identTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.Expression()
	if err != nil {
		return nil, err
	}

	var dirTok token.Token
	switch p.peek().Type {
	case token.TO, token.DOWNTO:
		dirTok = p.take()
	default:
		return nil, newParserError(p.peek(), "expected 'to' or 'downto', got %s", p.peek().Type)
	}

	limit, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.Statement()
	if err != nil {
		return nil, err
	}

	rangeNode := ast.NewBinary(dirTok, start, limit)
	identNode := ast.NewUnary(identTok, rangeNode)
	return ast.NewBinary(forTok, identNode, body), nil
}

func (p *Parser) caseStatement() (*ast.Node, error) {
	caseTok := p.take()
	discriminant, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OF); err != nil {
		return nil, err
	}
	list, err := p.caseList()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(caseTok, discriminant, list), nil
}

// caseList parses `constant-list : statement` items separated by `;`,
// ending with `end`; a trailing `; end` is permitted. Each cons cell is
// anchored at the real token that closed its item — the following `;`
// for every item but the last, and the closing `end` for the last —
// with a nil right child terminating the spine, per caselist() in
// original_source/libpasta/parser-statement.c.
func (p *Parser) caseList() (*ast.Node, error) {
	items := []*ast.Node{}
	anchors := []token.Token{}

	for {
		label, err := p.constantList()
		if err != nil {
			return nil, err
		}
		colonTok, err := p.expect(token.COLON)
		if err != nil {
			return nil, err
		}
		stmt, err := p.Statement()
		if err != nil {
			return nil, err
		}
		items = append(items, ast.NewBinary(colonTok, label, stmt))

		if p.at(token.SEMICOLON) {
			sepTok := p.take()
			if p.at(token.END) {
				anchors = append(anchors, p.take())
				break
			}
			anchors = append(anchors, sepTok)
			continue
		}

		endTok, err := p.expect(token.END)
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, endTok)
		break
	}

	return buildAnchoredSpine(items, anchors), nil
}

func (p *Parser) withStatement() (*ast.Node, error) {
	withTok := p.take()
	varList, err := p.variableList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.Statement()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(withTok, varList, body), nil
}

// variableList parses a comma-separated list of variables for `with`.
// A single variable is returned unwrapped; more than one builds a
// right-leaning chain rooted at the first comma, same style as
// constantList.
func (p *Parser) variableList() (*ast.Node, error) {
	first, err := p.Variable()
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
		next, err := p.Variable()
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

func (p *Parser) gotoStatement() (*ast.Node, error) {
	gotoTok := p.take()
	num, err := p.UnsignedInteger()
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(gotoTok, num), nil
}

func (p *Parser) exitStatement() (*ast.Node, error) {
	exitTok := p.take()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var inner *ast.Node
	if p.at(token.IDENTIFIER) {
		inner = lit(p.take())
	} else {
		progTok, err := p.expect(token.PROGRAM)
		if err != nil {
			return nil, err
		}
		inner = lit(progTok)
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return ast.NewUnary(exitTok, inner), nil
}
