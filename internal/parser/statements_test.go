package parser

import (
	"testing"

	"github.com/danirod-live/pascal2go/pkg/token"
)

// TestAssignmentStatement is end-to-end scenario 4.
func TestAssignmentStatement(t *testing.T) {
	p := newParser(t, "x := y + 1")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := bw(token.ASSIGN,
		lw(token.IDENTIFIER, "x"),
		bw(token.PLUS, gw(lw(token.IDENTIFIER, "y")), gw(lw(token.DIGIT, "1"))),
	)
	checkNode(t, got, expected, "root")
}

func TestAssignmentToIndexedVariable(t *testing.T) {
	p := newParser(t, "a[1] := 0")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token.Type != token.ASSIGN {
		t.Fatalf("expected Binary(ASSIGN, ...), got %s", dumpSafe(got))
	}
	if got.Left.Kind.String() != "Unary" || got.Left.Token.Type != token.IDENTIFIER {
		t.Fatalf("expected lhs Unary(IDENT, suffix-chain), got %s", dumpSafe(got.Left))
	}
}

// TestIfThenElse is end-to-end scenario 5.
func TestIfThenElse(t *testing.T) {
	p := newParser(t, "if a > 0 then x := 1 else x := 2")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cond := bw(token.GREATER, gw(lw(token.IDENTIFIER, "a")), gw(lw(token.DIGIT, "0")))
	assign1 := bw(token.ASSIGN, lw(token.IDENTIFIER, "x"), gw(lw(token.DIGIT, "1")))
	assign2 := bw(token.ASSIGN, lw(token.IDENTIFIER, "x"), gw(lw(token.DIGIT, "2")))
	thenNode := bw(token.THEN, assign1, uw(token.ELSE, assign2))
	expected := bw(token.IF, cond, thenNode)
	checkNode(t, got, expected, "root")
}

func TestIfWithoutElse(t *testing.T) {
	p := newParser(t, "if a > 0 then x := 1")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	thenNode := got.Right
	if thenNode == nil || thenNode.Token.Type != token.THEN {
		t.Fatalf("expected Binary(THEN, ...), got %s", dumpSafe(got))
	}
	if thenNode.Right != nil {
		t.Fatalf("expected nil else branch, got %s", dumpSafe(thenNode.Right))
	}
}

// TestEmptyProcedureCall is end-to-end scenario 6.
func TestEmptyProcedureCall(t *testing.T) {
	p := newParser(t, "doit()")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkNode(t, got, lw(token.IDENTIFIER, "doit"), "root")
}

func TestBareProcedureCallNoParens(t *testing.T) {
	p := newParser(t, "doit")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkNode(t, got, lw(token.IDENTIFIER, "doit"), "root")
}

func TestProcedureCallWithArgs(t *testing.T) {
	p := newParser(t, "writeln(x, 1)")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := uw(token.IDENTIFIER,
		bw(token.LPAREN, gw(lw(token.IDENTIFIER, "x")),
			bw(token.COMMA, gw(lw(token.DIGIT, "1")), lw(token.RPAREN, ")"))),
	)
	checkNode(t, got, expected, "root")
}

func TestCompoundStatement(t *testing.T) {
	p := newParser(t, "begin x := 1; y := 2 end")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assign1 := bw(token.ASSIGN, lw(token.IDENTIFIER, "x"), gw(lw(token.DIGIT, "1")))
	assign2 := bw(token.ASSIGN, lw(token.IDENTIFIER, "y"), gw(lw(token.DIGIT, "2")))
	expected := bw(token.BEGIN, assign1, bw(token.SEMICOLON, assign2, lw(token.END, "")))
	checkNode(t, got, expected, "root")
}

func TestCompoundStatementAcceptsEmptyStatement(t *testing.T) {
	p := newParser(t, "begin x := 1; ; end")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token.Type != token.BEGIN {
		t.Fatalf("expected Binary(BEGIN, ...), got %s", dumpSafe(got))
	}
	// second cell holds the empty statement (nil) before the final ';'
	second := got.Right
	if second == nil || second.Left != nil {
		t.Fatalf("expected a nil empty-statement cell, got %s", dumpSafe(got))
	}
}

func TestWhileStatement(t *testing.T) {
	p := newParser(t, "while x < 10 do x := x")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token.Type != token.WHILE {
		t.Fatalf("expected Binary(WHILE, ...), got %s", dumpSafe(got))
	}
	checkNode(t, got.Left, bw(token.LESS, gw(lw(token.IDENTIFIER, "x")), gw(lw(token.DIGIT, "10"))), "cond")
}

func TestRepeatStatement(t *testing.T) {
	p := newParser(t, "repeat x := x until x = 0")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token.Type != token.REPEAT {
		t.Fatalf("expected Binary(REPEAT, ...), got %s", dumpSafe(got))
	}
	// a single-statement body is a bare Grouping, no Binary wrapper.
	assign := bw(token.ASSIGN, lw(token.IDENTIFIER, "x"), gw(lw(token.IDENTIFIER, "x")))
	checkNode(t, got.Left, gw(assign), "body")
	if got.Right == nil || got.Right.Token.Type != token.UNTIL {
		t.Fatalf("expected Unary(UNTIL, cond) on the right, got %s", dumpSafe(got))
	}
}

func TestRepeatStatementMultipleStatements(t *testing.T) {
	p := newParser(t, "repeat x := 1; y := 2; z := 3 until x = 0")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a multi-statement body chains Binary(';', a, Binary(';', b, Grouping(c))),
	// anchored on the real ';' separators, with only the final cell wrapped
	// in a Grouping.
	body := got.Left
	if body == nil || body.Token.Type != token.SEMICOLON {
		t.Fatalf("expected Binary(SEMICOLON, ...), got %s", dumpSafe(body))
	}
	assign1 := bw(token.ASSIGN, lw(token.IDENTIFIER, "x"), gw(lw(token.DIGIT, "1")))
	checkNode(t, body.Left, assign1, "body.Left")

	inner := body.Right
	if inner == nil || inner.Token.Type != token.SEMICOLON {
		t.Fatalf("expected second cell Binary(SEMICOLON, ...), got %s", dumpSafe(inner))
	}
	assign2 := bw(token.ASSIGN, lw(token.IDENTIFIER, "y"), gw(lw(token.DIGIT, "2")))
	checkNode(t, inner.Left, assign2, "body.Right.Left")

	assign3 := bw(token.ASSIGN, lw(token.IDENTIFIER, "z"), gw(lw(token.DIGIT, "3")))
	checkNode(t, inner.Right, gw(assign3), "body.Right.Right")
}

func TestForStatement(t *testing.T) {
	p := newParser(t, "for i := 1 to 10 do x := i")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token.Type != token.FOR {
		t.Fatalf("expected Binary(FOR, ...), got %s", dumpSafe(got))
	}
	identNode := got.Left
	if identNode == nil || identNode.Token.Type != token.IDENTIFIER || identNode.Token.Literal != "i" {
		t.Fatalf("expected Unary(IDENT i, range), got %s", dumpSafe(got))
	}
	rangeNode := identNode.Left
	if rangeNode == nil || rangeNode.Token.Type != token.TO {
		t.Fatalf("expected Binary(TO, start, limit), got %s", dumpSafe(identNode))
	}
}

func TestForStatementDownto(t *testing.T) {
	p := newParser(t, "for i := 10 downto 1 do x := i")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rangeNode := got.Left.Left
	if rangeNode == nil || rangeNode.Token.Type != token.DOWNTO {
		t.Fatalf("expected Binary(DOWNTO, ...), got %s", dumpSafe(rangeNode))
	}
}

// TestCaseStatement is end-to-end scenario 8.
func TestCaseStatement(t *testing.T) {
	p := newParser(t, "case n of 1,2: x:=1; 3: x:=2 end")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token.Type != token.CASE {
		t.Fatalf("expected Binary(CASE, ...), got %s", dumpSafe(got))
	}
	checkNode(t, got.Left, gw(lw(token.IDENTIFIER, "n")), "discriminant")

	// the spine's first cell is anchored at the real ';' that closed the
	// first item, and its last cell is anchored at the closing 'end' with
	// a nil right child — not a placeholder-anchored, sentinel-terminated
	// spine.
	caseList := got.Right
	if caseList == nil || caseList.Token.Type != token.SEMICOLON {
		t.Fatalf("expected first cell Binary(SEMICOLON, ...), got %s", dumpSafe(caseList))
	}
	firstItem := caseList.Left
	if firstItem == nil || firstItem.Token.Type != token.COLON {
		t.Fatalf("expected first case item Binary(COLON, label, stmt), got %s", dumpSafe(firstItem))
	}
	label := firstItem.Left
	expectedLabel := bw(token.COMMA, lw(token.DIGIT, "1"), lw(token.DIGIT, "2"))
	checkNode(t, label, expectedLabel, "label")

	secondCell := caseList.Right
	if secondCell == nil || secondCell.Token.Type != token.END || secondCell.Right != nil {
		t.Fatalf("expected final cell Binary(END, item, nil), got %s", dumpSafe(secondCell))
	}
	secondItem := secondCell.Left
	if secondItem == nil || secondItem.Token.Type != token.COLON {
		t.Fatalf("expected second case item Binary(COLON, label, stmt), got %s", dumpSafe(secondItem))
	}
	checkNode(t, secondItem.Left, lw(token.DIGIT, "3"), "secondLabel")
}

func TestWithStatement(t *testing.T) {
	p := newParser(t, "with a, b do x := 1")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token.Type != token.WITH {
		t.Fatalf("expected Binary(WITH, ...), got %s", dumpSafe(got))
	}
	expectedVarList := bw(token.COMMA, lw(token.IDENTIFIER, "a"), lw(token.IDENTIFIER, "b"))
	checkNode(t, got.Left, expectedVarList, "varlist")
}

func TestGotoStatement(t *testing.T) {
	p := newParser(t, "goto 100")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkNode(t, got, uw(token.GOTO, lw(token.DIGIT, "100")), "root")
}

func TestExitStatement(t *testing.T) {
	p := newParser(t, "exit(foo)")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkNode(t, got, uw(token.EXIT, lw(token.IDENTIFIER, "foo")), "root")
}

func TestExitStatementProgram(t *testing.T) {
	p := newParser(t, "exit(program)")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkNode(t, got, uw(token.EXIT, lw(token.PROGRAM, "")), "root")
}

func TestLabeledStatementDiscardsLabel(t *testing.T) {
	p := newParser(t, "100: x := 1")
	got, err := p.Statement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkNode(t, got, bw(token.ASSIGN, lw(token.IDENTIFIER, "x"), gw(lw(token.DIGIT, "1"))), "root")
}
