package parser

import (
	"testing"

	"github.com/danirod-live/pascal2go/internal/ast"
	"github.com/danirod-live/pascal2go/internal/lexer"
	"github.com/danirod-live/pascal2go/pkg/token"
)

// want describes the shape of an expected ast.Node, ignoring source
// position: every test in this package asserts structure (kind, token
// type, literal text, children) rather than exact line/column, since
// positions fall directly out of the source text and add nothing to
// what a parsing test should catch.
type want struct {
	kind        ast.Kind
	typ         token.Type
	lit         string
	noToken     bool // Grouping nodes carry no token
	left, right *want
	rightNil    bool // assert Right is nil explicitly (cons-spine terminator)
}

func newParser(t *testing.T, src string) *Parser {
	t.Helper()
	s := lexer.New([]byte(src))
	p := New()
	p.Load(s)
	return p
}

func checkNode(t *testing.T, got *ast.Node, w *want, path string) {
	t.Helper()
	if w == nil {
		if got != nil {
			t.Fatalf("%s: expected nil node, got %s", path, ast.Dump(got))
		}
		return
	}
	if got == nil {
		t.Fatalf("%s: expected %s node, got nil", path, w.kind)
	}
	if got.Kind != w.kind {
		t.Fatalf("%s: expected kind %s, got %s (%s)", path, w.kind, got.Kind, ast.Dump(got))
	}
	if w.noToken {
		if got.Token != nil {
			t.Fatalf("%s: expected no token, got %s", path, got.Token)
		}
	} else {
		if got.Token == nil {
			t.Fatalf("%s: expected token %s, got none", path, w.typ)
		}
		if got.Token.Type != w.typ {
			t.Fatalf("%s: expected token type %s, got %s", path, w.typ, got.Token.Type)
		}
		if w.lit != "" && got.Token.Literal != w.lit {
			t.Fatalf("%s: expected literal %q, got %q", path, w.lit, got.Token.Literal)
		}
	}
	if w.rightNil {
		if got.Right != nil {
			t.Fatalf("%s.Right: expected nil, got %s", path, ast.Dump(got.Right))
		}
	}
	checkNode(t, got.Left, w.left, path+".Left")
	if !w.rightNil {
		checkNode(t, got.Right, w.right, path+".Right")
	}
}

func dumpSafe(n *ast.Node) string {
	if n == nil {
		return "<nil>"
	}
	return ast.Dump(n)
}

func lw(typ token.Type, lit string) *want {
	return &want{kind: ast.Literal, typ: typ, lit: lit}
}

func uw(typ token.Type, child *want) *want {
	return &want{kind: ast.Unary, typ: typ, left: child}
}

func bw(typ token.Type, left, right *want) *want {
	return &want{kind: ast.Binary, typ: typ, left: left, right: right}
}

func gw(child *want) *want {
	return &want{kind: ast.Grouping, noToken: true, left: child}
}
