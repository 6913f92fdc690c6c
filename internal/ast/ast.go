// Package ast defines the syntax tree produced by the parser: a single
// uniform Node shape rather than one type per grammar rule, so every
// downstream pass (the dumper here, and eventually anything that walks
// the tree) handles one shape instead of dozens.
package ast

import (
	"fmt"
	"strings"

	"github.com/danirod-live/pascal2go/pkg/token"
)

// Kind distinguishes the four node shapes a grammar production can
// produce.
type Kind int

const (
	// Literal holds a single token and no children: an identifier, a
	// number, a string, a keyword used as a value (nil, a sentinel
	// delimiter at the tail of a cons-spine list), and so on.
	Literal Kind = iota
	// Unary holds an operator token and one child.
	Unary
	// Binary holds an operator token and two children. Binary also
	// backs every cons-spine list (argument lists, parameter lists,
	// field lists, statement sequences): the token carries the
	// separator or the production's own marker, Left is the head, and
	// Right continues the spine (or is nil at the final cell).
	Binary
	// Grouping holds no token and exactly one child: a
	// precedence-transparent wrapper, used for parenthesized expressions,
	// every simple_expression operand, a lone-constant simple type, and
	// the last statement of a repeat body. NewGrouping collapses Grouping(Grouping(x)) into
	// Grouping(x) so nested parentheses never nest in the tree.
	Grouping
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Unary:
		return "Unary"
	case Binary:
		return "Binary"
	case Grouping:
		return "Grouping"
	default:
		return "Unknown"
	}
}

// Node is the single AST node shape. Which fields are meaningful depends
// on Kind:
//
//	Literal:  Token set,        Left nil,         Right nil
//	Unary:    Token set,        Left set-or-nil,  Right nil
//	Binary:   Token set,        Left set-or-nil,  Right set-or-nil
//	Grouping: Token nil,        Left set,         Right nil
type Node struct {
	Kind  Kind
	Token *token.Token
	Left  *Node
	Right *Node
}

// NewLiteral builds a Literal node around tok.
func NewLiteral(tok token.Token) *Node {
	t := tok
	return &Node{Kind: Literal, Token: &t}
}

// NewUnary builds a Unary node: tok applied to child.
func NewUnary(tok token.Token, child *Node) *Node {
	t := tok
	return &Node{Kind: Unary, Token: &t, Left: child}
}

// NewBinary builds a Binary node: tok joining left and right. right may
// be nil, which is how cons-spine lists terminate.
func NewBinary(tok token.Token, left, right *Node) *Node {
	t := tok
	return &Node{Kind: Binary, Token: &t, Left: left, Right: right}
}

// NewGrouping builds a Grouping node wrapping child. If child is itself
// a Grouping, the wrapping collapses: NewGrouping(NewGrouping(x)) and
// NewGrouping(x) produce an identical tree, since parentheses around an
// already-parenthesized expression add nothing observable.
func NewGrouping(child *Node) *Node {
	if child != nil && child.Kind == Grouping {
		return child
	}
	return &Node{Kind: Grouping, Left: child}
}

// Dump renders n as an indented, depth-first preorder text tree: one
// line per node, showing its Kind and, when present, its Token. This is
// the reference format for test goldens and the pascalc parse command.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(b, "%s<nil>\n", indent)
		return
	}

	if n.Token != nil {
		fmt.Fprintf(b, "%s%s %s\n", indent, n.Kind, n.Token)
	} else {
		fmt.Fprintf(b, "%s%s\n", indent, n.Kind)
	}

	switch n.Kind {
	case Literal:
		// no children
	case Unary:
		dump(b, n.Left, depth+1)
	case Binary:
		dump(b, n.Left, depth+1)
		if n.Right != nil {
			dump(b, n.Right, depth+1)
		}
	case Grouping:
		dump(b, n.Left, depth+1)
	}
}
