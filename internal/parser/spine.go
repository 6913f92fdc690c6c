package parser

import (
	"github.com/danirod-live/pascal2go/internal/ast"
	"github.com/danirod-live/pascal2go/pkg/token"
)

// buildSpine assembles a right-leaning Binary cons spine out of items,
// terminated by a Literal holding closeTok. The first cons cell is
// anchored at openTok (the delimiter that introduced the list); every
// following cell is anchored at the corresponding separator in seps
// (len(seps) == len(items)-1). An empty items slice collapses to just
// the terminal Literal, the same shape setConstructor gives an empty
// "[]".
func buildSpine(openTok token.Token, items []*ast.Node, seps []token.Token, closeTok token.Token) *ast.Node {
	node := lit(closeTok)
	for i := len(items) - 1; i >= 0; i-- {
		var opTok token.Token
		if i == 0 {
			opTok = openTok
		} else {
			opTok = seps[i-1]
		}
		node = ast.NewBinary(opTok, items[i], node)
	}
	return node
}

// buildUnaryChain assembles a left-leaning chain of Unary(tok, nextOrNull)
// nodes out of toks, in source order: the first token in toks becomes the
// outermost node, the last becomes the innermost (with a nil child).
// This is the identifier-list encoding from the grammar.
func buildUnaryChain(toks []token.Token) *ast.Node {
	var node *ast.Node
	for i := len(toks) - 1; i >= 0; i-- {
		node = ast.NewUnary(toks[i], node)
	}
	return node
}

// buildAnchoredSpine assembles a right-leaning Binary cons spine out of
// items, anchoring cell i at anchors[i] (len(anchors) == len(items)),
// terminated by a nil right child after the final item. Unlike
// buildSpine, there is no separate opening or closing delimiter token —
// every cell, including the last, is anchored at a token the caller
// already associates with that specific item (e.g. the ';' or 'end'
// that closed it), per caselist()'s cons-cell construction in
// original_source/libpasta/parser-statement.c.
func buildAnchoredSpine(items []*ast.Node, anchors []token.Token) *ast.Node {
	var node *ast.Node
	for i := len(items) - 1; i >= 0; i-- {
		node = ast.NewBinary(anchors[i], items[i], node)
	}
	return node
}

// buildGroupingTerminatedChain assembles repeat_stmts()'s statement-list
// encoding (original_source/libpasta/parser-statement.c): a right-leaning
// Binary chain anchored at the real ';' separators, whose final cell is
// not a Binary at all but the last statement wrapped directly in a
// Grouping. A single statement collapses to just that Grouping, with no
// surrounding Binary. len(seps) == len(items)-1.
func buildGroupingTerminatedChain(items []*ast.Node, seps []token.Token) *ast.Node {
	node := ast.NewGrouping(items[len(items)-1])
	for i := len(items) - 2; i >= 0; i-- {
		node = ast.NewBinary(seps[i], items[i], node)
	}
	return node
}

// buildNullSpine assembles a right-leaning Binary cons spine whose every
// cell is anchored at a zero-value token (the grammar's "null" cons-cell
// marker used for declaration blocks), terminated by a nil right child
// at the final cell rather than a sentinel Literal.
func buildNullSpine(items []*ast.Node) *ast.Node {
	if len(items) == 0 {
		return nil
	}
	var placeholder token.Token
	node := (*ast.Node)(nil)
	for i := len(items) - 1; i >= 0; i-- {
		node = ast.NewBinary(placeholder, items[i], node)
	}
	return node
}
