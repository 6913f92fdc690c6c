package parser

import (
	"fmt"

	"github.com/danirod-live/pascal2go/pkg/token"
)

// ParserError is a structured, fatal parse error: a message, the
// position it occurred at, and the token the parser was looking at when
// it gave up. A ParserError always aborts the parse that produced it —
// there is no recovery mode in this grammar.
type ParserError struct {
	Message string
	Pos     token.Position
	Token   token.Token
}

// Error implements the error interface, matching the CLI's wire format:
// "<message>. <tokenkind>(<meta>)\n Line: L, Col: C".
func (e *ParserError) Error() string {
	return fmt.Sprintf("%s. %s\n Line: %d, Col: %d", e.Message, tokenMeta(e.Token), e.Pos.Line, e.Pos.Column)
}

// tokenMeta renders a token as "<tokenkind>(<meta>)", omitting the
// parenthesized part for tokens that carry no literal text. Unlike
// token.Token.String, this never embeds a position — the wire format
// reports position separately on its own line.
func tokenMeta(tok token.Token) string {
	if tok.Literal == "" {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s(%s)", tok.Type, tok.Literal)
}

func newParserError(tok token.Token, format string, args ...any) *ParserError {
	return &ParserError{
		Message: fmt.Sprintf(format, args...),
		Pos:     tok.Pos,
		Token:   tok,
	}
}
