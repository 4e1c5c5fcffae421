package lexer

import (
	"ezc/internal/diag"
	"ezc/internal/token"
)

// scanChar scans 'x' or one of the escapes \n \t \r \0 \\ \'.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '

	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF(), b == '\n':
		return lx.unterminatedChar(start)
	case b == '\'':
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexEmptyChar, sp, "empty char literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	case b == '\\':
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'n', 't', 'r', '0', '\\', '\'':
			lx.cursor.Bump()
		default:
			lx.bumpRune()
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnknownChar, sp, "unknown escape sequence")
		}
	default:
		lx.bumpRune()
	}

	if !lx.cursor.Eat('\'') {
		return lx.unterminatedChar(start)
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) unterminatedChar(start Mark) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == ';' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedChar, sp, "unterminated char literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
