package lexer

import (
	"strconv"

	"ezc/internal/diag"
	"ezc/internal/token"
)

var punct = [256]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'~': token.Tilde,
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	if k := punct[b]; k != token.Invalid {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	r, _ := lx.peekRune()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnknownChar, sp, "unknown character "+quoteRune(r))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
