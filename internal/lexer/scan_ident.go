package lexer

import (
	"golang.org/x/text/unicode/norm"

	"ezc/internal/diag"
	"ezc/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks it against the keywords.
// Non-ASCII identifiers are stored in NFC form.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	ascii := true

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, "unknown character "+quoteRune(r))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	for {
		r, sz = lx.peekRune()
		if sz == 0 {
			break
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				break
			}
		} else {
			if !isIdentContinueRune(r) {
				break
			}
			ascii = false
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if !ascii {
		text = norm.NFC.String(text)
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
