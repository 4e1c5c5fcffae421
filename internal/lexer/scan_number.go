package lexer

import (
	"ezc/internal/diag"
	"ezc/internal/token"
)

// scanNumber accepts 123, 1_000, 0x1f, 0b101, 0o17, 1.5, 1e-3 and 2.5E+10.
// Malformed forms are reported and returned as Invalid.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		var digit func(byte) bool
		switch b1 {
		case 'x', 'X':
			digit = isHex
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			n, ok := lx.eatDigits(digit)
			if n == 0 {
				return lx.badNumber(start, "missing digits after base prefix")
			}
			if !ok {
				return lx.badSeparator(start)
			}
			return lx.finishNumber(start, kind)
		}
		if isDec(b1) {
			lx.eatDigits(isDec)
			return lx.badNumber(start, "leading zeros are not allowed in decimal literals")
		}
	}

	if _, ok := lx.eatDigits(isDec); !ok {
		return lx.badSeparator(start)
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		if _, ok := lx.eatDigits(isDec); !ok {
			return lx.badSeparator(start)
		}
	} else if b0 == '.' && !isIdentStartByte(b1) {
		lx.cursor.Bump()
		return lx.badNumber(start, "expected digit after '.'")
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if !lx.cursor.Eat('+') {
			lx.cursor.Eat('-')
		}
		n, ok := lx.eatDigits(isDec)
		if n == 0 {
			lx.cursor.Reset(mark)
			lx.eatIdentTail()
			return lx.badNumber(start, "malformed exponent")
		}
		if !ok {
			return lx.badSeparator(start)
		}
		kind = token.FloatLit
	}
	return lx.finishNumber(start, kind)
}

// finishNumber rejects identifier characters glued to the literal, e.g. 12abc.
func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	if b := lx.cursor.Peek(); isIdentStartByte(b) {
		lx.eatIdentTail()
		return lx.badNumber(start, "invalid suffix on number literal")
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// badSeparator reports a '_' that is not between two digits. The rest of
// the literal is consumed with it.
func (lx *Lexer) badSeparator(start Mark) token.Token {
	lx.eatIdentTail()
	return lx.badNumber(start, "invalid digit separator")
}

// eatDigits consumes digits and '_' separators, returning the digit count.
// ok is false when a separator is doubled or trails the digits.
func (lx *Lexer) eatDigits(digit func(byte) bool) (n int, ok bool) {
	ok = true
	sep := false
	for {
		b := lx.cursor.Peek()
		switch {
		case digit(b):
			n++
			sep = false
		case b == '_' && n > 0:
			if sep {
				ok = false
			}
			sep = true
		default:
			if sep {
				ok = false
			}
			return n, ok
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) eatIdentTail() {
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
