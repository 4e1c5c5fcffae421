package lexer

// skipTrivia drops whitespace and // comments before a token.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
		case '/':
			_, next, ok := lx.cursor.Peek2()
			if !ok || next != '/' {
				return
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}
