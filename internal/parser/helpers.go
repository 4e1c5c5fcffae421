package parser

import (
	"ezc/internal/diag"
	"ezc/internal/source"
	"ezc/internal/token"
)

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagnosticSpan points at the next token, or right after the last consumed
// one when the input is exhausted.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code and returns false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string, notes ...diag.Note) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagnosticSpan()
	p.report(code, diag.SevError, sp, msg+", got "+describe(p.lx.Peek()), notes...)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes ...diag.Note) bool {
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() && sev == diag.SevError && p.opts.CurrentErrors > p.opts.MaxErrors {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
	return true
}

// resync skips the rest of a broken statement: through the next ';', or up
// to a '}' or EOF which the enclosing block handles.
func (p *Parser) resync() {
	for {
		switch p.lx.Peek().Kind {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			p.advance()
			return
		}
		p.advance()
	}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Invalid:
		return "invalid token"
	}
	if tok.Text != "" {
		return "'" + tok.Text + "'"
	}
	return tok.Kind.Spelling()
}
