package lexer

import (
	"ezc/internal/diag"
	"ezc/internal/source"
)

type Options struct {
	Reporter diag.Reporter // nil discards lexical errors
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
