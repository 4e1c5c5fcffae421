package parser

import (
	"ezc/internal/diag"
	"ezc/internal/lexer"
	"ezc/internal/source"
	"ezc/internal/symbols"
	"ezc/internal/tac"
	"ezc/internal/token"
	"ezc/internal/trace"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
	Tracer        trace.Tracer
}

// Enough reports whether the error limit was reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result summarizes a parsed file.
type Result struct {
	Declarations int
	Statements   int    // lowered expression statements
	MaxFrame     uint64 // largest storage reserved by nested blocks at once
}

type Parser struct {
	lx       *lexer.Lexer
	env      *symbols.Env
	gen      *tac.Generator
	opts     Options
	lastSpan source.Span // last consumed token
	res      Result
	fatal    error
}

// ParseFile parses the whole token stream of lx and lowers every expression
// statement through gen. The error is non-nil only if emission failed.
func ParseFile(lx *lexer.Lexer, gen *tac.Generator, opts Options) (Result, error) {
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter
	}
	p := &Parser{
		lx:   lx,
		env:  symbols.NewEnv(),
		gen:  gen,
		opts: opts,
	}

	p.env.Push()
	for !p.at(token.EOF) && p.fatal == nil {
		p.parseStmt()
	}
	p.env.Pop()
	return p.res, p.fatal
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

