package parser

import (
	"fmt"

	"ezc/internal/diag"
	"ezc/internal/token"
	"ezc/internal/trace"
	"ezc/internal/types"
)

func (p *Parser) parseStmt() {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		p.parseLet()
	case token.LBrace:
		p.parseBlock()
	case token.RBrace:
		p.err(diag.SynUnexpectedToken, "unexpected '}' without an open block")
		p.advance()
	default:
		p.parseExprStmt()
	}
}

// parseLet: let IDENT ':' type ';'
func (p *Parser) parseLet() {
	p.advance() // let
	name, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected identifier after 'let'")
	if !ok {
		p.resync()
		return
	}
	if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' after '"+name.Text+"'"); !ok {
		p.resync()
		return
	}
	typ, ok := p.parseType()
	if !ok {
		p.resync()
		return
	}
	// declared even without ';' so later statements resolve the name
	p.declare(name, typ)
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration"); !ok {
		p.resync()
	}
}

func (p *Parser) declare(name token.Token, typ types.Type) {
	if prev, exists := p.env.Local(name.Text); exists {
		p.report(diag.SemaRedeclared, diag.SevWarning, name.Span,
			fmt.Sprintf("'%s' is already declared in this block as %s", name.Text, prev.Typ))
	}
	if _, err := p.env.Declare(name.Text, typ); err != nil {
		p.report(diag.SemaFrameTooLarge, diag.SevError, name.Span, err.Error())
		return
	}
	p.res.Declarations++
	p.res.MaxFrame = max(p.res.MaxFrame, p.env.FrameSize())
}

// parseBlock: '{' stmt* '}'. The block owns a scope.
func (p *Parser) parseBlock() {
	open := p.advance()
	p.env.Push()
	defer p.env.Pop()

	for !p.at(token.RBrace) {
		if p.fatal != nil {
			return
		}
		if p.at(token.EOF) {
			p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'",
				diag.Note{Span: open.Span, Msg: "block opened here"})
			return
		}
		p.parseStmt()
	}
	p.advance()
}

// parseExprStmt: expr ';'. A valid expression is lowered right away.
func (p *Parser) parseExprStmt() {
	op, ok := p.parseExpr()
	if !ok {
		p.resync()
		return
	}
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression"); !ok {
		p.resync()
		return
	}
	if op.e == nil {
		return
	}
	trace.Point(p.opts.Tracer, trace.ScopeNode, "stmt", op.e.String())
	if _, err := p.gen.Reduce(op.e); err != nil {
		p.fatal = fmt.Errorf("lower statement at %s: %w", op.span, err)
		return
	}
	p.res.Statements++
}
