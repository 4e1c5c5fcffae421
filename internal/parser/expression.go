package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"ezc/internal/diag"
	"ezc/internal/expr"
	"ezc/internal/source"
	"ezc/internal/token"
	"ezc/internal/types"
)

// operand is a parsed expression with its source range. A nil e marks an
// expression that already produced a semantic error; it still parses but is
// never lowered.
type operand struct {
	e    expr.Expr
	span source.Span
}

// parseExpr: term { ('+' | '-') term }
func (p *Parser) parseExpr() (operand, bool) {
	return p.parseBinary(p.parseTerm, token.Plus, token.Minus)
}

// parseTerm: unary { ('*' | '/') unary }
func (p *Parser) parseTerm() (operand, bool) {
	return p.parseBinary(p.parseUnary, token.Star, token.Slash)
}

func (p *Parser) parseBinary(next func() (operand, bool), ops ...token.Kind) (operand, bool) {
	left, ok := next()
	if !ok {
		return operand{}, false
	}
	for p.atAny(ops...) {
		op := p.advance()
		right, ok := next()
		if !ok {
			return operand{}, false
		}
		span := left.span.Cover(right.span)
		if left.e == nil || right.e == nil {
			left = operand{span: span}
			continue
		}
		node, err := expr.NewArithmetic(op.Kind, left.e, right.e)
		if err != nil {
			p.semaError(span, err)
			left = operand{span: span}
			continue
		}
		left = operand{e: node, span: span}
	}
	return left, true
}

// parseUnary: ('-' | '~') unary | factor
func (p *Parser) parseUnary() (operand, bool) {
	if !p.atAny(token.Minus, token.Tilde) {
		return p.parseFactor()
	}
	op := p.advance()
	inner, ok := p.parseUnary()
	if !ok {
		return operand{}, false
	}
	span := op.Span.Cover(inner.span)
	if inner.e == nil {
		return operand{span: span}, true
	}
	node, err := expr.NewUnary(op.Kind, inner.e)
	if err != nil {
		p.semaError(span, err)
		return operand{span: span}, true
	}
	return operand{e: node, span: span}, true
}

// parseFactor: '(' expr ')' | literal | IDENT [ '[' expr ']' ]
func (p *Parser) parseFactor() (operand, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return operand{}, false
		}
		closing, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'",
			diag.Note{Span: open.Span, Msg: "opened here"})
		if !ok {
			return operand{}, false
		}
		inner.span = open.Span.Cover(closing.Span)
		return inner, true
	case token.IntLit, token.FloatLit, token.CharLit, token.KwTrue, token.KwFalse:
		p.advance()
		return operand{e: p.literal(tok), span: tok.Span}, true
	case token.Ident:
		p.advance()
		return p.parseName(tok)
	case token.Invalid:
		// already reported by the lexer; a run of bad bytes is one operand
		span := p.advance().Span
		for p.at(token.Invalid) {
			span = span.Cover(p.advance().Span)
		}
		return operand{span: span}, true
	default:
		p.err(diag.SynExpectExpr, "expected expression, got "+describe(tok))
		return operand{}, false
	}
}

func (p *Parser) parseName(name token.Token) (operand, bool) {
	id, found := p.env.Get(name.Text)
	if !found {
		p.report(diag.SemaUndeclared, diag.SevError, name.Span, "undeclared identifier '"+name.Text+"'")
	}
	if !p.at(token.LBracket) {
		if !found {
			return operand{span: name.Span}, true
		}
		return operand{e: id, span: name.Span}, true
	}

	open := p.advance()
	index, ok := p.parseExpr()
	if !ok {
		return operand{}, false
	}
	closing, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'",
		diag.Note{Span: open.Span, Msg: "opened here"})
	if !ok {
		return operand{}, false
	}
	span := name.Span.Cover(closing.Span)
	if !found || index.e == nil {
		return operand{span: span}, true
	}
	if id.Typ.Kind != types.KindArray {
		p.report(diag.SemaNotArray, diag.SevError, name.Span,
			fmt.Sprintf("cannot index '%s' of type %s", name.Text, id.Typ))
		return operand{span: span}, true
	}
	return operand{e: expr.NewIndex(id, index.e), span: span}, true
}

// literal types a constant: integers are i32 when they fit, otherwise i64.
func (p *Parser) literal(tok token.Token) expr.Expr {
	switch tok.Kind {
	case token.IntLit:
		v, err := strconv.ParseInt(tok.Text, 0, 64)
		if err != nil {
			p.report(diag.LexBadNumber, diag.SevError, tok.Span, "integer literal "+tok.Text+" overflows i64")
			return nil
		}
		if v <= math.MaxInt32 {
			return expr.NewConstant(tok, types.Int32)
		}
		return expr.NewConstant(tok, types.Int64)
	case token.FloatLit:
		if _, err := strconv.ParseFloat(tok.Text, 64); err != nil {
			p.report(diag.LexBadNumber, diag.SevError, tok.Span, "float literal "+tok.Text+" is out of range")
			return nil
		}
		return expr.NewConstant(tok, types.Float64)
	case token.CharLit:
		return expr.NewConstant(tok, types.Char)
	default:
		return expr.NewConstant(tok, types.Bool)
	}
}

func (p *Parser) semaError(span source.Span, err error) {
	var coercion *expr.CoercionError
	var operator *expr.OperatorError
	switch {
	case errors.As(err, &coercion):
		p.report(diag.SemaCoercion, diag.SevError, span, coercion.Error())
	case errors.As(err, &operator):
		p.report(diag.SemaBadOperator, diag.SevError, span, operator.Error())
	default:
		p.report(diag.UnknownCode, diag.SevError, span, err.Error())
	}
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	k := p.lx.Peek().Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
