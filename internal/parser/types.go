package parser

import (
	"strconv"

	"ezc/internal/diag"
	"ezc/internal/token"
	"ezc/internal/types"
)

var scalarTypes = map[string]types.Type{
	"i32":  types.Int32,
	"i64":  types.Int64,
	"f32":  types.Float32,
	"f64":  types.Float64,
	"char": types.Char,
	"bool": types.Bool,
}

// parseType: i32 | i64 | f32 | f64 | char | bool | string '[' INT ']' | '[' INT ']' type
func (p *Parser) parseType() (types.Type, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LBracket:
		p.advance()
		n, ok := p.parseSize()
		if !ok {
			return types.Type{}, false
		}
		elem, ok := p.parseType()
		if !ok {
			return types.Type{}, false
		}
		return types.MakeArray(elem, n), true
	case token.Ident:
		if t, ok := scalarTypes[tok.Text]; ok {
			p.advance()
			return t, true
		}
		if tok.Text == "string" {
			p.advance()
			if _, ok := p.expect(token.LBracket, diag.SynExpectType, "expected '[' after 'string'"); !ok {
				return types.Type{}, false
			}
			n, ok := p.parseSize()
			return types.MakeString(n), ok
		}
	}
	p.err(diag.SynExpectType, "expected type, got "+describe(tok))
	return types.Type{}, false
}

// parseSize parses INT ']' after an opening bracket. A zero or oversized
// count is reported but parsing continues with a count of 0.
func (p *Parser) parseSize() (uint32, bool) {
	tok, ok := p.expect(token.IntLit, diag.SynExpectType, "expected size")
	if !ok {
		return 0, false
	}
	if _, ok = p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after size"); !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(tok.Text, 0, 32)
	if err != nil || n == 0 {
		p.report(diag.SemaBadArraySize, diag.SevError, tok.Span, "size must be between 1 and 4294967295, got "+tok.Text)
		return 0, true
	}
	return uint32(n), true
}
