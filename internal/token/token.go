package token

import "ezc/internal/source"

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, char or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsArithmetic reports whether the token is one of + - * /.
func (t Token) IsArithmetic() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

func (t Token) IsIdent() bool { return t.Kind == Ident }

// String returns the source text, which is how literals render in instructions.
func (t Token) String() string {
	if t.Text != "" {
		return t.Text
	}
	if s, ok := kindSpelling[t.Kind]; ok {
		return s
	}
	return ""
}
