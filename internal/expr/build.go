package expr

import (
	"ezc/internal/token"
	"ezc/internal/types"
)

// NewArithmetic builds left op right, resolving its type by upcasting the
// operand types.
func NewArithmetic(op token.Kind, left, right Expr) (Arithmetic, error) {
	switch op {
	case token.Plus, token.Minus, token.Star, token.Slash:
	default:
		return Arithmetic{}, &OperatorError{Op: op, Arity: 2}
	}
	lt, rt := left.Type(), right.Type()
	typ, ok := lt.Upcast(rt)
	if !ok {
		return Arithmetic{}, &CoercionError{Op: op, Left: lt, Right: rt, Binary: true}
	}
	return Arithmetic{Op: op, Typ: typ, Left: left, Right: right}, nil
}

// NewUnary builds op operand. The result is at least i64 wide.
func NewUnary(op token.Kind, operand Expr) (Unary, error) {
	switch op {
	case token.Minus, token.Tilde:
	default:
		return Unary{}, &OperatorError{Op: op, Arity: 1}
	}
	ot := operand.Type()
	typ, ok := types.Int64.Upcast(ot)
	if !ok {
		return Unary{}, &CoercionError{Op: op, Left: types.Int64, Right: ot}
	}
	return Unary{Op: op, Typ: typ, Operand: operand}, nil
}

// NewIndex builds array[index].
func NewIndex(array Identifier, index Expr) Index {
	return Index{Array: array, Index: index}
}

// NewConstant wraps a literal token with its type.
func NewConstant(tok token.Token, typ types.Type) Constant {
	return Constant{Tok: tok, Typ: typ}
}
