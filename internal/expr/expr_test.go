package expr

import (
	"errors"
	"testing"

	"ezc/internal/token"
	"ezc/internal/types"
)

func ident(name string, typ types.Type) Identifier {
	return Identifier{Name: name, Typ: typ}
}

func intConst(text string) Constant {
	return NewConstant(token.Token{Kind: token.IntLit, Text: text}, types.Int32)
}

func TestNewArithmeticResolvesType(t *testing.T) {
	a := ident("a", types.Int32)
	f := ident("f", types.Float32)

	node, err := NewArithmetic(token.Plus, a, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !node.Type().Equal(types.Float32) {
		t.Fatalf("expected f32, got %s", node.Type())
	}
	if got := node.String(); got != "a f" {
		t.Fatalf("expected operand pair rendering, got %q", got)
	}
}

func TestNewArithmeticRejectsNonNumeric(t *testing.T) {
	flag := ident("flag", types.Bool)
	_, err := NewArithmetic(token.Star, flag, intConst("2"))

	var cerr *CoercionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CoercionError, got %v", err)
	}
	if !cerr.Left.Equal(types.Bool) || !cerr.Right.Equal(types.Int32) {
		t.Fatalf("unexpected operands in error: %+v", cerr)
	}
}

func TestNewArithmeticRejectsUnknownOperator(t *testing.T) {
	_, err := NewArithmetic(token.Tilde, intConst("1"), intConst("2"))
	var oerr *OperatorError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected OperatorError, got %v", err)
	}
}

func TestNewUnaryWidensToInt64(t *testing.T) {
	tests := []struct {
		operand types.Type
		want    types.Type
	}{
		{types.Int32, types.Int64},
		{types.Char, types.Int64},
		{types.Int64, types.Int64},
		{types.Float32, types.Float32},
		{types.Float64, types.Float64},
	}
	for _, tt := range tests {
		node, err := NewUnary(token.Minus, ident("x", tt.operand))
		if err != nil {
			t.Fatalf("NewUnary(%s): %v", tt.operand, err)
		}
		if !node.Type().Equal(tt.want) {
			t.Errorf("NewUnary(%s) type = %s, want %s", tt.operand, node.Type(), tt.want)
		}
		if node.String() != "x" {
			t.Errorf("unary renders operand only, got %q", node.String())
		}
	}

	_, err := NewUnary(token.Tilde, ident("s", types.MakeString(3)))
	var cerr *CoercionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CoercionError for string operand, got %v", err)
	}
}

func TestIndexKeepsArrayType(t *testing.T) {
	arr := ident("arr", types.MakeArray(types.Int32, 8))
	node := NewIndex(arr, ident("i", types.Int32))

	if !node.Type().Equal(arr.Typ) {
		t.Fatalf("index type must be the declared array type, got %s", node.Type())
	}
	if got := node.String(); got != "i arr" {
		t.Fatalf("expected \"i arr\", got %q", got)
	}
}

func TestAtoms(t *testing.T) {
	tmp := Temporary{ID: 12, Typ: types.Int64}
	if tmp.String() != "__t12" {
		t.Fatalf("unexpected temp name %q", tmp.String())
	}
	if intConst("7").String() != "7" {
		t.Fatalf("constants render their token text")
	}

	sum, err := NewArithmetic(token.Minus, tmp, intConst("1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	atoms := []Expr{tmp, intConst("3"), ident("a", types.Int32)}
	for _, e := range atoms {
		if !IsAtom(e) {
			t.Errorf("%T must be an atom", e)
		}
	}
	composites := []Expr{sum, NewIndex(ident("v", types.MakeArray(types.Char, 2)), tmp)}
	for _, e := range composites {
		if IsAtom(e) {
			t.Errorf("%T must not be an atom", e)
		}
	}
}
