package symbols

import (
	"math"
	"testing"

	"ezc/internal/expr"
	"ezc/internal/types"
)

func TestManageEnv(t *testing.T) {
	env := NewEnv()
	env.Push()
	env.Push()
	if env.Len() != 2 {
		t.Fatalf("expected 2 scopes, got %d", env.Len())
	}
	env.Push()
	if env.Len() != 3 {
		t.Fatalf("expected 3 scopes, got %d", env.Len())
	}
	env.Pop()
	env.Pop()
	if env.Len() != 1 {
		t.Fatalf("expected 1 scope, got %d", env.Len())
	}
	env.Pop()
	if !env.IsEmpty() {
		t.Fatalf("expected empty env")
	}
	env.Pop()
	if !env.IsEmpty() {
		t.Fatalf("pop on empty env must be a no-op")
	}
}

func TestLookupCrossesScopes(t *testing.T) {
	env := NewEnv()
	identX := expr.Identifier{Name: "x", Typ: types.Int32}

	env.Push()
	env.Put("x", identX)
	env.Push()

	got, ok := env.Get("x")
	if !ok {
		t.Fatalf("x must be visible from the inner scope")
	}
	if got != identX {
		t.Fatalf("expected %+v, got %+v", identX, got)
	}
	if _, ok := env.Local("x"); ok {
		t.Fatalf("x is not declared in the inner scope")
	}
}

func TestShadowing(t *testing.T) {
	env := NewEnv()
	outer := expr.Identifier{Name: "v", Typ: types.Int32}
	inner := expr.Identifier{Name: "v", Typ: types.Float64, Offset: 4}

	env.Push()
	env.Put("v", outer)
	env.Push()
	env.Put("v", inner)

	if got, _ := env.Get("v"); got != inner {
		t.Fatalf("innermost binding must win, got %+v", got)
	}
	env.Pop()
	if got, _ := env.Get("v"); got != outer {
		t.Fatalf("outer binding must be visible again, got %+v", got)
	}
}

func TestPutOverwritesAndNeedsScope(t *testing.T) {
	env := NewEnv()
	env.Put("lost", expr.Identifier{Name: "lost"})
	if _, ok := env.Get("lost"); ok {
		t.Fatalf("put without a scope must do nothing")
	}

	env.Push()
	env.Put("a", expr.Identifier{Name: "a", Typ: types.Int32})
	env.Put("a", expr.Identifier{Name: "a", Typ: types.Char})
	got, ok := env.Get("a")
	if !ok || !got.Typ.Equal(types.Char) {
		t.Fatalf("second put must overwrite, got %+v", got)
	}
	if _, ok := env.Get("missing"); ok {
		t.Fatalf("unexpected hit for missing name")
	}
}

func TestDeclareAssignsOffsets(t *testing.T) {
	env := NewEnv()
	if _, err := env.Declare("early", types.Int32); err == nil {
		t.Fatalf("declare without scope must fail")
	}

	env.Push()
	a, _ := env.Declare("a", types.Int32)
	b, _ := env.Declare("b", types.Float64)
	if a.Offset != 0 || b.Offset != 4 {
		t.Fatalf("unexpected offsets a=%d b=%d", a.Offset, b.Offset)
	}

	env.Push()
	arr, _ := env.Declare("arr", types.MakeArray(types.Int32, 4))
	if arr.Offset != 12 {
		t.Fatalf("expected arr at 12, got %d", arr.Offset)
	}
	if env.FrameSize() != 28 {
		t.Fatalf("expected frame size 28, got %d", env.FrameSize())
	}
	env.Pop()

	if env.FrameSize() != 12 {
		t.Fatalf("pop must release inner storage, frame size %d", env.FrameSize())
	}
	c, _ := env.Declare("c", types.Char)
	if c.Offset != 12 {
		t.Fatalf("expected c to reuse released storage at 12, got %d", c.Offset)
	}
}

func TestDeclareRejectsOverflowingArray(t *testing.T) {
	env := NewEnv()
	env.Push()
	huge := types.MakeArray(types.MakeArray(types.MakeArray(types.Int64, math.MaxUint32), math.MaxUint32), math.MaxUint32)
	if _, err := env.Declare("huge", huge); err == nil {
		t.Fatalf("declaring %s must fail", huge)
	}
	if _, ok := env.Get("huge"); ok {
		t.Fatalf("failed declaration must not bind the name")
	}
	if env.FrameSize() != 0 {
		t.Fatalf("failed declaration must not reserve storage, frame size %d", env.FrameSize())
	}
	b, err := env.Declare("b", types.Int32)
	if err != nil || b.Offset != 0 {
		t.Fatalf("next declaration must start at 0, got %d (%v)", b.Offset, err)
	}
}
