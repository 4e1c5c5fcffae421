package types

import (
	"math"
	"testing"
)

func numericTypes() []Type {
	return []Type{Int32, Int64, Float32, Float64, Char}
}

func TestUpcastScenarios(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want Type
		ok   bool
	}{
		{"int32 with char", Int32, Char, Int32, true},
		{"float32 with float64", Float32, Float64, Float64, true},
		{"char with char", Char, Char, Char, true},
		{"float32 with int64", Float32, Int64, Float32, true},
		{"int64 with int32", Int64, Int32, Int64, true},
		{"string with bool", MakeString(4), Bool, Type{}, false},
		{"string with int32", MakeString(2), Int32, Type{}, false},
		{"array with int32", MakeArray(Int32, 4), Int32, Type{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Upcast(tt.b)
			if ok != tt.ok {
				t.Fatalf("Upcast(%s, %s) ok=%v, want %v", tt.a, tt.b, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("Upcast(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestUpcastIsSymmetricOverNumericPairs(t *testing.T) {
	for _, x := range numericTypes() {
		for _, y := range numericTypes() {
			xy, ok1 := Upcast(x, y)
			yx, ok2 := Upcast(y, x)
			if !ok1 || !ok2 {
				t.Fatalf("Upcast(%s, %s) must succeed for numeric operands", x, y)
			}
			if !xy.Equal(yx) {
				t.Fatalf("Upcast(%s, %s)=%s but Upcast(%s, %s)=%s", x, y, xy, y, x, yx)
			}
		}
	}
}

func TestUpcastFailsForNonNumeric(t *testing.T) {
	for _, x := range []Type{Bool, MakeString(8), MakeArray(Float64, 2)} {
		if _, ok := x.Upcast(Int32); ok {
			t.Errorf("Upcast(%s, i32) must fail", x)
		}
		if _, ok := Int32.Upcast(x); ok {
			t.Errorf("Upcast(i32, %s) must fail", x)
		}
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		typ  Type
		want uint64
	}{
		{Int32, 4},
		{Int64, 8},
		{Float32, 4},
		{Float64, 8},
		{Bool, 1},
		{Char, 1},
		{MakeString(13), 13},
		{MakeArray(Int64, 3), 24},
		{MakeArray(MakeArray(Int32, 2), 3), 24},
	}
	for _, tt := range tests {
		if got := tt.typ.Width(); got != tt.want {
			t.Errorf("Width(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestCheckedWidthDetectsOverflow(t *testing.T) {
	const maxCount = math.MaxUint32
	fits := MakeArray(MakeArray(Char, maxCount), maxCount)
	if w, ok := fits.CheckedWidth(); !ok || w != maxCount*maxCount {
		t.Fatalf("CheckedWidth(%s) = %d, %v", fits, w, ok)
	}

	huge := MakeArray(fits, 2)
	if w, ok := huge.CheckedWidth(); ok {
		t.Fatalf("CheckedWidth(%s) must overflow, got %d", huge, w)
	}
	if got := huge.Width(); got != math.MaxUint64 {
		t.Fatalf("Width(%s) must saturate, got %d", huge, got)
	}
	if got := MakeArray(huge, 1).Width(); got != math.MaxUint64 {
		t.Fatalf("overflow must propagate through outer arrays, got %d", got)
	}
}

func TestTypeString(t *testing.T) {
	nested := MakeArray(MakeArray(Int32, 2), 3)
	if got := nested.String(); got != "[3][2]i32" {
		t.Fatalf("expected [3][2]i32, got %q", got)
	}
	if got := MakeString(5).String(); got != "string" {
		t.Fatalf("expected string, got %q", got)
	}
}

func TestEqualComparesElements(t *testing.T) {
	a := MakeArray(Int32, 4)
	b := MakeArray(Int32, 4)
	c := MakeArray(Int64, 4)
	if !a.Equal(b) {
		t.Fatalf("expected %s == %s", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("expected %s != %s", a, c)
	}
	if MakeString(3).Equal(MakeString(4)) {
		t.Fatalf("strings of different length must differ")
	}
}
