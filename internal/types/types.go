package types

import (
	"fmt"
	"strconv"
)

// Kind enumerates the closed set of type variants.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindChar
	KindBool
	KindString // fixed-length byte string
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindInt32:
		return "i32"
	case KindInt64:
		return "i64"
	case KindFloat32:
		return "f32"
	case KindFloat64:
		return "f64"
	case KindChar:
		return "char"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor for any supported type.
type Type struct {
	Kind  Kind
	Elem  *Type  // for arrays
	Count uint32 // byte length for strings, element count for arrays
}

var (
	Int32   = Type{Kind: KindInt32}
	Int64   = Type{Kind: KindInt64}
	Float32 = Type{Kind: KindFloat32}
	Float64 = Type{Kind: KindFloat64}
	Char    = Type{Kind: KindChar}
	Bool    = Type{Kind: KindBool}
)

// MakeString describes a fixed-length string of n bytes.
func MakeString(n uint32) Type {
	return Type{Kind: KindString, Count: n}
}

// MakeArray describes an array of count elements of elem.
func MakeArray(elem Type, count uint32) Type {
	e := elem
	return Type{Kind: KindArray, Elem: &e, Count: count}
}

// IsValid reports whether the descriptor names a real variant.
func (t Type) IsValid() bool {
	return t.Kind != KindInvalid
}

// Equal compares two descriptors structurally.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Count != other.Count {
		return false
	}
	if t.Kind != KindArray {
		return true
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equal(*other.Elem)
}

// String renders the type the way declarations spell it: [3][2]i32.
func (t Type) String() string {
	switch t.Kind {
	case KindArray:
		elem := "invalid"
		if t.Elem != nil {
			elem = t.Elem.String()
		}
		return "[" + strconv.FormatUint(uint64(t.Count), 10) + "]" + elem
	default:
		return t.Kind.String()
	}
}
