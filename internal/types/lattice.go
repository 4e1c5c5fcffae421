package types

import (
	"math"
	"math/bits"
)

// IsNumeric reports whether the type takes part in arithmetic coercion.
func (t Type) IsNumeric() bool {
	switch t.Kind {
	case KindInt32, KindInt64, KindFloat32, KindFloat64, KindChar:
		return true
	default:
		return false
	}
}

// promotion lists numeric kinds from widest to narrowest.
var promotion = [...]Kind{KindFloat64, KindFloat32, KindInt64, KindInt32, KindChar}

// Upcast returns the widest of two numeric types. The first kind in the
// promotion order found on either side wins. ok is false when either side is
// not numeric.
func (t Type) Upcast(other Type) (Type, bool) {
	if !t.IsNumeric() || !other.IsNumeric() {
		return Type{}, false
	}
	for _, k := range promotion {
		if t.Kind == k || other.Kind == k {
			return Type{Kind: k}, true
		}
	}
	return Type{}, false
}

// Upcast is the free-function form of Type.Upcast.
func Upcast(a, b Type) (Type, bool) {
	return a.Upcast(b)
}

// Width returns the storage size of a value of type t in bytes. Sizes that
// do not fit in 64 bits saturate at math.MaxUint64; use CheckedWidth to
// detect them.
func (t Type) Width() uint64 {
	w, ok := t.CheckedWidth()
	if !ok {
		return math.MaxUint64
	}
	return w
}

// CheckedWidth is Width with overflow detection: ok is false when the size
// of a nested array exceeds 64 bits.
func (t Type) CheckedWidth() (uint64, bool) {
	switch t.Kind {
	case KindInt32, KindFloat32:
		return 4, true
	case KindInt64, KindFloat64:
		return 8, true
	case KindBool, KindChar:
		return 1, true
	case KindString:
		return uint64(t.Count), true
	case KindArray:
		if t.Elem == nil {
			return 0, true
		}
		elem, ok := t.Elem.CheckedWidth()
		if !ok {
			return 0, false
		}
		hi, lo := bits.Mul64(elem, uint64(t.Count))
		return lo, hi == 0
	default:
		return 0, true
	}
}
