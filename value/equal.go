package value

import "math"

// Equal reports structural equality of two values under the round-trip
// equivalence the data model specifies: lists compare element-wise, tuples
// compare element-wise, sets compare as sets, and maps compare key/value
// pairs regardless of iteration order.
//
// Equal is what Set uses to tell duplicate elements apart, so decoding a SET
// payload runs it; otherwise it serves tests and other callers that need to
// compare a decoded value against what was encoded.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Int:
		return av == b.(Int)
	case Float:
		bv := b.(Float)
		// Bit-pattern equality so NaN == NaN and -0 != 0, matching the
		// codec's "no NaN canonicalization" contract.
		return floatBitsEqual(av, bv)
	case String:
		return av == b.(String)
	case Bytes:
		bv := b.(Bytes)
		return bytesEqual(av, bv)
	case Time:
		return av.UnixMilli == b.(Time).UnixMilli
	case List:
		return sequenceEqual(av, b.(List))
	case Tuple:
		return sequenceEqual(Tuple(av), b.(Tuple))
	case *Set:
		return setEqual(av, b.(*Set))
	case *Map:
		return mapEqual(av, b.(*Map))
	case Extension:
		bv := b.(Extension)
		return av.ID == bv.ID && bytesEqual(av.Payload, bv.Payload)
	default:
		return false
	}
}

func floatBitsEqual(a, b Float) bool {
	return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
}

func sequenceEqual[T ~[]Value](a, b T) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func setEqual(a, b *Set) bool {
	if a.Len() != b.Len() {
		return false
	}

	for _, e := range a.elems {
		if !b.Contains(e) {
			return false
		}
	}

	return true
}

func mapEqual(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i, k := range a.keys {
		bv, ok := b.Get(k)
		if !ok || !Equal(a.values[i], bv) {
			return false
		}
	}

	return true
}
