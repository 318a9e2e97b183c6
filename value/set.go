package value

import (
	"encoding/binary"
	"math"

	"github.com/tagwire/tagwire/internal/hash"
)

// Set is an unordered collection of values with no duplicates.
//
// Membership is tracked with a content hash (internal/hash) that buckets
// candidate indices, and a full structural comparison resolves any hash
// collision before an element is accepted as new.
type Set struct {
	elems   []Value
	buckets map[uint64][]int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]int)}
}

func (*Set) Kind() Kind { return KindSet }

// Add inserts v if no equal element is already present. It reports whether
// v was newly added.
func (s *Set) Add(v Value) bool {
	h := fingerprintHash(v)

	for _, idx := range s.buckets[h] {
		if Equal(s.elems[idx], v) {
			return false
		}
	}

	s.elems = append(s.elems, v)
	s.buckets[h] = append(s.buckets[h], len(s.elems)-1)

	return true
}

// Contains reports whether an element equal to v is present.
func (s *Set) Contains(v Value) bool {
	h := fingerprintHash(v)
	for _, idx := range s.buckets[h] {
		if Equal(s.elems[idx], v) {
			return true
		}
	}

	return false
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.elems)
}

// Elements returns the set's elements in insertion order.
//
// Insertion order is incidental (sets are unordered per the data model) but
// deterministic, which keeps encode output reproducible for a fixed
// sequence of Add calls.
func (s *Set) Elements() []Value {
	return s.elems
}

// fingerprintHash hashes a canonical byte fingerprint of v with the same
// xxHash64 primitive internal/hash.ID uses for symbol names, so an equal
// value always lands in the same bucket regardless of its nesting.
func fingerprintHash(v Value) uint64 {
	return hash.ID(string(fingerprint(nil, v)))
}

// fingerprint appends a type-tagged byte representation of v to buf. String,
// Bytes and Extension contents are not length-prefixed, so distinct values
// can share a fingerprint; Set resolves such collisions with Equal. It
// exists purely to drive Set's bucket hash and is not part of
// the wire format: unlike the wire encoder it does not need to be
// order-stable across a map's or set's own iteration, only stable for a
// single value during a single process's lifetime.
func fingerprint(buf []byte, v Value) []byte {
	switch x := v.(type) {
	case Null:
		return append(buf, 0)
	case Bool:
		if x {
			return append(buf, 1, 1)
		}

		return append(buf, 1, 0)
	case Int:
		buf = append(buf, 2)
		return binary.BigEndian.AppendUint64(buf, uint64(x))
	case Float:
		buf = append(buf, 3)
		return binary.BigEndian.AppendUint64(buf, math.Float64bits(float64(x)))
	case String:
		buf = append(buf, 4)
		return append(buf, x...)
	case Bytes:
		buf = append(buf, 5)
		return append(buf, x...)
	case Time:
		buf = append(buf, 6)
		return binary.BigEndian.AppendUint64(buf, uint64(x.UnixMilli))
	case List:
		buf = append(buf, 7)
		for _, e := range x {
			buf = fingerprint(buf, e)
		}

		return buf
	case Tuple:
		buf = append(buf, 8)
		for _, e := range x {
			buf = fingerprint(buf, e)
		}

		return buf
	case *Set:
		buf = append(buf, 9)
		// Order-independent: XOR each element's own hash together.
		var acc uint64
		for _, e := range x.elems {
			acc ^= fingerprintHash(e)
		}

		return binary.BigEndian.AppendUint64(buf, acc)
	case *Map:
		buf = append(buf, 10)
		var acc uint64
		for i, k := range x.keys {
			entry := fingerprint([]byte(k), x.values[i])
			acc ^= hash.ID(string(entry))
		}

		return binary.BigEndian.AppendUint64(buf, acc)
	case Extension:
		buf = append(buf, 11)
		buf = binary.BigEndian.AppendUint64(buf, x.ID)
		return append(buf, x.Payload...)
	default:
		return append(buf, 0xff)
	}
}
