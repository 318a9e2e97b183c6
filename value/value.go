// Package value defines the in-memory value tree that encode walks and
// decode reconstructs: the closed set of variants described by the data
// model — null, bool, int64, float64, string, bytes, timestamp, list,
// tuple, set, symbol-keyed map, and extension.
package value

import "time"

// Kind discriminates the variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindTime
	KindList
	KindTuple
	KindSet
	KindMap
	KindExtension
)

// Value is implemented by every variant the codec transports.
type Value interface {
	Kind() Kind
}

// Null is the absence of a value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Bool is one of the two boolean singletons, kept distinct from Int so the
// encoder's dispatch order can tell them apart ahead of integer dispatch.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Int is a signed integer in the full 64-bit two's-complement range.
type Int int64

func (Int) Kind() Kind { return KindInt }

// Float is an IEEE-754 double-precision float. NaN bit patterns are not
// canonicalized.
type Float float64

func (Float) Kind() Kind { return KindFloat }

// String is a UTF-8 string. The encoder emits it as SYMREF when it is
// present in the symbol table, STR otherwise.
type String string

func (String) Kind() Kind { return KindString }

// Bytes is an opaque octet sequence. With the decoder's zero_copy option
// set, a decoded Bytes aliases the input buffer instead of owning a copy.
type Bytes []byte

func (Bytes) Kind() Kind { return KindBytes }

// Time is an absolute instant truncated to millisecond precision, UTC.
type Time struct {
	UnixMilli int64
}

// NewTime constructs a Time from a time.Time, truncating to milliseconds.
func NewTime(t time.Time) Time {
	return Time{UnixMilli: t.UnixMilli()}
}

// Time returns the instant as a time.Time in UTC.
func (t Time) Time() time.Time {
	return time.UnixMilli(t.UnixMilli).UTC()
}

func (Time) Kind() Kind { return KindTime }

// List is an ordered sequence of values.
type List []Value

func (List) Kind() Kind { return KindList }

// Tuple is an ordered sequence of values, semantically distinct from List:
// it preserves "immutable sequence" identity through a round-trip even
// though both share the same Go representation.
type Tuple []Value

func (Tuple) Kind() Kind { return KindTuple }

// Extension is an application-defined value: a small integer id plus an
// opaque byte payload. Its semantics are a private contract between the
// caller's encoder and decoder; the codec core only transports it.
type Extension struct {
	ID      uint64
	Payload []byte
}

func (Extension) Kind() Kind { return KindExtension }
