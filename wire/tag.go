// Package wire defines the single-byte tag grammar shared by encode and decode.
//
// A value on the wire is always `TAG (payload)`: one tag byte followed by a
// payload whose shape depends on the tag. The tag set, varint/ZigZag integer
// discipline, and big-endian float encoding are the one piece of this codec
// both sides must agree on byte-for-byte; there is no format version byte or
// envelope framing beyond it.
package wire

import "fmt"

// Tag identifies the shape of the value that follows it on the wire.
type Tag byte

const (
	Null   Tag = 0
	True   Tag = 1
	False  Tag = 2
	Int    Tag = 3
	Float  Tag = 4
	Str    Tag = 5
	Arr    Tag = 6
	Obj    Tag = 7
	Symref Tag = 8
	Bytes  Tag = 9
	Time   Tag = 10
	Ext    Tag = 11
	Set    Tag = 12
	Tuple  Tag = 13
)

var names = [...]string{
	Null:   "NULL",
	True:   "TRUE",
	False:  "FALSE",
	Int:    "INT",
	Float:  "FLOAT",
	Str:    "STR",
	Arr:    "ARR",
	Obj:    "OBJ",
	Symref: "SYMREF",
	Bytes:  "BYTES",
	Time:   "TIME",
	Ext:    "EXT",
	Set:    "SET",
	Tuple:  "TUPLE",
}

// Describe returns a human-readable name for tag, for use in decode error
// messages in place of a bare hex byte.
func Describe(tag byte) string {
	if int(tag) < len(names) {
		if n := names[tag]; n != "" {
			return n
		}
	}

	return fmt.Sprintf("UNKNOWN(0x%02x)", tag)
}

// Valid reports whether tag is one of the fourteen defined tags.
func (t Tag) Valid() bool {
	return t <= Tuple
}

func (t Tag) String() string {
	return Describe(byte(t))
}
