// Package encode implements the encoder side of the wire format: a single
// depth-first traversal of a value.Value tree that appends tagged bytes to a
// growable buffer.
package encode

import (
	"fmt"
	"math"

	"github.com/tagwire/tagwire/endian"
	"github.com/tagwire/tagwire/errs"
	"github.com/tagwire/tagwire/internal/options"
	"github.com/tagwire/tagwire/internal/pool"
	"github.com/tagwire/tagwire/symtab"
	"github.com/tagwire/tagwire/value"
	"github.com/tagwire/tagwire/varint"
	"github.com/tagwire/tagwire/wire"
)

// Encoder walks a value.Value tree and emits it according to the wire format.
//
// An Encoder is not safe for concurrent use; each instance owns no
// process-wide state, so disjoint instances on disjoint goroutines are free
// of contention.
type Encoder struct {
	symbols    *symtab.Table
	extHandler ExtHandler
}

// New constructs an Encoder bound to the given symbol table.
func New(symbols *symtab.Table, opts ...Option) (*Encoder, error) {
	e := &Encoder{symbols: symbols}

	if err := options.Apply[*Encoder](e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Encode produces a byte sequence whose first byte is a tag and whose total
// length exactly covers one encoded value. Encoding is pure with respect to
// v: on failure the caller should discard any partial output.
func (e *Encoder) Encode(v value.Value) ([]byte, error) {
	bb := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(bb)

	if err := e.encodeValue(bb, v); err != nil {
		return nil, err
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

var bigEndian = endian.GetBigEndianEngine()

func (e *Encoder) encodeValue(bb *pool.ByteBuffer, v value.Value) error {
	switch x := v.(type) {
	case value.Null:
		bb.B = append(bb.B, byte(wire.Null))

	case value.Bool:
		if x {
			bb.B = append(bb.B, byte(wire.True))
		} else {
			bb.B = append(bb.B, byte(wire.False))
		}

	case value.Int:
		bb.B = append(bb.B, byte(wire.Int))
		bb.B = varint.Append(bb.B, varint.ZigZagEncode(int64(x)))

	case value.Float:
		bb.B = append(bb.B, byte(wire.Float))
		bb.B = bigEndian.AppendUint64(bb.B, math.Float64bits(float64(x)))

	case value.String:
		return e.encodeString(bb, string(x))

	case value.Time:
		bb.B = append(bb.B, byte(wire.Time))
		bb.B = varint.Append(bb.B, varint.ZigZagEncode(x.UnixMilli))

	case value.List:
		bb.B = append(bb.B, byte(wire.Arr))
		bb.B = varint.Append(bb.B, uint64(len(x)))
		for _, elem := range x {
			if err := e.encodeValue(bb, elem); err != nil {
				return err
			}
		}

	case value.Tuple:
		bb.B = append(bb.B, byte(wire.Tuple))
		bb.B = varint.Append(bb.B, uint64(len(x)))
		for _, elem := range x {
			if err := e.encodeValue(bb, elem); err != nil {
				return err
			}
		}

	case *value.Set:
		bb.B = append(bb.B, byte(wire.Set))
		elems := x.Elements()
		bb.B = varint.Append(bb.B, uint64(len(elems)))
		for _, elem := range elems {
			if err := e.encodeValue(bb, elem); err != nil {
				return err
			}
		}

	case *value.Map:
		return e.encodeMap(bb, x)

	case value.Bytes:
		bb.B = append(bb.B, byte(wire.Bytes))
		bb.B = varint.Append(bb.B, uint64(len(x)))
		bb.B = append(bb.B, x...)

	case value.Extension:
		bb.B = append(bb.B, byte(wire.Ext))
		bb.B = varint.Append(bb.B, x.ID)
		bb.B = varint.Append(bb.B, uint64(len(x.Payload)))
		bb.B = append(bb.B, x.Payload...)

	default:
		return e.encodeExtension(bb, v)
	}

	return nil
}

func (e *Encoder) encodeString(bb *pool.ByteBuffer, s string) error {
	if idx, ok := e.symbolIndex(s); ok {
		bb.B = append(bb.B, byte(wire.Symref))
		bb.B = varint.Append(bb.B, uint64(idx))

		return nil
	}

	bb.B = append(bb.B, byte(wire.Str))
	bb.B = varint.Append(bb.B, uint64(len(s)))
	bb.B = append(bb.B, s...)

	return nil
}

func (e *Encoder) symbolIndex(s string) (int, bool) {
	if e.symbols == nil {
		return 0, false
	}

	return e.symbols.Index(s)
}

func (e *Encoder) encodeMap(bb *pool.ByteBuffer, m *value.Map) error {
	bb.B = append(bb.B, byte(wire.Obj))
	bb.B = varint.Append(bb.B, uint64(m.Len()))

	var encErr error
	m.Range(func(key string, val value.Value) bool {
		idx, ok := e.symbolIndex(key)
		if !ok {
			encErr = fmt.Errorf("encode: map key %q: %w: %w", key, errs.ErrMapKeyNotSymbol, errs.ErrUnknownSymbol)
			return false
		}

		bb.B = append(bb.B, byte(wire.Symref))
		bb.B = varint.Append(bb.B, uint64(idx))

		if err := e.encodeValue(bb, val); err != nil {
			encErr = err
			return false
		}

		return true
	})

	return encErr
}

// encodeExtension is the dispatch fallthrough: it is reached only for
// concrete value.Value implementations outside the core set (Null through
// Extension). It exists so callers can plug in their own Value types without
// the encoder needing to know about them.
func (e *Encoder) encodeExtension(bb *pool.ByteBuffer, v value.Value) error {
	if e.extHandler != nil {
		if extID, payload, ok := e.extHandler(v); ok {
			bb.B = append(bb.B, byte(wire.Ext))
			bb.B = varint.Append(bb.B, extID)
			bb.B = varint.Append(bb.B, uint64(len(payload)))
			bb.B = append(bb.B, payload...)

			return nil
		}
	}

	return fmt.Errorf("encode: %T: %w", v, errs.ErrUnsupportedType)
}
