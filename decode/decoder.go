// Package decode implements the decoder side of the wire format: an
// iterative, explicit-stack walk that turns a tagged byte sequence back into
// a value.Value tree without recursing with the Go call stack.
package decode

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/tagwire/tagwire/endian"
	"github.com/tagwire/tagwire/errs"
	"github.com/tagwire/tagwire/internal/options"
	"github.com/tagwire/tagwire/symtab"
	"github.com/tagwire/tagwire/value"
	"github.com/tagwire/tagwire/varint"
	"github.com/tagwire/tagwire/wire"
)

// defaultMaxDepth bounds how many container frames may be open at once.
const defaultMaxDepth = 1024

// Decoder turns a byte sequence produced by encode.Encoder back into a
// value.Value tree.
//
// A Decoder is not safe for concurrent use; each instance owns a private
// frame pool that is not synchronized.
type Decoder struct {
	symbols *symtab.Table

	zeroCopy       bool
	strictTrailing bool
	maxDepth       int

	extHook ExtHook
	tsHook  TSHook

	pool *framePool
}

// New constructs a Decoder bound to the given symbol table. The same table
// used to encode a payload must be supplied here for SYMREF tags to resolve.
func New(symbols *symtab.Table, opts ...Option) (*Decoder, error) {
	d := &Decoder{
		symbols:  symbols,
		maxDepth: defaultMaxDepth,
		pool:     newFramePool(defaultFramePoolCap),
	}

	if err := options.Apply[*Decoder](d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

var bigEndian = endian.GetBigEndianEngine()

// Decode parses exactly one value from the front of buf. With the default
// lenient trailing-data policy, any bytes after that value are ignored; pass
// WithStrictTrailing to reject them.
func (d *Decoder) Decode(buf []byte) (value.Value, error) {
	pos := 0
	var stack []*frame

	defer func() {
		for _, f := range stack {
			d.pool.put(f)
		}
	}()

	for {
		if n := len(stack); n > 0 && stack[n-1].remaining == 0 {
			top := stack[n-1]
			stack = stack[:n-1]
			closed := finalize(top)
			d.pool.put(top)

			if len(stack) == 0 {
				return closed, d.checkTrailing(pos, len(buf))
			}

			install(stack[len(stack)-1], closed)

			continue
		}

		if n := len(stack); n > 0 && stack[n-1].kind == frameMap && !stack[n-1].hasPendingKey {
			key, newPos, err := d.decodeMapKey(buf, pos)
			if err != nil {
				return nil, err
			}

			pos = newPos
			stack[n-1].pendingKey = key
			stack[n-1].hasPendingKey = true

			continue
		}

		if pos >= len(buf) {
			return nil, fmt.Errorf("decode: at byte %d: %w", pos, errs.ErrTruncated)
		}

		tag := wire.Tag(buf[pos])
		pos++

		val, newPos, push, err := d.decodeTagged(tag, buf, pos)
		if err != nil {
			return nil, err
		}

		pos = newPos

		if push != nil {
			if len(stack)+1 > d.maxDepth {
				d.pool.put(push)
				return nil, fmt.Errorf("decode: %w", errs.ErrNestingDepthExceeded)
			}

			stack = append(stack, push)

			continue
		}

		if len(stack) == 0 {
			return val, d.checkTrailing(pos, len(buf))
		}

		install(stack[len(stack)-1], val)
	}
}

func (d *Decoder) checkTrailing(pos, total int) error {
	if d.strictTrailing && pos != total {
		return fmt.Errorf("decode: %d trailing byte(s): %w", total-pos, errs.ErrTrailingBytes)
	}

	return nil
}

func (d *Decoder) decodeMapKey(buf []byte, pos int) (string, int, error) {
	if pos >= len(buf) {
		return "", 0, fmt.Errorf("decode: at byte %d: %w", pos, errs.ErrTruncated)
	}

	if wire.Tag(buf[pos]) != wire.Symref {
		return "", 0, fmt.Errorf("decode: map key at byte %d: %w", pos, errs.ErrMissingSymrefPrefix)
	}

	pos++

	idx, n, err := varint.Decode(buf[pos:])
	if err != nil {
		return "", 0, err
	}

	pos += n

	sym, ok := d.symbols.String(int(idx))
	if !ok {
		return "", 0, fmt.Errorf("decode: symbol index %d: %w", idx, errs.ErrSymbolIndexOutOfRange)
	}

	return sym, pos, nil
}

// decodeTagged decodes the value following a tag already consumed at
// buf[pos-1]. For scalar tags it returns the finished value; for container
// tags with a nonzero count it returns a fresh frame to push, and for an
// empty container it returns the finished empty value directly.
func (d *Decoder) decodeTagged(tag wire.Tag, buf []byte, pos int) (value.Value, int, *frame, error) {
	switch tag {
	case wire.Null:
		return value.Null{}, pos, nil, nil

	case wire.True:
		return value.Bool(true), pos, nil, nil

	case wire.False:
		return value.Bool(false), pos, nil, nil

	case wire.Int:
		u, n, err := varint.Decode(buf[pos:])
		if err != nil {
			return nil, 0, nil, err
		}

		return value.Int(varint.ZigZagDecode(u)), pos + n, nil, nil

	case wire.Float:
		if pos+8 > len(buf) {
			return nil, 0, nil, fmt.Errorf("decode: float at byte %d: %w", pos, errs.ErrTruncated)
		}

		bits := bigEndian.Uint64(buf[pos : pos+8])

		return value.Float(math.Float64frombits(bits)), pos + 8, nil, nil

	case wire.Str:
		raw, newPos, err := d.decodeLenPrefixed(buf, pos)
		if err != nil {
			return nil, 0, nil, err
		}

		return value.String(d.bytesToString(raw)), newPos, nil, nil

	case wire.Symref:
		idx, n, err := varint.Decode(buf[pos:])
		if err != nil {
			return nil, 0, nil, err
		}

		pos += n

		sym, ok := d.symbols.String(int(idx))
		if !ok {
			return nil, 0, nil, fmt.Errorf("decode: symbol index %d: %w", idx, errs.ErrSymbolIndexOutOfRange)
		}

		return value.String(sym), pos, nil, nil

	case wire.Bytes:
		raw, newPos, err := d.decodeLenPrefixed(buf, pos)
		if err != nil {
			return nil, 0, nil, err
		}

		return value.Bytes(d.ownBytes(raw)), newPos, nil, nil

	case wire.Time:
		u, n, err := varint.Decode(buf[pos:])
		if err != nil {
			return nil, 0, nil, err
		}

		pos += n
		ms := varint.ZigZagDecode(u)

		if d.tsHook != nil {
			v, err := d.tsHook(ms)
			if err != nil {
				return nil, 0, nil, fmt.Errorf("decode: ts_hook: %w: %w", errs.ErrHookFailed, err)
			}

			return v, pos, nil, nil
		}

		return value.Time{UnixMilli: ms}, pos, nil, nil

	case wire.Ext:
		extID, n, err := varint.Decode(buf[pos:])
		if err != nil {
			return nil, 0, nil, err
		}

		pos += n

		raw, newPos, err := d.decodeLenPrefixed(buf, pos)
		if err != nil {
			return nil, 0, nil, err
		}

		pos = newPos
		payload := d.ownBytes(raw)

		if d.extHook != nil {
			v, err := d.extHook(extID, payload)
			if err != nil {
				return nil, 0, nil, fmt.Errorf("decode: ext_hook: %w: %w", errs.ErrHookFailed, err)
			}

			return v, pos, nil, nil
		}

		return value.Extension{ID: extID, Payload: payload}, pos, nil, nil

	case wire.Arr, wire.Tuple, wire.Set, wire.Obj:
		return d.decodeContainerHeader(tag, buf, pos)

	default:
		return nil, 0, nil, fmt.Errorf("decode: tag %s: %w", wire.Describe(byte(tag)), errs.ErrUnknownTag)
	}
}

func (d *Decoder) decodeContainerHeader(tag wire.Tag, buf []byte, pos int) (value.Value, int, *frame, error) {
	count, n, err := varint.Decode(buf[pos:])
	if err != nil {
		return nil, 0, nil, err
	}

	pos += n

	if count == 0 {
		return emptyContainer(tag), pos, nil, nil
	}

	f := d.pool.get()
	f.remaining = int(count)

	switch tag {
	case wire.Arr:
		f.kind = frameList
		f.list = make(value.List, count)
	case wire.Tuple:
		f.kind = frameTuple
		f.tupleBuf = make(value.Tuple, count)
	case wire.Set:
		f.kind = frameSet
		f.set = value.NewSet()
	case wire.Obj:
		f.kind = frameMap
		f.obj = value.NewMap()
	}

	return nil, pos, f, nil
}

func emptyContainer(tag wire.Tag) value.Value {
	switch tag {
	case wire.Arr:
		return value.List{}
	case wire.Tuple:
		return value.Tuple{}
	case wire.Set:
		return value.NewSet()
	case wire.Obj:
		return value.NewMap()
	default:
		return nil
	}
}

// decodeLenPrefixed reads a varint length followed by that many raw bytes,
// returning the slice (aliased into buf) and the position past it.
func (d *Decoder) decodeLenPrefixed(buf []byte, pos int) ([]byte, int, error) {
	ln, n, err := varint.Decode(buf[pos:])
	if err != nil {
		return nil, 0, err
	}

	pos += n

	end := pos + int(ln)
	if end < pos || end > len(buf) {
		return nil, 0, fmt.Errorf("decode: length %d at byte %d: %w", ln, pos, errs.ErrTruncated)
	}

	return buf[pos:end], end, nil
}

// ownBytes returns raw as-is under zero-copy, or a private copy otherwise.
func (d *Decoder) ownBytes(raw []byte) []byte {
	if d.zeroCopy || len(raw) == 0 {
		return raw
	}

	out := make([]byte, len(raw))
	copy(out, raw)

	return out
}

// bytesToString converts raw to a string, aliasing it under zero-copy
// instead of paying for the usual conversion's copy. The caller contract for
// WithZeroCopy (the input buffer outlives and stays immutable for the life
// of the decoded value) is what makes this safe.
func (d *Decoder) bytesToString(raw []byte) string {
	if d.zeroCopy && len(raw) > 0 {
		return unsafe.String(&raw[0], len(raw))
	}

	return string(raw)
}
