package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tagwire/tagwire/errs"
	"github.com/tagwire/tagwire/symtab"
	"github.com/tagwire/tagwire/value"
)

func mustDecode(t *testing.T, symbols []string, buf []byte, opts ...Option) value.Value {
	t.Helper()
	dec, err := New(symtab.New(symbols), opts...)
	require.NoError(t, err)

	v, err := dec.Decode(buf)
	require.NoError(t, err)

	return v
}

func TestDecode_Null(t *testing.T) {
	require.Equal(t, value.Null{}, mustDecode(t, nil, []byte{0x00}))
}

func TestDecode_Bool(t *testing.T) {
	require.Equal(t, value.Bool(true), mustDecode(t, nil, []byte{0x01}))
	require.Equal(t, value.Bool(false), mustDecode(t, nil, []byte{0x02}))
}

func TestDecode_NegativeOne(t *testing.T) {
	require.Equal(t, value.Int(-1), mustDecode(t, nil, []byte{0x03, 0x01}))
}

func TestDecode_Int300(t *testing.T) {
	require.Equal(t, value.Int(300), mustDecode(t, nil, []byte{0x03, 0xD8, 0x04}))
}

func TestDecode_MapWithSymbols(t *testing.T) {
	symbols := []string{"id", "name"}
	buf := []byte{
		0x07, 0x02,
		0x08, 0x00,
		0x03, 0x0E,
		0x08, 0x01,
		0x05, 0x01, 'x',
	}

	got := mustDecode(t, symbols, buf)
	m, ok := got.(*value.Map)
	require.True(t, ok)
	require.Equal(t, 2, m.Len())

	v, ok := m.Get("id")
	require.True(t, ok)
	require.Equal(t, value.Int(7), v)

	v, ok = m.Get("name")
	require.True(t, ok)
	require.Equal(t, value.String("x"), v)
}

func TestDecode_TupleVsList(t *testing.T) {
	tup := mustDecode(t, nil, []byte{0x0D, 0x03, 0x03, 0x02, 0x03, 0x04, 0x03, 0x06})
	require.Equal(t, value.Tuple{value.Int(1), value.Int(2), value.Int(3)}, tup)

	lst := mustDecode(t, nil, []byte{0x06, 0x03, 0x03, 0x02, 0x03, 0x04, 0x03, 0x06})
	require.Equal(t, value.List{value.Int(1), value.Int(2), value.Int(3)}, lst)
}

func TestDecode_StringSymref(t *testing.T) {
	got := mustDecode(t, []string{"hello"}, []byte{0x08, 0x00})
	require.Equal(t, value.String("hello"), got)
}

func TestDecode_StringLiteral(t *testing.T) {
	got := mustDecode(t, nil, []byte{0x05, 0x02, 'h', 'i'})
	require.Equal(t, value.String("hi"), got)
}

func TestDecode_Bytes(t *testing.T) {
	got := mustDecode(t, nil, []byte{0x09, 0x02, 0x01, 0x02})
	require.Equal(t, value.Bytes{0x01, 0x02}, got)
}

func TestDecode_Float(t *testing.T) {
	// 1.5 as big-endian IEEE-754 double: 0x3FF8000000000000
	buf := []byte{0x04, 0x3F, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	require.Equal(t, value.Float(1.5), mustDecode(t, nil, buf))
}

func TestDecode_Time(t *testing.T) {
	// zigzag(1000) = 2000 = 0x7D0, varint = 0xD0, 0x0F
	got := mustDecode(t, nil, []byte{0x0A, 0xD0, 0x0F})
	require.Equal(t, value.Time{UnixMilli: 1000}, got)
}

func TestDecode_EmptyContainers(t *testing.T) {
	require.Equal(t, value.List{}, mustDecode(t, nil, []byte{0x06, 0x00}))
	require.Equal(t, value.Tuple{}, mustDecode(t, nil, []byte{0x0D, 0x00}))

	s := mustDecode(t, nil, []byte{0x0C, 0x00}).(*value.Set)
	require.Equal(t, 0, s.Len())

	m := mustDecode(t, nil, []byte{0x07, 0x00}).(*value.Map)
	require.Equal(t, 0, m.Len())
}

func TestDecode_Set(t *testing.T) {
	// SET count=2: INT 1, INT 2
	buf := []byte{0x0C, 0x02, 0x03, 0x02, 0x03, 0x04}
	s := mustDecode(t, nil, buf).(*value.Set)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(value.Int(1)))
	require.True(t, s.Contains(value.Int(2)))
}

func TestDecode_NestedContainers(t *testing.T) {
	// ARR count=1: [ ARR count=2: [INT 1, INT 2] ]
	buf := []byte{0x06, 0x01, 0x06, 0x02, 0x03, 0x02, 0x03, 0x04}
	got := mustDecode(t, nil, buf)
	require.Equal(t, value.List{value.List{value.Int(1), value.Int(2)}}, got)
}

func TestDecode_TruncatedInput(t *testing.T) {
	dec, err := New(symtab.New(nil))
	require.NoError(t, err)

	_, err = dec.Decode([]byte{0x03})
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, err = dec.Decode([]byte{})
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, err = dec.Decode([]byte{0x06, 0x02, 0x00})
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestDecode_UnknownTag(t *testing.T) {
	dec, err := New(symtab.New(nil))
	require.NoError(t, err)

	_, err = dec.Decode([]byte{0xFF})
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}

func TestDecode_MapKeyMissingSymrefPrefix(t *testing.T) {
	dec, err := New(symtab.New([]string{"id"}))
	require.NoError(t, err)

	// OBJ count=1, but key tag is STR instead of SYMREF.
	_, err = dec.Decode([]byte{0x07, 0x01, 0x05, 0x01, 'x', 0x03, 0x02})
	require.ErrorIs(t, err, errs.ErrMissingSymrefPrefix)
}

func TestDecode_SymbolIndexOutOfRange(t *testing.T) {
	dec, err := New(symtab.New([]string{"id"}))
	require.NoError(t, err)

	_, err = dec.Decode([]byte{0x08, 0x05})
	require.ErrorIs(t, err, errs.ErrSymbolIndexOutOfRange)
}

func TestDecode_LenientTrailingBytesByDefault(t *testing.T) {
	got := mustDecode(t, nil, []byte{0x00, 0x01, 0x02, 0x03})
	require.Equal(t, value.Null{}, got)
}

func TestDecode_StrictTrailingRejectsExtraBytes(t *testing.T) {
	dec, err := New(symtab.New(nil), WithStrictTrailing())
	require.NoError(t, err)

	_, err = dec.Decode([]byte{0x00, 0x01})
	require.ErrorIs(t, err, errs.ErrTrailingBytes)

	v, err := dec.Decode([]byte{0x00})
	require.NoError(t, err)
	require.Equal(t, value.Null{}, v)
}

func TestDecode_MaxDepthExceeded(t *testing.T) {
	dec, err := New(symtab.New(nil), WithMaxDepth(2))
	require.NoError(t, err)

	// ARR(1) -> ARR(1) -> ARR(1) -> NULL: three nested levels, depth limit 2.
	buf := []byte{0x06, 0x01, 0x06, 0x01, 0x06, 0x01, 0x00}
	_, err = dec.Decode(buf)
	require.ErrorIs(t, err, errs.ErrNestingDepthExceeded)
}

func TestDecode_MaxDepthExactlyAtLimit(t *testing.T) {
	dec, err := New(symtab.New(nil), WithMaxDepth(2))
	require.NoError(t, err)

	// ARR(1) -> ARR(1) -> NULL: exactly two nesting levels.
	buf := []byte{0x06, 0x01, 0x06, 0x01, 0x00}
	v, err := dec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, value.List{value.List{value.Null{}}}, v)
}

func TestDecode_ExtHook(t *testing.T) {
	dec, err := New(symtab.New(nil), WithExtHook(func(extID uint64, payload []byte) (value.Value, error) {
		require.Equal(t, uint64(42), extID)
		return value.String(string(payload)), nil
	}))
	require.NoError(t, err)

	buf := []byte{0x0B, 0x2A, 0x03, 'f', 'o', 'o'}
	v, err := dec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, value.String("foo"), v)
}

func TestDecode_ExtWithoutHook(t *testing.T) {
	got := mustDecode(t, nil, []byte{0x0B, 0x2A, 0x03, 'f', 'o', 'o'})
	require.Equal(t, value.Extension{ID: 42, Payload: []byte("foo")}, got)
}

func TestDecode_TSHookFailurePropagates(t *testing.T) {
	sentinel := errors.New("ts_hook: boom")
	dec, err := New(symtab.New(nil), WithTSHook(func(ms int64) (value.Value, error) {
		return nil, sentinel
	}))
	require.NoError(t, err)

	_, err = dec.Decode([]byte{0x0A, 0xD0, 0x0F})
	require.ErrorIs(t, err, errs.ErrHookFailed)
	require.ErrorIs(t, err, sentinel)
}

func TestDecode_TSHookSuccess(t *testing.T) {
	dec, err := New(symtab.New(nil), WithTSHook(func(ms int64) (value.Value, error) {
		return value.Int(ms), nil
	}))
	require.NoError(t, err)

	v, err := dec.Decode([]byte{0x0A, 0xD0, 0x0F})
	require.NoError(t, err)
	require.Equal(t, value.Int(1000), v)
}

func TestDecode_ZeroCopyAliasesInput(t *testing.T) {
	buf := []byte{0x09, 0x02, 0x01, 0x02}
	dec, err := New(symtab.New(nil), WithZeroCopy())
	require.NoError(t, err)

	v, err := dec.Decode(buf)
	require.NoError(t, err)

	b := v.(value.Bytes)
	buf[2] = 0xFF
	require.Equal(t, byte(0xFF), b[0])
}

func TestDecode_WithoutZeroCopyDoesNotAliasInput(t *testing.T) {
	buf := []byte{0x09, 0x02, 0x01, 0x02}
	got := mustDecode(t, nil, buf)

	b := got.(value.Bytes)
	buf[2] = 0xFF
	require.Equal(t, byte(0x01), b[0])
}
