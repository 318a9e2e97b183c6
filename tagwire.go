// Package tagwire is a self-describing, tag-based binary serialization
// codec for a closed tree of in-memory values, parameterised by an
// externally supplied symbol table.
//
// There is no format version byte, magic header, or envelope framing: the
// first byte of a valid payload is always a value tag (see package wire).
// The codec has no persisted state of its own — it is a pure value-to-bytes
// and bytes-to-value function pair, wired together here as the package-level
// convenience on top of the encode and decode packages a caller would
// otherwise construct directly for repeated use.
package tagwire

import (
	"github.com/tagwire/tagwire/decode"
	"github.com/tagwire/tagwire/encode"
	"github.com/tagwire/tagwire/symtab"
	"github.com/tagwire/tagwire/value"
)

// Encode serializes v against symbols, constructing a one-shot Encoder.
// Callers making many calls with the same symbol table and options should
// construct an encode.Encoder directly instead.
func Encode(v value.Value, symbols *symtab.Table, opts ...encode.Option) ([]byte, error) {
	enc, err := encode.New(symbols, opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(v)
}

// Decode parses exactly one value from the front of buf against symbols,
// constructing a one-shot Decoder. Callers making many calls with the same
// symbol table and options should construct a decode.Decoder directly
// instead.
func Decode(buf []byte, symbols *symtab.Table, opts ...decode.Option) (value.Value, error) {
	dec, err := decode.New(symbols, opts...)
	if err != nil {
		return nil, err
	}

	return dec.Decode(buf)
}
