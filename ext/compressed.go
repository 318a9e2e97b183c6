// Package ext supplies a concrete extension: byte payloads transported
// compressed under the EXT tag instead of the core BYTES tag. It is grounded
// entirely on the encode.ExtHandler / decode.ExtHook hooks the core packages
// expose — the core knows nothing about compression.
package ext

import (
	"fmt"

	"github.com/tagwire/tagwire/compress"
	"github.com/tagwire/tagwire/decode"
	"github.com/tagwire/tagwire/encode"
	"github.com/tagwire/tagwire/value"
)

// CompressedBytesExtID is the extension id this package's handler and hook
// agree on.
const CompressedBytesExtID uint64 = 1

// Codec identifies which compress.Codec a CompressedBytes value was (or
// should be) compressed with. It is compress.Algorithm re-exported under
// this package's own naming.
type Codec = compress.Algorithm

const (
	CodecNone = compress.AlgorithmNone
	CodecZstd = compress.AlgorithmZstd
	CodecS2   = compress.AlgorithmS2
	CodecLZ4  = compress.AlgorithmLZ4
)

// CompressedBytes marks a byte payload for compressed transport. It is a
// value.Value implementation outside the codec's closed core set, so the
// encoder's built-in dispatch never touches it directly: it reaches the wire
// only through an extension handler built by NewCompressedBytesHandler.
type CompressedBytes struct {
	Codec Codec
	Raw   []byte
}

func (CompressedBytes) Kind() value.Kind { return value.KindExtension }

// Wrap returns data as plain value.Bytes when it is shorter than threshold,
// or as CompressedBytes otherwise. The BYTES tag always wins over the
// extension fallback in the encoder's dispatch order, so this threshold
// decision has to happen here, before encoding, rather than inside a
// handler. Encoding the CompressedBytes branch requires an encoder
// configured with NewCompressedBytesHandler.
func Wrap(data []byte, threshold int, codec Codec) value.Value {
	if len(data) < threshold {
		return value.Bytes(data)
	}

	return CompressedBytes{Codec: codec, Raw: data}
}

// NewCompressedBytesHandler returns an encode.ExtHandler that compresses
// CompressedBytes values with the codec matching their Codec field. It
// declines (ok=false) for any value.Value it does not recognize, leaving the
// encoder free to fail with errs.ErrUnsupportedType or try another handler.
//
// Each onStats callback, if given, is invoked once per successful
// compression with the resulting compress.CompressionStats, letting a caller
// track whether a given threshold and codec choice is paying off.
func NewCompressedBytesHandler(onStats ...func(compress.CompressionStats)) encode.ExtHandler {
	return func(v value.Value) (uint64, []byte, bool) {
		cb, ok := v.(CompressedBytes)
		if !ok {
			return 0, nil, false
		}

		codec, err := compress.GetCodec(cb.Codec)
		if err != nil {
			return 0, nil, false
		}

		compressed, err := codec.Compress(cb.Raw)
		if err != nil {
			return 0, nil, false
		}

		stats := compress.CompressionStats{
			Algorithm:      cb.Codec,
			OriginalSize:   int64(len(cb.Raw)),
			CompressedSize: int64(len(compressed)),
		}
		for _, fn := range onStats {
			fn(stats)
		}

		payload := make([]byte, 1+len(compressed))
		payload[0] = byte(cb.Codec)
		copy(payload[1:], compressed)

		return CompressedBytesExtID, payload, true
	}
}

// CompressedBytesHook returns a decode.ExtHook that reverses
// NewCompressedBytesHandler, producing a plain value.Bytes of the
// decompressed data. EXT tags carrying a different extension id are left
// for a caller-composed hook to handle; this one reports an error for them.
func CompressedBytesHook() decode.ExtHook {
	return func(extID uint64, payload []byte) (value.Value, error) {
		if extID != CompressedBytesExtID {
			return nil, fmt.Errorf("ext: unrecognized extension id %d", extID)
		}

		if len(payload) < 1 {
			return nil, fmt.Errorf("ext: compressed payload too short")
		}

		codecID := Codec(payload[0])

		codec, err := compress.GetCodec(codecID)
		if err != nil {
			return nil, err
		}

		raw, err := codec.Decompress(payload[1:])
		if err != nil {
			return nil, err
		}

		return value.Bytes(raw), nil
	}
}
