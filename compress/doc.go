// Package compress provides interchangeable compression codecs for large
// byte payloads carried through the wire format's EXT mechanism.
//
// # Overview
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp** (AlgorithmNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)
//
// Use when the payload is already compressed or incompressible.
//
// **Zstandard** (AlgorithmZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Best compression ratio of the four, moderate speed. A cgo-accelerated
// implementation backed by valyala/gozstd is selected by default; the
// pure-Go klauspost/compress/zstd implementation is used under the purego
// build tag.
//
// **S2** (AlgorithmS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Balances compression ratio and throughput; a good default for payloads
// on a latency-sensitive path.
//
// **LZ4** (AlgorithmLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Fastest decompression of the three real algorithms, moderate compression
// ratio.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use; internal encoder/
// decoder state is pooled with sync.Pool rather than stored on the value.
//
// # Extending
//
// Custom codecs can implement Compressor/Decompressor directly. There is no
// registration step: GetCodec, and with it the ext package's extension
// handler and hook, only resolves the four built-in algorithms.
package compress
