package compress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgorithm_String(t *testing.T) {
	tests := []struct {
		algorithm Algorithm
		expected  string
	}{
		{AlgorithmNone, "none"},
		{AlgorithmZstd, "zstd"},
		{AlgorithmS2, "s2"},
		{AlgorithmLZ4, "lz4"},
		{Algorithm(0xFF), "unknown(255)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.algorithm.String())
		})
	}
}

func TestGetCodec_KnownAlgorithms(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmNone, AlgorithmZstd, AlgorithmS2, AlgorithmLZ4} {
		t.Run(alg.String(), func(t *testing.T) {
			codec, err := GetCodec(alg)
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}
}

func TestGetCodec_UnknownAlgorithm(t *testing.T) {
	_, err := GetCodec(Algorithm(0xFF))
	require.Error(t, err)
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name:            "good compression",
			stats:           CompressionStats{Algorithm: AlgorithmZstd, OriginalSize: 1000, CompressedSize: 300},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name:            "no compression benefit",
			stats:           CompressionStats{Algorithm: AlgorithmNone, OriginalSize: 500, CompressedSize: 500},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "compression overhead",
			stats:           CompressionStats{Algorithm: AlgorithmS2, OriginalSize: 100, CompressedSize: 120},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name:            "zero original size",
			stats:           CompressionStats{Algorithm: AlgorithmLZ4, OriginalSize: 0, CompressedSize: 100},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}

func mustCodec(t *testing.T, alg Algorithm) Codec {
	t.Helper()

	codec, err := GetCodec(alg)
	require.NoError(t, err)

	return codec
}

func allCodecs(t *testing.T) map[string]Codec {
	t.Helper()

	return map[string]Codec{
		"none": mustCodec(t, AlgorithmNone),
		"zstd": mustCodec(t, AlgorithmZstd),
		"s2":   mustCodec(t, AlgorithmS2),
		"lz4":  mustCodec(t, AlgorithmLZ4),
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"small_text":          []byte("Hello, World!"),
		"repeated_pattern":    bytes.Repeat([]byte("ABCD"), 256),
		"binary":              {0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC},
		"highly_compressible": make([]byte, 64*1024),
	}

	for name, codec := range allCodecs(t) {
		t.Run(name, func(t *testing.T) {
			for payloadName, data := range payloads {
				t.Run(payloadName, func(t *testing.T) {
					compressed, err := codec.Compress(data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range allCodecs(t) {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_InvalidCompressedData(t *testing.T) {
	invalid := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	for name, codec := range allCodecs(t) {
		if name == "none" {
			continue // NoOpCompressor has no format to validate against.
		}

		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(invalid)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const goroutines = 16

	data := []byte("concurrent compression exercise with some repeated content repeated content")

	for name, codec := range allCodecs(t) {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			done := make(chan error, goroutines)
			for range goroutines {
				go func() {
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}

					if !bytes.Equal(data, decompressed) {
						done <- errors.New("decompressed data mismatch")
						return
					}

					done <- nil
				}()
			}

			for range goroutines {
				require.NoError(t, <-done)
			}
		})
	}
}
