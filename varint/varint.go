// Package varint implements the wire format's little-endian base-128 varint
// and its ZigZag signed/unsigned bijection.
//
// Encoding reuses encoding/binary.AppendUvarint, which already writes the
// same base-128 little-endian layout the wire format specifies. Decoding is
// hand-rolled rather than encoding/binary.Uvarint so that truncation and
// overflow are reported as distinct, comparable errs sentinels instead of
// encoding/binary's signed-length-as-error-code convention.
package varint

import (
	"encoding/binary"

	"github.com/tagwire/tagwire/errs"
)

// MaxLen is the maximum number of bytes a 64-bit varint can occupy on the wire.
const MaxLen = 10

// Append appends the varint encoding of v to buf and returns the extended buffer.
func Append(buf []byte, v uint64) []byte {
	return binary.AppendUvarint(buf, v)
}

// Decode reads a varint from the front of buf.
//
// It returns the decoded value, the number of bytes consumed, and an error.
// A varint whose bit length would exceed 64 bits fails with
// errs.ErrVarintOverflow; a buffer that ends mid-varint fails with
// errs.ErrTruncated.
func Decode(buf []byte) (uint64, int, error) {
	var v uint64

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if i == MaxLen-1 {
			// The 10th byte may only contribute its single least-significant
			// bit; anything else (a set continuation bit, or more than one
			// data bit) would require more than 64 bits of value.
			if b >= 0x80 || b > 1 {
				return 0, 0, errs.ErrVarintOverflow
			}
			v |= uint64(b) << uint(7*i)

			return v, i + 1, nil
		}

		if b < 0x80 {
			v |= uint64(b) << uint(7*i)

			return v, i + 1, nil
		}

		v |= uint64(b&0x7f) << uint(7*i)
	}

	return 0, 0, errs.ErrTruncated
}

// ZigZagEncode maps a signed 64-bit integer to an unsigned 64-bit integer,
// placing small-magnitude values (positive or negative) at low unsigned values.
func ZigZagEncode(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
