// Package errs defines the sentinel errors returned by encode and decode.
//
// Every fallible condition the codec can hit is a package-level
// errors.New value, compared by callers with errors.Is. Call sites that
// need to attach position or context information wrap a sentinel with
// fmt.Errorf("...: %w", errs.ErrXxx); the sentinel survives the wrap and
// remains comparable.
package errs

import "errors"

var (
	// ErrUnsupportedType is returned by encode when a value matches no
	// built-in variant and no extension handler accepts it.
	ErrUnsupportedType = errors.New("tagwire: unsupported value type")

	// ErrUnknownSymbol is returned by encode when a string is forced
	// through the symbol table (a map key) but is absent from it.
	ErrUnknownSymbol = errors.New("tagwire: symbol not present in table")

	// ErrMapKeyNotSymbol is returned by encode when a map key does not
	// resolve to a symbol table entry.
	ErrMapKeyNotSymbol = errors.New("tagwire: map key is not a symbol table entry")

	// ErrTruncated is returned by decode when the input ends before a
	// byte, varint, float, string, bytes, or ext payload is complete.
	ErrTruncated = errors.New("tagwire: truncated input")

	// ErrVarintOverflow is returned by decode when a varint's bit length
	// would exceed 64 bits.
	ErrVarintOverflow = errors.New("tagwire: varint overflow")

	// ErrUnknownTag is returned by decode when a tag byte is not one of
	// the fourteen defined tags.
	ErrUnknownTag = errors.New("tagwire: unknown tag byte")

	// ErrMissingSymrefPrefix is returned by decode when a map key is not
	// introduced by a SYMREF tag.
	ErrMissingSymrefPrefix = errors.New("tagwire: map key missing SYMREF prefix")

	// ErrSymbolIndexOutOfRange is returned by decode when a SYMREF index
	// is not representable in the symbol table.
	ErrSymbolIndexOutOfRange = errors.New("tagwire: symbol index out of range")

	// ErrNestingDepthExceeded is returned by decode when the configured
	// maximum container nesting depth is exceeded.
	ErrNestingDepthExceeded = errors.New("tagwire: nesting depth exceeded")

	// ErrHookFailed is returned by decode when an ext_hook or ts_hook
	// callback returns an error.
	ErrHookFailed = errors.New("tagwire: hook failed")

	// ErrTrailingBytes is returned by decode in strict-trailing mode when
	// bytes remain after the first complete value.
	ErrTrailingBytes = errors.New("tagwire: trailing bytes after value")
)
