package decode

import (
	"github.com/tagwire/tagwire/internal/options"
	"github.com/tagwire/tagwire/value"
)

// Option configures a Decoder.
type Option = options.Option[*Decoder]

// ExtHook is invoked for each decoded EXT tag, receiving the extension id and
// its raw payload. A nil hook leaves EXT values as value.Extension.
type ExtHook func(extID uint64, payload []byte) (value.Value, error)

// TSHook is invoked for each decoded TIME tag, receiving the signed
// milliseconds-since-epoch. A nil hook leaves TIME values as value.Time.
type TSHook func(msSinceEpoch int64) (value.Value, error)

// WithZeroCopy makes BYTES and EXT payloads (and STR contents) alias the
// input buffer instead of being copied out. The caller must keep the input
// buffer alive and unmodified for as long as the decoded value is in use.
func WithZeroCopy() Option {
	return options.NoError(func(d *Decoder) {
		d.zeroCopy = true
	})
}

// WithExtHook installs a hook that runs on every EXT tag.
func WithExtHook(hook ExtHook) Option {
	return options.NoError(func(d *Decoder) {
		d.extHook = hook
	})
}

// WithTSHook installs a hook that runs on every TIME tag.
func WithTSHook(hook TSHook) Option {
	return options.NoError(func(d *Decoder) {
		d.tsHook = hook
	})
}

// WithMaxDepth overrides the default nesting depth limit (1024). A document
// that would need to hold more than n container frames open simultaneously
// fails with errs.ErrNestingDepthExceeded.
func WithMaxDepth(n int) Option {
	return options.NoError(func(d *Decoder) {
		d.maxDepth = n
	})
}

// WithStrictTrailing makes Decode fail with errs.ErrTrailingBytes when input
// remains after the top-level value closes. The default is lenient:
// trailing bytes are silently ignored and the first decoded value wins.
func WithStrictTrailing() Option {
	return options.NoError(func(d *Decoder) {
		d.strictTrailing = true
	})
}
