package encode

import (
	"github.com/tagwire/tagwire/internal/options"
	"github.com/tagwire/tagwire/value"
)

// Option configures an Encoder, following the same generic functional-options
// pattern internal/options provides throughout this module.
type Option = options.Option[*Encoder]

// ExtHandler is called exactly once per value the built-in dispatch does not
// recognize. It returns the extension id and payload to emit as an EXT tag,
// or ok=false to decline (causing encode to fail with errs.ErrUnsupportedType).
type ExtHandler func(v value.Value) (extID uint64, payload []byte, ok bool)

// WithExtHandler configures the extension handler invoked as the encoder's
// last-resort dispatch step.
func WithExtHandler(handler ExtHandler) Option {
	return options.NoError(func(e *Encoder) {
		e.extHandler = handler
	})
}
