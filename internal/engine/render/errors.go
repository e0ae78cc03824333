package render

import "errors"

// Configuration errors. Any of these aborts the frame.
var (
	ErrUnboundParameter = errors.New("shader parameter not bound")
	ErrNoRenderTarget   = errors.New("render target not allocated")
	ErrZeroBackBuffer   = errors.New("back buffer has zero size")
	ErrPassOrder        = errors.New("render pass out of order")
	ErrMissingProgram   = errors.New("no program for shader variant")
)

// IsConfigurationError reports whether err means the pipeline is wired
// incorrectly rather than a transient failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnboundParameter) ||
		errors.Is(err, ErrNoRenderTarget) ||
		errors.Is(err, ErrZeroBackBuffer) ||
		errors.Is(err, ErrPassOrder) ||
		errors.Is(err, ErrMissingProgram)
}
