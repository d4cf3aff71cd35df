package cinepak

import "errors"

// ErrVectorDecodeUnsupported strip payload decoding is not implemented.
var ErrVectorDecodeUnsupported = errors.New("cinepak vector decode is unsupported")

// DecodeVectors would decode the strip's codebooks and vectors into
// pixels. Not implemented: this package stops at the strip boundary, and
// the payload stays opaque. The error is returned unconditionally so
// callers attempting a full pixel decode get a clear signal.
func (s *Strip) DecodeVectors() error {
	return ErrVectorDecodeUnsupported
}
