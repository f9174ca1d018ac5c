package motion

import "errors"

// ErrInvalidParameter reports an out-of-domain input to a constructor or
// operation. Every parameter failure in this package wraps it, so callers
// can match with errors.Is.
var ErrInvalidParameter = errors.New("motion: invalid parameter")
