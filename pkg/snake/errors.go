package snake

import "errors"

// ErrBadDimensions is returned by the constructors when the configured board
// width or height is not positive.
var ErrBadDimensions = errors.New("board dimensions must be positive")
