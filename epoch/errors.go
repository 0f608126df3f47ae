package epoch

import "errors"

// ErrDurationMissing indicates a non-positive file duration was supplied;
// Epoch scoring requires a positive duration to build its sampling grid.
var ErrDurationMissing = errors.New("epoch: file duration must be positive")
