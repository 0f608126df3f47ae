package ira

import "errors"

// ErrDurationMissing indicates a non-positive file duration was supplied to
// ScoreEvents; event-mode IRA requires a positive duration to build its
// sampling grid, identical to the epoch scorer's requirement.
var ErrDurationMissing = errors.New("ira: file duration must be positive")
