package dpalign

import "errors"

// ErrBadOptions indicates a negative deletion, insertion, or substitution
// penalty was supplied. Algorithms here never panic on caller-triggered
// conditions; Validate surfaces this sentinel instead.
var ErrBadOptions = errors.New("dpalign: penalties must be non-negative")
