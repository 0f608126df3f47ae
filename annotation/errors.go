// Package annotation: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// annotation package. All constructors MUST return these sentinels and tests
// MUST check them via errors.Is. No function here panics on caller-triggered
// conditions.
package annotation

import "errors"

var (
	// ErrEmptyLabel indicates an EventAnnotation was constructed with an
	// empty (post-trim) label.
	ErrEmptyLabel = errors.New("annotation: label is empty")

	// ErrInvalidTimeRange indicates start_time > stop_time or a negative
	// start_time.
	ErrInvalidTimeRange = errors.New("annotation: invalid time range")

	// ErrInvalidConfidence indicates a confidence value outside [0,1].
	ErrInvalidConfidence = errors.New("annotation: confidence out of range")

	// ErrDurationMissing indicates a non-positive (or absent) file duration
	// where a positive duration is required.
	ErrDurationMissing = errors.New("annotation: file duration missing or non-positive")

	// ErrUnsortedEvents indicates AnnotationFile.Events are not sorted by
	// start_time as required by the invariant in the data model.
	ErrUnsortedEvents = errors.New("annotation: events are not sorted by start_time")

	// ErrEventExceedsDuration indicates an event's stop_time exceeds the
	// file's duration beyond the tolerated float slack (1e-10s).
	ErrEventExceedsDuration = errors.New("annotation: event stop_time exceeds file duration")
)
