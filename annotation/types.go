// Package annotation defines the immutable EventAnnotation and
// AnnotationFile value types shared by every scorer in this module, plus the
// label-normalization and overlap primitives they all build on.
//
// Every type here is a plain value: construction is validated up front,
// nothing is mutated afterward, and scorers that need a derived sequence
// (e.g. gap-filler events) build a fresh slice rather than touching the
// caller's input. There is no shared mutable state and no global registry.
package annotation

import (
	"sort"
	"strings"
)

// Positive, background, and default-null label constants. The null class is
// a scorer *parameter* (see epoch.Options / ira.Options), not a fixed
// constant, but these are the conventional values used throughout the
// reference corpus and as defaults.
const (
	LabelSeizure   = "seiz"
	LabelBackground = "bckg"
	LabelNull      = "null"

	// durationSlack is the tolerated float noise between an event's
	// stop_time and the file duration (see §3 of the specification).
	durationSlack = 1e-10
)

// EventAnnotation is an immutable labeled half-open time interval with a
// confidence score. Channel is conventionally "TERM" (the aggregated
// channel this module operates on exclusively).
type EventAnnotation struct {
	Channel    string
	StartTime  float64
	StopTime   float64
	Label      string
	Confidence float64
}

// NewEventAnnotation validates and constructs an EventAnnotation. Confidence
// defaults to 1.0 when omitted. The label is lower-cased and trimmed of
// surrounding whitespace via NormalizeLabel; a label that is empty after
// trimming is rejected with ErrEmptyLabel.
func NewEventAnnotation(channel string, start, stop float64, label string, confidence ...float64) (EventAnnotation, error) {
	conf := 1.0
	if len(confidence) > 0 {
		conf = confidence[0]
	}

	label = NormalizeLabel(label)
	if label == "" {
		return EventAnnotation{}, ErrEmptyLabel
	}
	if start < 0 || stop < start {
		return EventAnnotation{}, ErrInvalidTimeRange
	}
	if conf < 0 || conf > 1 {
		return EventAnnotation{}, ErrInvalidConfidence
	}

	return EventAnnotation{
		Channel:    channel,
		StartTime:  start,
		StopTime:   stop,
		Label:      label,
		Confidence: conf,
	}, nil
}

// NormalizeLabel lower-cases and trims a raw label string. Scorers compare
// labels case-insensitively; this is the single place that lower-casing
// happens so every downstream map lookup can use plain string equality.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Overlaps reports whether two events overlap under the strict, no-guard-band
// rule: a.stop > b.start AND a.start < b.stop. This is the single overlap
// predicate used by every scorer; none of them reimplement it locally.
func Overlaps(a, b EventAnnotation) bool {
	return a.StopTime > b.StartTime && a.StartTime < b.StopTime
}

// AnnotationFile is an immutable ordered sequence of events plus the file's
// total duration and an optional source identifier (e.g. a file path,
// supplied by the ingestion collaborator for diagnostics only).
type AnnotationFile struct {
	Events   []EventAnnotation
	Duration float64
	Source   string
}

// Validate checks that events are sorted by start_time (ties broken by
// stop_time then label) and that every event's stop_time falls within
// durationSlack of the file duration. Scorers never call this implicitly —
// it exists for ingestion collaborators that want to reject malformed input
// early.
func (f AnnotationFile) Validate() error {
	if f.Duration <= 0 {
		return ErrDurationMissing
	}
	for i, e := range f.Events {
		if e.StopTime > f.Duration+durationSlack {
			return ErrEventExceedsDuration
		}
		if i == 0 {
			continue
		}
		prev := f.Events[i-1]
		if less(e, prev) {
			return ErrUnsortedEvents
		}
	}
	return nil
}

// SortEvents sorts events in place by (start_time, stop_time, label), the
// fixed tie-break order required by §5 — TAES's active-flag bookkeeping is
// sensitive to event order, so every scorer that accepts unsorted input
// normalizes through this one function.
func SortEvents(events []EventAnnotation) {
	sort.SliceStable(events, func(i, j int) bool {
		return less(events[i], events[j])
	})
}

// less implements the (start_time, stop_time, label) tie-break order.
func less(a, b EventAnnotation) bool {
	if a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	if a.StopTime != b.StopTime {
		return a.StopTime < b.StopTime
	}
	return a.Label < b.Label
}

// FilterLabel returns a new, sorted slice containing only events whose
// (already-normalized) label equals the given label. Several scorers (TAES,
// in particular) need exactly this view.
func FilterLabel(events []EventAnnotation, label string) []EventAnnotation {
	label = NormalizeLabel(label)
	out := make([]EventAnnotation, 0, len(events))
	for _, e := range events {
		if e.Label == label {
			out = append(out, e)
		}
	}
	SortEvents(out)
	return out
}
