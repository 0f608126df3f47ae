// Package annotation is the shared data model for the nedc-bench scoring
// core: immutable events and annotation files, label normalization, and the
// overlap predicate every scorer builds on.
//
// 🚀 What lives here?
//
//	EventAnnotation — a labeled half-open time interval with a confidence.
//	AnnotationFile  — an ordered sequence of events plus file duration.
//
// Everything is a plain, read-only value. Scorers that need a derived
// sequence (e.g. gap-filler events) build their own slice; nothing here is
// ever mutated after construction.
//
//	go get github.com/nedc-bench/scoring-core/annotation
package annotation
