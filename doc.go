// Package scoringcore is a placeholder for godoc's module landing page; the
// real API lives in its subpackages:
//
//	annotation/ — EventAnnotation/AnnotationFile value types, overlap and
//	              sort primitives shared by every scorer.
//	taes/       — fractional, multi-overlap event scoring.
//	overlap/    — binary any-overlap event scoring.
//	dpalign/    — edit-distance sequence alignment.
//	confmat/    — shared label-keyed confusion matrix.
//	epoch/      — fixed-window midpoint sampling with gap augmentation.
//	ira/        — Cohen's kappa inter-rater agreement.
//	metrics/    — sensitivity/precision/F1/FA-per-24h derived metrics.
//	cmd/nedcscore/ — a CLI exercising every scorer against JSON fixtures.
//
//	go get github.com/nedc-bench/scoring-core
package scoringcore
