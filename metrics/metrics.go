// Package metrics derives sensitivity, precision, F1, and false-alarms-per-
// 24-hours from any scorer's primary TP/FP/FN counts. These are small,
// allocation-conscious pure functions over a result struct: no receiver
// state beyond the struct itself, stable rounding to avoid cross-platform
// floating-point drift.
package metrics

import "math"

// roundScale controls final-value stabilization precision (1e-9).
const roundScale = 1e9

// Counts holds the primary counts any scorer produces for the positive
// class.
type Counts struct {
	TP, FP, FN float64
}

// Sensitivity returns TP/(TP+FN), or 0 if the denominator is 0.
func Sensitivity(c Counts) float64 {
	denom := c.TP + c.FN
	if denom == 0 {
		return 0
	}
	return round1e9(c.TP / denom)
}

// Precision returns TP/(TP+FP), or 0 if the denominator is 0.
func Precision(c Counts) float64 {
	denom := c.TP + c.FP
	if denom == 0 {
		return 0
	}
	return round1e9(c.TP / denom)
}

// F1 returns the harmonic mean of Precision and Sensitivity, or 0 if both
// are 0.
func F1(c Counts) float64 {
	p := Precision(c)
	r := Sensitivity(c)
	if p+r == 0 {
		return 0
	}
	return round1e9(2 * p * r / (p + r))
}

// FAPer24h returns false alarms per 24 hours: fp * (epochDuration or 1) /
// durationSeconds * 86400. Returns 0 if durationSeconds <= 0. A nil
// epochDuration is treated as 1 (event-based scorers already count false
// alarms per event, not per sample).
func FAPer24h(fp, durationSeconds float64, epochDuration *float64) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	scale := 1.0
	if epochDuration != nil {
		scale = *epochDuration
	}
	return round1e9(fp * scale / durationSeconds * 86400)
}

// Aggregate accumulates Counts and total duration across many files, in a
// caller-chosen fixed order (see Add), so that FA/24h is computed from the
// summed FP and summed duration rather than averaged per file — averaging
// per-file FA/24h values silently introduces the large-factor error the
// specification warns against whenever file durations differ.
type Aggregate struct {
	Counts
	TotalDurationSeconds float64
}

// Add accumulates c and durationSeconds into a. Callers combining results
// from many files must invoke Add in a stable, caller-chosen order (e.g.
// sorted file identifiers) to keep floating-point summation reproducible;
// Aggregate itself has no notion of file identifiers to sort by.
func (a *Aggregate) Add(c Counts, durationSeconds float64) {
	a.TP += c.TP
	a.FP += c.FP
	a.FN += c.FN
	a.TotalDurationSeconds += durationSeconds
}

// Summary is the fully-derived view of an Aggregate (see
// Aggregate.Summarize), ready for JSON serialization.
type Summary struct {
	TP          float64 `json:"tp"`
	FP          float64 `json:"fp"`
	FN          float64 `json:"fn"`
	Sensitivity float64 `json:"sensitivity"`
	Precision   float64 `json:"precision"`
	F1          float64 `json:"f1"`
	FAPer24h    float64 `json:"fa_per_24h"`
}

// Summarize derives Sensitivity/Precision/F1/FAPer24h from the accumulated
// counts and total duration, using the SUM of durations recorded via Add —
// never the mean of per-file FA/24h values.
func (a Aggregate) Summarize(epochDuration *float64) Summary {
	return Summary{
		TP:          a.TP,
		FP:          a.FP,
		FN:          a.FN,
		Sensitivity: Sensitivity(a.Counts),
		Precision:   Precision(a.Counts),
		F1:          F1(a.Counts),
		FAPer24h:    FAPer24h(a.FP, a.TotalDurationSeconds, epochDuration),
	}
}

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
