package fixtures

import "github.com/nedc-bench/scoring-core/annotation"

// GenerateEventSequence produces a deterministic, sorted, non-overlapping
// sequence of EventAnnotation values covering a subset of [0, duration],
// suitable for fuzzing scorer invariants across many seeds. Each candidate
// slot independently becomes either a gap or an event of a random label and
// span, per cfg.gapChance; slots never overlap since the cursor only ever
// advances forward.
func GenerateEventSequence(duration float64, opts ...Option) []annotation.EventAnnotation {
	cfg := newConfig(opts...)
	if duration <= 0 || cfg.eventCount <= 0 {
		return nil
	}

	rng := rngFrom(cfg, 1)
	slotWidth := duration / float64(cfg.eventCount)

	events := make([]annotation.EventAnnotation, 0, cfg.eventCount)
	cursor := 0.0

	for i := 0; i < cfg.eventCount && cursor < duration; i++ {
		slotEnd := cursor + slotWidth
		if slotEnd > duration {
			slotEnd = duration
		}

		if rng.Float64() < cfg.gapChance {
			cursor = slotEnd
			continue
		}

		span := slotEnd - cursor
		if cfg.maxDuration > 0 && span > cfg.maxDuration {
			span = cfg.maxDuration
		}
		start := cursor
		stop := start + span*(0.3+0.7*rng.Float64())
		if stop > duration {
			stop = duration
		}
		if stop <= start {
			cursor = slotEnd
			continue
		}

		label := cfg.labels[rng.Intn(len(cfg.labels))]
		ev, err := annotation.NewEventAnnotation("TERM", start, stop, label, 1.0)
		if err != nil {
			cursor = slotEnd
			continue
		}
		events = append(events, ev)
		cursor = slotEnd
	}

	annotation.SortEvents(events)
	return events
}

// GeneratePair produces two independently-random but duration-matched
// sequences, convenient for fuzzing scorers that compare a reference
// against a hypothesis.
func GeneratePair(duration float64, refSeed, hypSeed int64, opts ...Option) (ref, hyp []annotation.EventAnnotation) {
	ref = GenerateEventSequence(duration, append(append([]Option{}, opts...), WithSeed(refSeed))...)
	hyp = GenerateEventSequence(duration, append(append([]Option{}, opts...), WithSeed(hypSeed))...)
	return ref, hyp
}
