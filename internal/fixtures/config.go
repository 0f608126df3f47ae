// Package fixtures generates synthetic, deterministic EventAnnotation
// sequences for property-based tests: a config struct mutated by a chain of
// Option values, drawing from a *rand.Rand seeded by WithSeed, or from a
// fixed fallback seed when no seed is supplied.
package fixtures

import "math/rand"

// Option customizes sequence generation. Each Option mutates a private
// config; options are applied in order, later ones overriding earlier ones.
type Option func(cfg *config)

type config struct {
	rng         *rand.Rand
	eventCount  int
	labels      []string
	gapChance   float64 // probability a slot is left as a gap rather than an event
	maxDuration float64 // upper bound on any single event's span
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		eventCount:  10,
		labels:      []string{"seiz", "bckg"},
		gapChance:   0.2,
		maxDuration: 5.0,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a fresh *rand.Rand for reproducible generation.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEventCount sets how many candidate event slots are generated. Actual
// output may contain fewer events, since some slots are left as gaps per
// WithGapChance.
func WithEventCount(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.eventCount = n
		}
	}
}

// WithLabels restricts the label alphabet drawn from. A nil or empty slice
// is a no-op, leaving the default {"seiz", "bckg"}.
func WithLabels(labels ...string) Option {
	return func(cfg *config) {
		if len(labels) > 0 {
			cfg.labels = labels
		}
	}
}

// WithGapChance sets the probability, in [0,1], that a candidate slot is
// left empty rather than filled with an event.
func WithGapChance(p float64) Option {
	return func(cfg *config) {
		if p >= 0 && p <= 1 {
			cfg.gapChance = p
		}
	}
}

// rngFrom returns cfg.rng if the caller supplied one via WithSeed, else a
// local *rand.Rand seeded from the fallback value.
func rngFrom(cfg *config, fallbackSeed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(fallbackSeed))
}
