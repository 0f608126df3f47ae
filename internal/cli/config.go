package cli

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ScoringConfig bundles every scorer's tunable parameters, loadable from a
// single YAML file via --config.
type ScoringConfig struct {
	TargetLabel   string  `yaml:"target_label"`
	EpochDuration float64 `yaml:"epoch_duration"`
	NullClass     string  `yaml:"null_class"`
	PenaltyDel    float64 `yaml:"penalty_del"`
	PenaltyIns    float64 `yaml:"penalty_ins"`
	PenaltySub    float64 `yaml:"penalty_sub"`
}

// defaultScoringConfig returns the configuration used when --config is
// omitted, matching each package's own DefaultOptions().
func defaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		TargetLabel:   "seiz",
		EpochDuration: 0.25,
		NullClass:     "bckg",
		PenaltyDel:    1,
		PenaltyIns:    1,
		PenaltySub:    1,
	}
}

// loadConfig reads and parses a YAML scoring config. An empty path returns
// defaultScoringConfig() unchanged.
func loadConfig(path string) (ScoringConfig, error) {
	cfg := defaultScoringConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ScoringConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ScoringConfig{}, err
	}
	return cfg, nil
}
