package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nedc-bench/scoring-core/annotation"
	"github.com/nedc-bench/scoring-core/dpalign"
	"github.com/nedc-bench/scoring-core/epoch"
	"github.com/nedc-bench/scoring-core/ira"
	"github.com/nedc-bench/scoring-core/metrics"
	"github.com/nedc-bench/scoring-core/overlap"
	"github.com/nedc-bench/scoring-core/taes"
)

var (
	refPath      string
	hypPath      string
	fileDuration float64
	configPath   string
)

var scoreCmd = &cobra.Command{
	Use:   "score <algo>",
	Short: "Score a hypothesis annotation file against a reference",
	Long:  "Score a hypothesis annotation file against a reference using one of taes, overlap, dp, epoch, ira, or all.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&refPath, "ref", "", "path to reference fixture JSON")
	scoreCmd.Flags().StringVar(&hypPath, "hyp", "", "path to hypothesis fixture JSON")
	scoreCmd.Flags().Float64Var(&fileDuration, "duration", 0, "file duration in seconds (required by epoch and ira)")
	scoreCmd.Flags().StringVar(&configPath, "config", "", "optional YAML scoring config")
	_ = scoreCmd.MarkFlagRequired("ref")
	_ = scoreCmd.MarkFlagRequired("hyp")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	algo := args[0]

	cfg, err := loadConfig(configPath)
	if err != nil {
		logrus.WithError(err).Warn("failed to load scoring config")
		return err
	}

	ref, err := loadEvents(refPath)
	if err != nil {
		logrus.WithError(err).Warnf("failed to load reference fixture %s", refPath)
		return err
	}
	hyp, err := loadEvents(hypPath)
	if err != nil {
		logrus.WithError(err).Warnf("failed to load hypothesis fixture %s", hypPath)
		return err
	}

	logrus.WithFields(logrus.Fields{
		"algo":      algo,
		"ref_count": len(ref),
		"hyp_count": len(hyp),
	}).Info("scoring file pair")

	var (
		result   any
		scoreErr error
	)

	switch algo {
	case "taes":
		result = taes.Score(ref, hyp, taes.Options{TargetLabel: cfg.TargetLabel})
	case "overlap":
		result = overlap.Score(ref, hyp)
	case "dp":
		result, scoreErr = scoreDP(ref, hyp, cfg)
	case "epoch":
		result, scoreErr = epoch.Score(ref, hyp, fileDuration, epoch.Options{
			EpochDuration: cfg.EpochDuration,
			NullClass:     cfg.NullClass,
		})
	case "ira":
		result, scoreErr = ira.ScoreEvents(ref, hyp, fileDuration, ira.Options{
			EpochDuration: cfg.EpochDuration,
			NullClass:     cfg.NullClass,
		})
	case "all":
		result, scoreErr = scoreAll(ref, hyp, cfg)
	default:
		return fmt.Errorf("unknown algorithm %q: expected taes, overlap, dp, epoch, ira, or all", algo)
	}

	if scoreErr != nil {
		logrus.WithError(scoreErr).Error("scoring failed")
		return scoreErr
	}

	return emitJSON(cmd.OutOrStdout(), result)
}

func scoreDP(ref, hyp []annotation.EventAnnotation, cfg ScoringConfig) (dpalign.Result, error) {
	return dpalign.Align(eventLabels(ref), eventLabels(hyp), dpalign.Options{
		PDel: cfg.PenaltyDel,
		PIns: cfg.PenaltyIns,
		PSub: cfg.PenaltySub,
	})
}

// allResult bundles every scorer's output for the "all" algorithm, keyed by
// canonical algorithm name.
type allResult struct {
	TAES    taes.Result     `json:"taes"`
	Overlap overlap.Result  `json:"overlap"`
	DP      dpalign.Result  `json:"dp"`
	Epoch   epoch.Result    `json:"epoch"`
	IRA     ira.Result      `json:"ira"`
	Summary metrics.Summary `json:"summary"`
}

func scoreAll(ref, hyp []annotation.EventAnnotation, cfg ScoringConfig) (allResult, error) {
	taesRes := taes.Score(ref, hyp, taes.Options{TargetLabel: cfg.TargetLabel})

	dpRes, err := scoreDP(ref, hyp, cfg)
	if err != nil {
		return allResult{}, err
	}

	epochRes, err := epoch.Score(ref, hyp, fileDuration, epoch.Options{
		EpochDuration: cfg.EpochDuration,
		NullClass:     cfg.NullClass,
	})
	if err != nil {
		return allResult{}, err
	}

	iraRes, err := ira.ScoreEvents(ref, hyp, fileDuration, ira.Options{
		EpochDuration: cfg.EpochDuration,
		NullClass:     cfg.NullClass,
	})
	if err != nil {
		return allResult{}, err
	}

	counts := metrics.Counts{TP: taesRes.TP, FP: taesRes.FP, FN: taesRes.FN}
	summary := metrics.Summary{
		TP:          counts.TP,
		FP:          counts.FP,
		FN:          counts.FN,
		Sensitivity: metrics.Sensitivity(counts),
		Precision:   metrics.Precision(counts),
		F1:          metrics.F1(counts),
		// TAES counts are event-based, not epoch-sampled, so FA/24h uses scale=1.
		FAPer24h: metrics.FAPer24h(counts.FP, fileDuration, nil),
	}

	return allResult{
		TAES:    taesRes,
		Overlap: overlap.Score(ref, hyp),
		DP:      dpRes,
		Epoch:   epochRes,
		IRA:     iraRes,
		Summary: summary,
	}, nil
}

// eventLabels extracts the sorted label sequence from a slice of events,
// the only view the dp alignment scorer needs.
func eventLabels(events []annotation.EventAnnotation) []string {
	labels := make([]string, len(events))
	for i, e := range events {
		labels[i] = e.Label
	}
	return labels
}

func emitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
