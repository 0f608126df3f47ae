// Package cli wires the scoring packages behind a small Cobra command tree:
// a root command plus one subcommand per user-facing operation, flags bound
// in init(), logging via logrus, no business logic living in the command
// layer itself.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nedcscore",
	Short: "Score EEG annotation hypotheses against a reference",
}

// Execute runs the root command, exiting with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("nedcscore failed")
		os.Exit(1)
	}
}
