// Idiomatic entrypoint for the Cobra CLI; delegates to the root command in
// internal/cli/root.go.
package main

import "github.com/nedc-bench/scoring-core/internal/cli"

func main() {
	cli.Execute()
}
