// Package main runs the confetti loop without a window and prints a summary.
//
// Usage:
//
//	go run ./cmd/confettisim [flags]
//
// Flags:
//
//	--config <file>   Effect YAML on disk (default: built-in effect)
//	--count <n>       Override piece count
//	--fps <n>         Simulated frame rate (default 60)
//	--seed <n>        Random seed (default 1)
//	--verbose         Print loop logs
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/spf13/cobra"
)

var (
	configPath string
	countFlag  int
	fpsFlag    int
	seedFlag   int64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "confettisim",
	Short: "Run the confetti loop headless and summarize the run",
	Long: `confettisim activates one confetti run against a manual clock,
pumps frames until the run times out, and prints what happened.`,
	SilenceUsage: true,
	RunE:         runSim,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "effect YAML file (default: built-in effect)")
	rootCmd.Flags().IntVar(&countFlag, "count", 0, "override piece count")
	rootCmd.Flags().IntVar(&fpsFlag, "fps", 60, "simulated frames per second")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 1, "random seed")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "print loop logs")
}

func loadEffect(path string, count int) (*particle.Effect, error) {
	effect := particle.DefaultEffect()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read effect: %w", err)
		}
		if effect, err = particle.ParseEffect(data); err != nil {
			return nil, err
		}
	}
	if count > 0 {
		effect.Count = count
	}
	return effect, effect.Validate()
}

func runSim(cmd *cobra.Command, args []string) error {
	if !verbose {
		log.SetOutput(io.Discard)
	}
	effect, err := loadEffect(configPath, countFlag)
	if err != nil {
		return err
	}
	report, err := Run(Options{Effect: effect, FPS: fpsFlag, Seed: seedFlag})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderReport(report, isTerminal(out)))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
