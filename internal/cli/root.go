// Package cli implements the Striker command-line interface using
// Cobra. Each subcommand maps to one progression capability (status,
// complete, workout, skills, programs, reset, serve).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "striker",
	Short: "Striker — personal training progression",
	Long: `Striker tracks your training progression locally:
XP and levels, day streaks, weekly sessions, skill mastery paths,
and a recommended daily workout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
