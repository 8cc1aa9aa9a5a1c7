// Package cmd implements the pomobar command-line surface.
//
// Error policy: an unrecognized command is a caller/configuration mistake
// and is reported on stderr with exit code 1 (cobra's usage error path).
// Every other failure during command processing is converted into an error
// payload on stdout with exit code 0, so the status bar widget always
// receives valid JSON and never crashes over a transient problem.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/logging"
	"github.com/fakeyudi/pomobar/internal/timer"
)

var rootCmd = &cobra.Command{
	Use:   "pomobar",
	Short: "Pomodoro countdown timer for Waybar",
	Long: `Pomobar is a pomodoro timer driven by discrete commands, one per
invocation: it loads the persisted timer state, applies at most one
command, saves the result, and prints a single Waybar JSON payload.
Configure Waybar to run it every second (see 'pomobar setup').`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Initialize()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare "pomobar" behaves like "pomobar status".
		return runTimer(cmd, timer.CommandNone)
	},
}

// Execute runs the root command. Exits with code 1 on usage errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
