package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/timer"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Start the next session, or abort the current one",
	Long: `Cycle advances the timer: from stopped it starts a work session,
from finished it starts the phase that follows, and while a timer is
running or paused it aborts back to stopped (it does not skip ahead).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimer(cmd, timer.CommandCycle)
	},
}

func init() {
	rootCmd.AddCommand(cycleCmd)
}
