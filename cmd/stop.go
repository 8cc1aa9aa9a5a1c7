package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/timer"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and reset the cycle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimer(cmd, timer.CommandStop)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
