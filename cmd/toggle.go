package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/timer"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Pause a running timer or resume a paused one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimer(cmd, timer.CommandToggle)
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
