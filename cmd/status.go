package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/timer"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current payload without changing anything",
	Long: `Status applies no command, but still runs the completion check:
a running timer whose end has passed flips to finished. This is the
invocation Waybar polls every second.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimer(cmd, timer.CommandNone)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
