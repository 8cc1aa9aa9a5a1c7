package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/history"
	"github.com/fakeyudi/pomobar/internal/timer"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently completed sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := history.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			cmd.Println("no completed sessions yet")
			return nil
		}
		for _, e := range entries {
			name := e.SessionType
			if session, err := timer.ParseSessionType(e.SessionType); err == nil {
				name = session.DisplayName()
			}
			cmd.Printf("%s  %s\n", e.FinishedAt.Local().Format("2006-01-02 15:04"), name)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
