package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/timer"
	"github.com/fakeyudi/pomobar/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live preview of the widget (for tuning Waybar styles)",
	Long: `Watch shows the payload a Waybar poll would render, updating every
second and reloading whenever another invocation writes the state file.
Key bindings drive the same commands as the CLI: t toggle, c cycle,
s stop, q quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("watch needs an interactive terminal")
		}

		store, err := timer.NewStore()
		if err != nil {
			return err
		}
		m, err := tui.NewWatch(store)
		if err != nil {
			return err
		}

		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
