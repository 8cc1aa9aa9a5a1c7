package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/waybar"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write the Waybar module and style snippets (re-run anytime)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup()
	},
}

// runSetup asks for the binary path and writes the Waybar snippets.
func runSetup() error {
	r := bufio.NewReader(os.Stdin)

	ask := func(prompt, defaultVal string) (string, error) {
		if defaultVal != "" {
			fmt.Printf("%s [%s]: ", prompt, defaultVal)
		} else {
			fmt.Printf("%s: ", prompt)
		}
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return defaultVal, nil
		}
		return line, nil
	}

	defaultBin := "pomobar"
	if exe, err := os.Executable(); err == nil {
		defaultBin = exe
	}

	fmt.Println()
	fmt.Println("  Pomobar setup — generates the Waybar config snippets.")
	binPath, err := ask("  Binary path Waybar should invoke", defaultBin)
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	if err := waybar.Install(binPath); err != nil {
		return fmt.Errorf("writing snippets: %w", err)
	}
	fmt.Println("  Setup complete. Restart Waybar to pick up the module.")
	return nil
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
