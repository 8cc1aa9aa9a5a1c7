package waybar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// moduleSnippet is the Waybar config fragment for the custom/pomodoro
// module. %s is replaced with the pomobar binary path.
const moduleSnippet = `// pomobar waybar module — auto-generated, do not edit manually
// Merge this into your waybar config (~/.config/waybar/config.jsonc) and
// add "custom/pomodoro" to one of the module arrays.
"custom/pomodoro": {
    "exec": "%s status",
    "return-type": "json",
    "interval": 1,
    "on-click": "%s toggle",
    "on-click-right": "%s cycle",
    "on-click-middle": "%s stop"
}
`

// StyleSnippet is a starter CSS fragment covering every payload class.
const StyleSnippet = `/* pomobar starter styles — auto-generated, edit freely */
#custom-pomodoro.work     { color: #f38ba8; }
#custom-pomodoro.break    { color: #a6e3a1; }
#custom-pomodoro.paused   { color: #f9e2af; }
#custom-pomodoro.finished { color: #89b4fa; }
#custom-pomodoro.stopped  { color: #6c7086; }
#custom-pomodoro.error    { color: #fab387; }
`

// ModuleSnippet renders the config fragment for the given binary path.
func ModuleSnippet(binPath string) string {
	return strings.ReplaceAll(moduleSnippet, "%s", binPath)
}

// snippetDir returns the directory the snippets are written to.
func snippetDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pomobar"), nil
}

// Install writes the module and style snippets and prints the include
// instructions the user needs to apply to their waybar config.
func Install(binPath string) error {
	dir, err := snippetDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	modulePath := filepath.Join(dir, "waybar-module.jsonc")
	stylePath := filepath.Join(dir, "waybar-style.css")

	if err := os.WriteFile(modulePath, []byte(ModuleSnippet(binPath)), 0o644); err != nil {
		return fmt.Errorf("writing module snippet: %w", err)
	}
	if err := os.WriteFile(stylePath, []byte(StyleSnippet), 0o644); err != nil {
		return fmt.Errorf("writing style snippet: %w", err)
	}

	fmt.Printf("\n  ✓ Module snippet written to %s\n", modulePath)
	fmt.Printf("  ✓ Style snippet written to %s\n", stylePath)
	fmt.Println("\n  Merge the module block into ~/.config/waybar/config.jsonc,")
	fmt.Println("  add \"custom/pomodoro\" to a modules array, and import the CSS")
	fmt.Println("  from ~/.config/waybar/style.css:")
	fmt.Printf("    @import \"%s\";\n\n", stylePath)
	return nil
}
