// Package logging provides the best-effort diagnostic log. The log is an
// append-only line file in the cache directory; any failure to open or
// write it downgrades to a discard logger, because diagnostics must never
// break the payload the status bar is waiting for.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the process-wide logger. It is always safe to use: before
// Initialize, and after a failed Initialize, it discards everything.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Initialize points Logger at the diagnostic log file,
// $XDG_CACHE_HOME/pomobar/pomobar.log. It never returns an error; callers
// log through the package regardless of whether a file is behind it.
func Initialize() {
	path, err := logPath()
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	// The file handle is owned by the process and released at exit; each
	// invocation is short-lived, so there is nothing to close early.
	Logger = slog.New(slog.NewTextHandler(f, nil))
}

func logPath() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "pomobar", "pomobar.log"), nil
}
