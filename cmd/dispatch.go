package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/history"
	"github.com/fakeyudi/pomobar/internal/logging"
	"github.com/fakeyudi/pomobar/internal/timer"
	"github.com/fakeyudi/pomobar/internal/waybar"
)

// runTimer is the shared dispatcher behind toggle, cycle, stop and status:
// load state, apply the command, record completions, render, save, print.
// It always emits exactly one payload and always returns nil — runtime
// failures become error payloads, never exit codes (see the package doc).
func runTimer(cmd *cobra.Command, command timer.Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("panic during command processing", "panic", r)
			emit(cmd, waybar.ErrorOutput(fmt.Sprint(r)))
			err = nil
		}
	}()

	now := time.Now()
	logging.Logger.Info("invocation started", "command", command.String())

	store, storeErr := timer.NewStore()
	if storeErr != nil {
		logging.Logger.Error("opening state store", "error", storeErr)
		return emit(cmd, waybar.ErrorOutput(storeErr.Error()))
	}

	rec, loadErr := store.Load()
	if loadErr != nil {
		// The default record already replaced whatever was unreadable;
		// the invocation continues from a clean slate.
		logging.Logger.Warn("state replaced with default", "error", loadErr)
	}
	logging.Logger.Info("loaded state",
		"run_state", rec.RunState, "session_type", rec.SessionType)

	// Detect natural completion before applying the command: a cycle or
	// stop carried by this invocation acts on the Finished state and moves
	// past it, so the final state alone cannot tell us a session ran out.
	completed := rec.RunState == timer.Running && rec.EndTime != nil && !now.Before(*rec.EndTime)

	next := timer.Apply(rec, command, now)
	logging.Logger.Info("applied command", "command", command.String(),
		"run_state", next.RunState, "session_type", next.SessionType)

	// A session that just ran out earns a history line.
	if completed {
		if histErr := history.Append(string(rec.SessionType), now); histErr != nil {
			logging.Logger.Warn("history append failed", "error", histErr)
		}
	}

	out := waybar.Render(next, now)

	if saveErr := store.Save(next); saveErr != nil {
		// The in-memory result is still presented; only the next
		// invocation sees stale state.
		logging.Logger.Error("state save failed", "error", saveErr)
	}

	return emit(cmd, out)
}

// emit prints one JSON payload line on the command's stdout.
func emit(cmd *cobra.Command, out waybar.Output) error {
	data, err := out.Marshal()
	if err != nil {
		// Three plain strings cannot fail to marshal, but the widget
		// still needs a payload if they somehow do.
		fmt.Fprintln(cmd.OutOrStdout(),
			`{"text":"⚠","tooltip":"Pomodoro error: render failed","class":"error"}`)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
