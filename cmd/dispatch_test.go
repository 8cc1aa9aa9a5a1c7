package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/pomobar/internal/history"
	"github.com/fakeyudi/pomobar/internal/timer"
)

// executeCommand runs a cobra command with the given args and captures combined output.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	_, err = root.ExecuteC()
	return buf.String(), err
}

// payload is the decoded stdout JSON line.
type payload struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// runPayload executes a timer command and decodes the emitted payload.
func runPayload(t *testing.T, args ...string) payload {
	t.Helper()
	out, err := executeCommand(rootCmd, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	var p payload
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &p); err != nil {
		t.Fatalf("command %v emitted invalid payload %q: %v", args, out, err)
	}
	return p
}

func TestStatusOnFreshStateIsStopped(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	p := runPayload(t, "status")
	if p.Class != "stopped" {
		t.Errorf("class = %q, want stopped", p.Class)
	}
	if p.Text != "🍅" {
		t.Errorf("text = %q, want the bare tomato", p.Text)
	}
}

func TestBareInvocationEqualsStatus(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	p := runPayload(t)
	if p.Class != "stopped" {
		t.Errorf("class = %q, want stopped", p.Class)
	}
}

func TestCycleStartsWorkSession(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	p := runPayload(t, "cycle")
	if p.Class != "work" {
		t.Errorf("class = %q, want work", p.Class)
	}
	if p.Text != "🍅 25:00" {
		t.Errorf("text = %q, want 🍅 25:00", p.Text)
	}

	// The new record must have been persisted for the next invocation.
	store, err := timer.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.RunState != timer.Running || rec.SessionType != timer.Work {
		t.Errorf("persisted %v/%v, want running/work", rec.RunState, rec.SessionType)
	}
}

func TestToggleWhileStoppedIsSilentNoop(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	p := runPayload(t, "toggle")
	if p.Class != "stopped" {
		t.Errorf("class = %q, want stopped", p.Class)
	}
}

func TestTogglePausesAndResumes(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	runPayload(t, "cycle")

	p := runPayload(t, "toggle")
	if p.Class != "paused" {
		t.Fatalf("class after pause = %q, want paused", p.Class)
	}
	if !strings.HasPrefix(p.Text, "⏸ ") {
		t.Errorf("text = %q, want pause glyph prefix", p.Text)
	}

	p = runPayload(t, "toggle")
	if p.Class != "work" {
		t.Errorf("class after resume = %q, want work", p.Class)
	}
}

func TestStopResetsEverything(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	runPayload(t, "cycle")
	p := runPayload(t, "stop")
	if p.Class != "stopped" {
		t.Errorf("class = %q, want stopped", p.Class)
	}

	store, err := timer.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec != timer.DefaultRecord() {
		t.Errorf("persisted %+v, want default record", rec)
	}
}

func TestExpiredTimerFinishesAndRecordsHistory(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	store, err := timer.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	end := time.Now().Add(-time.Minute)
	if err := store.Save(timer.Record{
		RunState:    timer.Running,
		SessionType: timer.Work,
		EndTime:     &end,
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p := runPayload(t, "status")
	if p.Class != "finished" {
		t.Fatalf("class = %q, want finished", p.Class)
	}
	if !strings.Contains(p.Tooltip, "Work finished!") {
		t.Errorf("tooltip = %q", p.Tooltip)
	}

	entries, err := history.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 1 || entries[0].SessionType != "work" {
		t.Errorf("history = %+v, want one work entry", entries)
	}

	// Polling again must not record the completion twice.
	runPayload(t, "status")
	entries, err = history.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("history grew to %d entries on a repeat poll", len(entries))
	}
}

// A completion that coincides with a command still earns its history line:
// cycle and stop act on the Finished state and move past it, so the final
// state alone never shows that a session ran out.
func TestCompletionRecordedThroughAnyCommand(t *testing.T) {
	tests := []struct {
		command   string
		wantClass string
	}{
		{"status", "finished"},
		{"cycle", "break"}, // the finished work session's short break starts
		{"stop", "stopped"},
		{"toggle", "finished"}, // toggle on Finished is a no-op
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", t.TempDir())

			store, err := timer.NewStore()
			if err != nil {
				t.Fatalf("NewStore: %v", err)
			}
			end := time.Now().Add(-time.Minute)
			if err := store.Save(timer.Record{
				RunState:    timer.Running,
				SessionType: timer.Work,
				EndTime:     &end,
			}); err != nil {
				t.Fatalf("Save: %v", err)
			}

			p := runPayload(t, tt.command)
			if p.Class != tt.wantClass {
				t.Errorf("class = %q, want %q", p.Class, tt.wantClass)
			}

			entries, err := history.ReadAll()
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if len(entries) != 1 {
				t.Fatalf("history has %d entries, want 1 (the completed work session)", len(entries))
			}
			if entries[0].SessionType != "work" {
				t.Errorf("history credits %q, want the session that completed", entries[0].SessionType)
			}
		})
	}
}

// Corrupt state is replaced by the default record; the widget still gets a
// normal payload, never an error.
func TestCorruptStateFallsBackToDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	store, err := timer.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Save(timer.DefaultRecord()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	path, err := timer.StatePath()
	if err != nil {
		t.Fatalf("StatePath: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"run_state":"broken"}`), 0o644); err != nil {
		t.Fatalf("corrupting state: %v", err)
	}

	p := runPayload(t, "status")
	if p.Class != "stopped" {
		t.Errorf("class = %q, want stopped", p.Class)
	}
}

// Unknown command tokens are a caller mistake: usage error, nonzero exit.
func TestUnknownCommandIsUsageError(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	out, err := executeCommand(rootCmd, "pomodoro")
	if err == nil {
		t.Fatalf("expected a usage error, got output: %q", out)
	}
	if !strings.Contains(out, "unknown command") {
		t.Errorf("output = %q, want an unknown-command message", out)
	}
}

func TestHistoryCommandListsSessions(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	when := time.Date(2025, 3, 14, 9, 25, 0, 0, time.UTC)
	if err := history.Append("work", when); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := history.Append("short_break", when.Add(30*time.Minute)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	out, err := executeCommand(rootCmd, "history", "--limit", "1")
	if err != nil {
		t.Fatalf("history command: %v", err)
	}
	if !strings.Contains(out, "Short break") {
		t.Errorf("output = %q, want the newest entry only", out)
	}
	if strings.Contains(out, "Work") {
		t.Errorf("output = %q, limit 1 should hide the older entry", out)
	}
}
