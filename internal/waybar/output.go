// Package waybar renders timer state into the JSON payload a Waybar
// custom module consumes, and generates the config snippets that wire the
// module into Waybar.
package waybar

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fakeyudi/pomobar/internal/timer"
)

// Output is the single payload printed per invocation. Class is consumed
// by Waybar CSS: one of stopped, finished, paused, work, break, error.
type Output struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// Marshal returns the payload as a single JSON line.
func (o Output) Marshal() ([]byte, error) {
	return json.Marshal(o)
}

const (
	glyphWork     = "🍅"
	glyphBreak    = "☕"
	glyphPaused   = "⏸"
	glyphFinished = "🎉"
	glyphError    = "⚠"
)

// Render maps a record to its display payload. Read-only: it must be
// called after timer.Apply has already run the completion check, so a
// Running record seen here still has time left (the clamp below only
// covers the sub-second gap before the next poll).
func Render(rec timer.Record, now time.Time) Output {
	switch rec.RunState {
	case timer.Finished:
		next, _ := timer.NextSession(rec)
		return Output{
			Text: glyphFinished + " 00:00",
			Tooltip: fmt.Sprintf("%s finished!\nRight-click to start %s.",
				rec.SessionType.DisplayName(), next.DisplayName()),
			Class: "finished",
		}

	case timer.Paused:
		return Output{
			Text: glyphPaused + " " + clock(rec.RemainingSecs),
			Tooltip: fmt.Sprintf("Paused: %s\nClick to resume.",
				rec.SessionType.DisplayName()),
			Class: "paused",
		}

	case timer.Running:
		remaining := rec.EndTime.Sub(now).Seconds()
		if remaining < 0 {
			remaining = 0
		}
		glyph, class := glyphBreak, "break"
		if rec.SessionType == timer.Work {
			glyph, class = glyphWork, "work"
		}
		return Output{
			Text: glyph + " " + clock(remaining),
			Tooltip: fmt.Sprintf("%s\nClick to pause.",
				rec.SessionType.DisplayName()),
			Class: class,
		}
	}

	// Stopped, and anything unexpected, shows the idle tomato.
	return Output{
		Text:    glyphWork,
		Tooltip: "Pomodoro stopped\nRight-click to start work.",
		Class:   "stopped",
	}
}

// ErrorOutput builds the payload emitted when an invocation fails: the
// widget must always receive valid JSON, never an empty stdout.
func ErrorOutput(msg string) Output {
	return Output{
		Text:    glyphError,
		Tooltip: "Pomodoro error: " + msg,
		Class:   "error",
	}
}

// clock formats whole seconds as MM:SS, both fields zero-padded.
func clock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
