// Package timer implements the pomodoro countdown state machine and its
// on-disk persistence. The transition logic is a pure function of the
// current record, the command, and the clock; all filesystem access lives
// in the Store so the engine can be tested without touching disk.
package timer

import (
	"fmt"
	"time"
)

// Session durations and the long-break cycle length are compiled in.
const (
	WorkMinutes       = 25
	ShortBreakMinutes = 5
	LongBreakMinutes  = 15
	SessionsPerCycle  = 4
)

// SessionType identifies which countdown phase a record belongs to.
type SessionType string

const (
	Work       SessionType = "work"
	ShortBreak SessionType = "short_break"
	LongBreak  SessionType = "long_break"
)

// ParseSessionType maps a persisted tag back to a SessionType.
func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(s) {
	case Work, ShortBreak, LongBreak:
		return SessionType(s), nil
	}
	return "", fmt.Errorf("unknown session type %q", s)
}

// Duration returns the configured length of a session of this type.
func (s SessionType) Duration() time.Duration {
	switch s {
	case Work:
		return WorkMinutes * time.Minute
	case ShortBreak:
		return ShortBreakMinutes * time.Minute
	case LongBreak:
		return LongBreakMinutes * time.Minute
	}
	return 0
}

// DisplayName returns the human-readable session name used in tooltips.
func (s SessionType) DisplayName() string {
	switch s {
	case Work:
		return "Work"
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	}
	return string(s)
}

// RunState describes whether the timer is counting down, halted,
// expired-but-unacknowledged, or inactive.
type RunState string

const (
	Stopped  RunState = "stopped"
	Running  RunState = "running"
	Paused   RunState = "paused"
	Finished RunState = "finished"
)

// ParseRunState maps a persisted tag back to a RunState.
func ParseRunState(s string) (RunState, error) {
	switch RunState(s) {
	case Stopped, Running, Paused, Finished:
		return RunState(s), nil
	}
	return "", fmt.Errorf("unknown run state %q", s)
}
