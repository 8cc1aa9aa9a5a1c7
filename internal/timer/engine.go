package timer

import "time"

// Command is the single external input applied on one invocation.
type Command int

const (
	// CommandNone just re-evaluates the clock (the "status" invocation).
	CommandNone Command = iota
	// CommandToggle pauses a running timer or resumes a paused one.
	CommandToggle
	// CommandCycle advances: start work when stopped, start the next phase
	// when finished, abort when running or paused.
	CommandCycle
	// CommandStop resets to the default stopped record.
	CommandStop
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "status"
	case CommandToggle:
		return "toggle"
	case CommandCycle:
		return "cycle"
	case CommandStop:
		return "stop"
	}
	return "unknown"
}

// Apply runs one step of the state machine: the completion check, then the
// command. It is a pure function of its inputs; the caller supplies the
// clock so transitions are deterministic under test.
func Apply(rec Record, cmd Command, now time.Time) Record {
	// A running timer whose end has passed becomes Finished before any
	// command is considered. This is the implicit "tick" a polling status
	// bar performs on every render.
	if rec.RunState == Running && rec.EndTime != nil && !now.Before(*rec.EndTime) {
		rec.RunState = Finished
		rec.EndTime = nil
		rec.RemainingSecs = 0
	}

	switch cmd {
	case CommandStop:
		return DefaultRecord()

	case CommandToggle:
		switch rec.RunState {
		case Running:
			if rec.EndTime == nil {
				// Hand-built record violating the Running invariant;
				// nothing sane to pause, leave it alone.
				return rec
			}
			// Pause: remaining time becomes authoritative.
			rec.RemainingSecs = rec.EndTime.Sub(now).Seconds()
			rec.RunState = Paused
			rec.EndTime = nil
		case Paused:
			// Resume: end time becomes authoritative again.
			// RemainingSecs stays behind as a stale cache until the
			// next pause.
			end := now.Add(time.Duration(rec.RemainingSecs * float64(time.Second)))
			rec.RunState = Running
			rec.EndTime = &end
		}
		// Toggle while Stopped or Finished is silently ignored: the
		// status bar only offers pause/resume while a timer is active.
		return rec

	case CommandCycle:
		switch rec.RunState {
		case Running, Paused:
			// Abort, not skip: cycling an active timer resets it.
			return DefaultRecord()
		case Stopped:
			return startSession(Work, 0, now)
		case Finished:
			next, count := NextSession(rec)
			return startSession(next, count, now)
		}
		return rec
	}

	return rec
}

// NextSession returns the session type that follows a finished record and
// the work-session count the new record should carry. Work sessions rotate
// through short breaks until SessionsPerCycle of them have completed, which
// earns a long break; a long break resets the count.
func NextSession(rec Record) (SessionType, int) {
	switch rec.SessionType {
	case Work:
		next := rec.WorkSessionsCompleted + 1
		if next%SessionsPerCycle == 0 {
			return LongBreak, next
		}
		return ShortBreak, next
	case LongBreak:
		return Work, 0
	default: // ShortBreak
		return Work, rec.WorkSessionsCompleted
	}
}

// startSession builds a fresh running record of the given type.
func startSession(session SessionType, workSessions int, now time.Time) Record {
	d := session.Duration()
	end := now.Add(d)
	return Record{
		RunState:              Running,
		SessionType:           session,
		EndTime:               &end,
		RemainingSecs:         d.Seconds(),
		WorkSessionsCompleted: workSessions,
	}
}
