package timer

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is the single persisted entity: the entire state of the timer
// between invocations.
//
// Exactly one of EndTime and RemainingSecs is authoritative at a time:
// while Running, EndTime is set and is the source of truth; while Paused,
// EndTime is nil and RemainingSecs is the source of truth; while Stopped or
// Finished neither drives a countdown. Every transition goes through Apply,
// which maintains this.
type Record struct {
	RunState              RunState
	SessionType           SessionType
	EndTime               *time.Time
	RemainingSecs         float64
	WorkSessionsCompleted int
}

// DefaultRecord returns the canonical stopped record, used on first run,
// after a stop, and as the fallback for unreadable state.
func DefaultRecord() Record {
	return Record{
		RunState:    Stopped,
		SessionType: Work,
	}
}

// recordJSON is the wire shape of a Record. EndTime travels as an RFC 3339
// string or null so the file stays readable and editable by hand.
type recordJSON struct {
	RunState              string  `json:"run_state"`
	SessionType           string  `json:"session_type"`
	EndTime               *string `json:"end_time"`
	RemainingSecs         float64 `json:"remaining_secs"`
	WorkSessionsCompleted int     `json:"work_sessions_completed"`
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		RunState:              string(r.RunState),
		SessionType:           string(r.SessionType),
		RemainingSecs:         r.RemainingSecs,
		WorkSessionsCompleted: r.WorkSessionsCompleted,
	}
	if r.EndTime != nil {
		s := r.EndTime.Format(time.RFC3339Nano)
		out.EndTime = &s
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Any schema violation (unknown
// enum tag, malformed timestamp, negative counter) is reported as an error;
// the Store maps that to the default record rather than failing the run.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	state, err := ParseRunState(raw.RunState)
	if err != nil {
		return err
	}
	session, err := ParseSessionType(raw.SessionType)
	if err != nil {
		return err
	}
	var end *time.Time
	if raw.EndTime != nil {
		t, err := time.Parse(time.RFC3339Nano, *raw.EndTime)
		if err != nil {
			return fmt.Errorf("malformed end_time: %w", err)
		}
		end = &t
	}
	if raw.RemainingSecs < 0 {
		return fmt.Errorf("negative remaining_secs %v", raw.RemainingSecs)
	}
	if raw.WorkSessionsCompleted < 0 {
		return fmt.Errorf("negative work_sessions_completed %d", raw.WorkSessionsCompleted)
	}
	if state == Running && end == nil {
		return fmt.Errorf("running record has no end_time")
	}

	r.RunState = state
	r.SessionType = session
	r.EndTime = end
	r.RemainingSecs = raw.RemainingSecs
	r.WorkSessionsCompleted = raw.WorkSessionsCompleted
	return nil
}
