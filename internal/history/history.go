// Package history keeps an append-only record of completed sessions so
// the user can see how their day went. Writes are best-effort: losing a
// history line is never worth failing an invocation over.
package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry is one naturally completed session.
type Entry struct {
	ID          string    `json:"id"`
	SessionType string    `json:"session_type"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Path returns the history file location.
// Format: one JSON object per line at $XDG_CACHE_HOME/pomobar/history.jsonl
func Path() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "pomobar", "history.jsonl"), nil
}

// Append records a completed session of the given type.
func Append(sessionType string, finishedAt time.Time) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	entry := Entry{
		ID:          uuid.New().String(),
		SessionType: sessionType,
		FinishedAt:  finishedAt,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ReadAll returns every entry in the history file in file order.
// Malformed lines are skipped rather than failing the read; a missing
// file is an empty history, not an error.
func ReadAll() ([]Entry, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no history yet — not an error
		}
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

// Recent returns up to n entries, newest first.
func Recent(n int) ([]Entry, error) {
	entries, err := ReadAll()
	if err != nil {
		return nil, err
	}
	// Reverse in place; appends are chronological.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
