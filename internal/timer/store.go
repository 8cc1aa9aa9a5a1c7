package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists a Record to disk between invocations.
//
// The state file is deliberately not protected against concurrent
// invocations racing each other: each invocation is an independent
// read-modify-write, and the host status bar is expected to be the only
// caller. Save itself is atomic (temp file + rename), so a reader never
// observes a half-written record, but two overlapping invocations can
// still lose one of their updates.
type Store interface {
	// Load returns the persisted record, or the default record when the
	// file is missing. A corrupt or schema-invalid file also yields the
	// default record; the returned error then describes the corruption
	// purely for logging. The Record is always usable.
	Load() (Record, error)
	Save(Record) error
}

// diskStore is the concrete Store that writes to the XDG cache directory.
type diskStore struct {
	path string // full path to state.json
}

// NewStore returns a Store backed by the XDG cache directory.
// Path: $XDG_CACHE_HOME/pomobar/state.json or ~/.cache/pomobar/state.json
func NewStore() (Store, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolving cache directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &diskStore{path: filepath.Join(dir, "state.json")}, nil
}

// cacheDir returns the pomobar-specific XDG cache directory.
func cacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "pomobar"), nil
}

// Load reads and decodes the state file. It never fails the invocation: a
// missing file is a fresh start and anything undecodable falls back to the
// default record with an advisory error.
func (d *diskStore) Load() (Record, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultRecord(), nil
		}
		return DefaultRecord(), fmt.Errorf("failed to read timer state: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return DefaultRecord(), fmt.Errorf("failed to parse timer state: %w", err)
	}
	return rec, nil
}

// Save marshals rec to JSON and writes it atomically via a temp file +
// os.Rename.
func (d *diskStore) Save(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to persist timer state: %w", err)
	}

	// Write to a temp file in the same directory so os.Rename is atomic.
	tmp, err := os.CreateTemp(filepath.Dir(d.path), "state-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist timer state: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error path.
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist timer state: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist timer state: %w", err)
	}

	if err = os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("failed to persist timer state: %w", err)
	}
	return nil
}

// StatePath returns the full path of the on-disk state file, used by the
// watch TUI to follow external writes.
func StatePath() (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}
