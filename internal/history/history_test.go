package history_test

import (
	"os"
	"testing"
	"time"

	"github.com/fakeyudi/pomobar/internal/history"
)

func TestReadAllMissingFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	entries, err := history.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty history, got %d entries", len(entries))
	}
}

func TestAppendReadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	first := time.Date(2025, 3, 14, 9, 25, 0, 0, time.UTC)
	second := first.Add(30 * time.Minute)

	if err := history.Append("work", first); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := history.Append("short_break", second); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := history.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].SessionType != "work" || !entries[0].FinishedAt.Equal(first) {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].SessionType != "short_break" {
		t.Errorf("second entry = %+v", entries[1])
	}
	if entries[0].ID == "" || entries[0].ID == entries[1].ID {
		t.Errorf("entry IDs not unique: %q, %q", entries[0].ID, entries[1].ID)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := history.Append("work", base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := history.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].FinishedAt.After(entries[i-1].FinishedAt) {
			t.Errorf("entries not newest-first: %v before %v",
				entries[i-1].FinishedAt, entries[i].FinishedAt)
		}
	}
}

// A malformed line (a crashed write, a hand edit) must not poison the rest
// of the file.
func TestReadAllSkipsMalformedLines(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	when := time.Date(2025, 3, 14, 9, 25, 0, 0, time.UTC)
	if err := history.Append("work", when); err != nil {
		t.Fatalf("Append: %v", err)
	}

	path, err := history.Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("{garbage\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	if err := history.Append("long_break", when.Add(time.Hour)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := history.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (garbage line skipped)", len(entries))
	}
}
