package repl

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistory_Persist(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), BaseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() missing file: %v", err)
	}

	for _, e := range []HistoryEntry{
		{"Colors.red", modeEval},
		{"list", modeCtrl},
		{"Colors.red", modeEval}, // moved to the end
		{"Colors.red", modeEval}, // repeated last entry is dropped
		{"  ", modeEval},         // blank
		{"list", modeEval},       // same line, other mode
	} {
		if _, err := h.WriteWithMode(e.Line, e.Mode); err != nil {
			t.Fatalf("WriteWithMode(%q): %v", e.Line, err)
		}
	}

	want := []HistoryEntry{
		{"list", modeCtrl},
		{"Colors.red", modeEval},
		{"list", modeEval},
	}

	if got := h.Entries(); !slices.Equal(got, want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), "C:list\nE:Colors.red\nE:list\n"; got != want {
		t.Errorf("history file = %q, want %q", got, want)
	}

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatal(err)
	}

	if got := loaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("loaded Entries() = %v, want %v", got, want)
	}
}

func TestHistory_LoadUnprefixed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), BaseHistory)
	if err := os.WriteFile(path, []byte("Colors.red\n\nC:quit\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	want := []HistoryEntry{{"Colors.red", modeEval}, {"quit", modeCtrl}}
	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestHistory_GetEntry(t *testing.T) {
	t.Parallel()

	h := NewHistory("")
	if _, err := h.WriteWithMode("Colors.blue", modeEval); err != nil {
		t.Fatal(err)
	}

	entry, err := h.GetEntry(0)
	if err != nil || entry.Line != "Colors.blue" {
		t.Errorf("GetEntry(0) = (%v, %v), want Colors.blue", entry, err)
	}

	for _, i := range []int{-1, 1} {
		if _, err := h.GetEntry(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetEntry(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}
}
