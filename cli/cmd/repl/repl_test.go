package repl

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/aconst/log"
)

func press(m model, key tea.KeyType) model {
	m, _ = m.handleKey(tea.KeyMsg{Type: key})

	return m
}

func TestModel_TabCompletion(t *testing.T) {
	t.Parallel()

	m := typed(t, "Colors.gr")
	m = press(m, tea.KeyTab)

	if got := m.input.Value(); got != "Colors.green" {
		t.Fatalf("sole candidate: input = %q, want %q", got, "Colors.green")
	}

	m = typed(t, "Colors.")

	for _, step := range []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyTab, "Colors.red"},
		{tea.KeyTab, "Colors.yellow"},
		{tea.KeyShiftTab, "Colors.red"},
		{tea.KeyShiftTab, "Colors.white"},
		{tea.KeyEsc, "Colors."},
	} {
		m = press(m, step.key)

		if got := m.input.Value(); got != step.want {
			t.Fatalf("after %v: input = %q, want %q", step.key, got, step.want)
		}
	}

	if m.mode != modeEval {
		t.Error("Esc while cycling must not toggle the mode")
	}
}

func TestModel_Evaluate(t *testing.T) {
	t.Parallel()

	m := typed(t, "")

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{`nameOf("Colors", 2)`, "green", true},
		{"Colors.blue + Colors.green", "5", true},
		{`has("Shapes", "_doc")`, "false", true},
		{`Shapes.circle`, "round", true},
		{"Nope.x", "error: ", false},
	}

	for _, tt := range tests {
		got, ok := m.evaluate(tt.input)
		if ok != tt.ok || !strings.HasPrefix(got, tt.want) {
			t.Errorf("evaluate(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModel_ExecuteRecordsHistory(t *testing.T) {
	t.Parallel()

	m := typed(t, "Colors.blue")

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter returned no command")
	}

	if m.input.Value() != "" {
		t.Errorf("input after Enter = %q, want empty", m.input.Value())
	}

	entry, err := m.history.GetEntry(0)
	if err != nil || entry != (HistoryEntry{"Colors.blue", modeEval}) {
		t.Errorf("history[0] = (%v, %v), want eval Colors.blue", entry, err)
	}

	if m.historyIdx != m.history.Len() {
		t.Errorf("historyIdx = %d, want %d", m.historyIdx, m.history.Len())
	}
}

func TestModel_CtrlCommands(t *testing.T) {
	t.Parallel()

	m := press(typed(t, ""), tea.KeyEsc)
	if m.mode != modeCtrl {
		t.Fatal("Esc did not switch to command mode")
	}

	m.input.SetValue("quit")

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.quitting || cmd == nil {
		t.Errorf("quit: quitting = %v, cmd = %v", m.quitting, cmd)
	}

	if m.View() != "" {
		t.Errorf("View() after quit = %q, want empty", m.View())
	}

	list := typed(t, "").listNamespaces()
	for _, want := range []string{"Colors", "{ 5 constants }", "Shapes", "_doc"} {
		if !strings.Contains(list, want) {
			t.Errorf("listNamespaces() = %q, missing %q", list, want)
		}
	}
}

func TestModel_HistoryNavigation(t *testing.T) {
	t.Parallel()

	m := typed(t, "")
	for _, e := range []HistoryEntry{
		{"Colors.red", modeEval},
		{"list", modeCtrl},
		{"Colors.blue", modeEval},
	} {
		if _, err := m.history.WriteWithMode(e.Line, e.Mode); err != nil {
			t.Fatal(err)
		}
	}

	m.historyIdx = m.history.Len()

	steps := []struct {
		key  tea.KeyType
		want string
		mode inputMode
	}{
		{tea.KeyUp, "Colors.blue", modeEval},
		{tea.KeyUp, "list", modeCtrl},
		{tea.KeyUp, "Colors.red", modeEval},
		{tea.KeyUp, "Colors.red", modeEval}, // oldest stays
		{tea.KeyShiftDown, "Colors.blue", modeEval},
		{tea.KeyDown, "", modeEval},
	}

	for i, step := range steps {
		m = press(m, step.key)

		if got := m.input.Value(); got != step.want || m.mode != step.mode {
			t.Fatalf("step %d: input = %q mode %d, want %q mode %d",
				i, got, m.mode, step.want, step.mode)
		}
	}

	if !strings.Contains(press(m, tea.KeyUp).View(), "3/3") {
		t.Error("View() does not show the history position")
	}
}

func TestModel_SignatureHint(t *testing.T) {
	t.Parallel()

	m := typed(t, `nameOf("Colors", `)

	if got := m.View(); !strings.Contains(got, "nameOf(namespace, value)") {
		t.Errorf("View() = %q, want the nameOf signature", got)
	}

	if got := typed(t, "").View(); !strings.Contains(got, "Type an expression") {
		t.Errorf("View() = %q, want the usage hint", got)
	}
}

func TestRun_NoManifest(t *testing.T) {
	t.Parallel()

	if err := Run(t.Context(), nil, "", log.Make(io.Discard)); err == nil {
		t.Error("Run(nil manifest) succeeded")
	}
}
