package repl

import (
	"io"
	"slices"
	"testing"

	"github.com/ardnew/aconst/lang"
	"github.com/ardnew/aconst/log"
)

const figures = `
module: github.com/acme/figures
namespaces:
  Colors:
    red: 0
    yellow: 1
    green: 2
    blue: 3
    white: 4
  Shapes:
    circle: round
    square: boxy
    _doc: shape descriptions
`

func parseFigures(t *testing.T) *lang.Manifest {
	t.Helper()

	m, err := lang.ParseString(t.Context(), figures)
	if err != nil {
		t.Fatal(err)
	}

	return m
}

// typed returns a model whose input holds s with the cursor at its end.
func typed(t *testing.T, s string) model {
	t.Helper()

	m := newModel(t.Context(), parseFigures(t), NewHistory(""), log.Make(io.Discard))
	m.input.SetValue(s)
	m.input.SetCursor(len(s))
	refreshMatches(&m, true)

	return m
}

func TestWordBounds_ExprOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"dot_separated", "Colors.gre", 10, "gre", 7, 10},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_paren", "nameOf(Co", 9, "Co", 7, 9},
		{"after_comma", "has(a, fo", 9, "fo", 7, 9},
		{"in_ternary", "x ? fo", 6, "fo", 4, 6},
		{"after_comparison", "a > fo", 6, "fo", 4, 6},
		{"after_quote", `has("Col`, 8, "Col", 5, 8},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a+b", 2, "b", 2, 3},
		{"cursor_past_end", "foo", 9, "foo", 0, 3},
		// Hyphens are part of names, not word boundaries.
		{"hyphenated", "log-pretty", 10, "log-pretty", 0, 10},
		{"hyphenated_after_dot", "config.log-pretty", 17, "log-pretty", 7, 17},
		{"hyphenated_partial", "config.log-pr", 13, "log-pr", 7, 13},
		// After a dot the word is empty, which lists every member.
		{"empty_after_dot", "Colors.", 7, "", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParentPath_WithOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wordStart int
		want      string
	}{
		{"top_level", "fo", 0, ""},
		{"namespace", "Colors.gr", 7, "Colors"},
		{"simple_chain", "bar.baz.", 8, "bar.baz"},
		{"after_operator", "x + Colors.", 11, "Colors"},
		{"after_paren", "(Colors.", 8, "Colors"},
		{"no_chain", "a + ", 4, ""},
		{"deep_chain", "a.b.c.", 6, "a.b.c"},
		{"after_equals", "x == a.b.", 9, "a.b"},
		{"after_call", "nameOf(", 7, ""},
		// Hyphens are part of names in the parent path.
		{"hyphenated_chain", "config.log-pretty.", 18, "config.log-pretty"},
		{"hyphenated_after_op", "x + config.log-pretty.", 22, "config.log-pretty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parentPath(tt.input, tt.wordStart)
			if got != tt.want {
				t.Errorf("parentPath(%q, %d) = %q, want %q",
					tt.input, tt.wordStart, got, tt.want)
			}
		})
	}
}

func TestChildCandidates(t *testing.T) {
	t.Parallel()

	m := parseFigures(t)

	top := childCandidates(m, "")
	for _, want := range []string{"Colors", "Shapes", "nameOf", "qualified", "has", "len", "upper"} {
		if !slices.Contains(top, want) {
			t.Errorf("top-level candidates missing %q", want)
		}
	}

	if got, want := childCandidates(m, "Colors"), []string{"red", "yellow", "green", "blue", "white"}; !slices.Equal(got, want) {
		t.Errorf("childCandidates(Colors) = %v, want %v", got, want)
	}

	// Aux entries are not constants.
	if got, want := childCandidates(m, "Shapes"), []string{"circle", "square"}; !slices.Equal(got, want) {
		t.Errorf("childCandidates(Shapes) = %v, want %v", got, want)
	}

	for _, parent := range []string{"Nope", "Colors.red"} {
		if got := childCandidates(m, parent); got != nil {
			t.Errorf("childCandidates(%q) = %v, want nil", parent, got)
		}
	}

	if got := childCandidates(nil, ""); got != nil {
		t.Errorf("childCandidates(nil) = %v, want nil", got)
	}
}

func TestComputeMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		first string
		count int
	}{
		{"empty top level", "", "", 0},
		{"namespace", "Colo", "Colors", -1},
		{"all members after dot", "Colors.", "red", 5},
		{"member", "Colors.gre", "green", 1},
		{"unknown namespace", "Nope.x", "", 0},
		{"after operator", "Colors.red + Sha", "Shapes", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := typed(t, tt.input)

			matches, _, _, _ := m.computeMatches()

			if tt.count >= 0 && len(matches) != tt.count {
				t.Fatalf("len(matches) = %d, want %d", len(matches), tt.count)
			}

			if tt.first != "" && (len(matches) == 0 || matches[0].Str != tt.first) {
				t.Errorf("first match of %q = %v, want %q", tt.input, matches, tt.first)
			}
		})
	}
}

func TestComputeMatches_CtrlMode(t *testing.T) {
	t.Parallel()

	m := typed(t, "")
	m = m.toggleMode()
	m.input.SetValue("qu")
	m.input.SetCursor(2)

	matches, _, _, _ := m.computeMatches()
	if len(matches) != 1 || matches[0].Str != "quit" {
		t.Errorf("ctrl matches for %q = %v, want [quit]", "qu", matches)
	}
}

func TestIsFunction(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"nameOf": true,
		"has":    true,
		"len":    true,
		"Colors": false,
		"red":    false,
	} {
		if got := isFunction(name); got != want {
			t.Errorf("isFunction(%q) = %v, want %v", name, got, want)
		}
	}
}
