package repl

import (
	"slices"
	"strings"
	"testing"
)

func TestDetectFunctionCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		cursor     int
		wantName   string
		wantIndex  int
		wantInCall bool
	}{
		{"no call", "Colors.red", 10, "", 0, false},
		{"first arg", "nameOf(", 7, "nameOf", 0, true},
		{"first arg typed", `nameOf("Colors"`, 15, "nameOf", 0, true},
		{"second arg", `nameOf("Colors",`, 16, "nameOf", 1, true},
		{"second arg typed", `nameOf("Colors", 2`, 18, "nameOf", 1, true},
		{"closed call", `nameOf("Colors", 2)`, 19, "", 0, false},
		{"nested inner", `has("Colors", len(`, 18, "len", 0, true},
		{"nested closed", `has("Colors", len("ab"), `, 25, "has", 2, true},
		{"cursor inside", `qualified("Colors", 1)`, 10, "qualified", 0, true},
		{"paren without name", "(1, ", 4, "", 0, false},
		{"after operator", "Colors.red + upper(", 19, "upper", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)
			if got.name != tt.wantName || got.argIndex != tt.wantIndex || got.inCall != tt.wantInCall {
				t.Errorf("detectFunctionCall(%q, %d) = %+v, want {name:%s argIndex:%d inCall:%v}",
					tt.input, tt.cursor, got, tt.wantName, tt.wantIndex, tt.wantInCall)
			}
		})
	}
}

func TestGetSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sig    string
		params []string
	}{
		{"nameOf", "nameOf(namespace, value)", []string{"namespace", "value"}},
		{"has", "has(namespace, x)", []string{"namespace", "x"}},
		{"replace", "replace(string, old, new)", []string{"string", "old", "new"}},
		{"Colors", "", nil},
	}

	for _, tt := range tests {
		sig, params := getSignature(tt.name)
		if sig != tt.sig || !slices.Equal(params, tt.params) {
			t.Errorf("getSignature(%q) = (%q, %v), want (%q, %v)",
				tt.name, sig, params, tt.sig, tt.params)
		}
	}
}

func TestRenderSignatureHint(t *testing.T) {
	t.Parallel()

	got := renderSignatureHint("nameOf", []string{"namespace", "value"}, 1)

	for _, want := range []string{"nameOf", "namespace", "value"} {
		if !strings.Contains(got, want) {
			t.Errorf("renderSignatureHint() = %q, missing %q", got, want)
		}
	}
}
