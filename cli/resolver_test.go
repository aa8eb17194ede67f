package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func mockFlag(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestResolve_ReadsConfigNamespace(t *testing.T) {
	const manifest = `
namespaces:
  config:
    log_level: debug
    log-format: text
    log-pretty: false
    indent: 4
    ratio: 0.5
  other:
    foo: bar
`

	resolver, err := resolve(t.Context(), "config")(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log_level", "debug"},
		{"log-format", "text"},
		{"log-pretty", false},
		{"indent", "4"},
		{"ratio", "0.5"},
		{"foo", nil},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := resolver.Resolve(nil, nil, mockFlag(tt.flag))
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%s) = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}

	if err := resolver.Validate(nil); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestResolve_IgnoresInvalidConfig(t *testing.T) {
	inputs := map[string]string{
		"syntax":            "namespaces: [",
		"missing namespace": "namespaces:\n  other: {log-level: debug}\n",
		"empty":             "",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			resolver, err := resolve(t.Context(), "config")(strings.NewReader(input))
			if err != nil {
				t.Fatalf("resolve failed: %v", err)
			}

			got, err := resolver.Resolve(nil, nil, mockFlag("log-level"))
			if err != nil || got != nil {
				t.Errorf("Resolve = %v, %v; want nil, nil", got, err)
			}
		})
	}
}

func TestResolve_AppliesToKong(t *testing.T) {
	var cli struct {
		Level  string `default:"info"`
		Indent int    `default:"2"`
	}

	const manifest = "namespaces:\n  config:\n    level: warn\n    indent: 8\n"

	resolver, err := resolve(t.Context(), "config")(strings.NewReader(manifest))
	if err != nil {
		t.Fatal(err)
	}

	parser, err := kong.New(&cli, kong.Resolvers(resolver))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"--indent=3"}); err != nil {
		t.Fatal(err)
	}

	if cli.Level != "warn" || cli.Indent != 3 {
		t.Errorf("got level=%q indent=%d, want warn and 3", cli.Level, cli.Indent)
	}
}
