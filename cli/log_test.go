package cli

import "testing"

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		level  logLevel
		format logFormat
		pretty bool
		caller bool
	}{
		{"none", []string{"list"}, "", "", true, false},
		{"separate values", []string{"--log-level", "debug", "--log-format", "text"}, "debug", "text", true, false},
		{"assigned values", []string{"--log-level=warn", "--log-format=json"}, "warn", "json", true, false},
		{"value looks like flag", []string{"--log-level", "--log-caller"}, "", "", true, true},
		{"negated", []string{"--no-log-pretty", "--no-log-caller"}, "", "", false, false},
		{"assigned bool", []string{"--log-pretty=false", "--log-caller=true"}, "", "", false, true},
		{"negated assigned", []string{"--no-log-pretty=false"}, "", "", true, false},
		{"invalid bool", []string{"--log-caller=maybe"}, "", "", true, false},
		{"after command", []string{"list", "Colors", "--log-caller"}, "", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if f.Level != tt.level {
				t.Errorf("level = %q, want %q", f.Level, tt.level)
			}
			if f.Format != tt.format {
				t.Errorf("format = %q, want %q", f.Format, tt.format)
			}
			if f.Pretty != tt.pretty {
				t.Errorf("pretty = %v, want %v", f.Pretty, tt.pretty)
			}
			if f.Caller != tt.caller {
				t.Errorf("caller = %v, want %v", f.Caller, tt.caller)
			}
		})
	}
}
