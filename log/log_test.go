package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, logger.Level())
	}
	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format %v, got %v", DefaultFormat, logger.Format())
	}
	if logger.caller {
		t.Error("expected caller disabled by default")
	}
	if !logger.pretty {
		t.Error("expected pretty enabled by default")
	}
}

func TestLogger_WithLevel_FiltersMessages(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		log   func(Logger)
		want  bool
	}{
		{"trace below debug", LevelDebug, func(l Logger) { l.Trace("message") }, false},
		{"trace at trace", LevelTrace, func(l Logger) { l.Trace("message") }, true},
		{"debug at info", LevelInfo, func(l Logger) { l.Debug("message") }, false},
		{"info at info", LevelInfo, func(l Logger) { l.Info("message") }, true},
		{"warn at error", LevelError, func(l Logger) { l.Warn("message") }, false},
		{"error at error", LevelError, func(l Logger) { l.Error("message") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(Make(&buf, WithLevel(tt.level)))

			if got := strings.Contains(buf.String(), "message"); got != tt.want {
				t.Errorf("logged = %v, want %v: %s", got, tt.want, buf.String())
			}
		})
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelTrace))
	logger.Trace("test message", slog.String("key", "value"), slog.Int("n", 3))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if result["msg"] != "test message" {
		t.Errorf("expected msg=test message, got %v", result["msg"])
	}
	if result["level"] != "TRACE" {
		t.Errorf("expected level=TRACE, got %v", result["level"])
	}
	if result["key"] != "value" {
		t.Errorf("expected key=value, got %v", result["key"])
	}
	if result["n"] != float64(3) {
		t.Errorf("expected n=3, got %v", result["n"])
	}
	if _, ok := result["time"]; !ok {
		t.Error("expected a timestamp")
	}
}

func TestLogger_TimeLayoutNone_OmitsTime(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		var buf bytes.Buffer
		logger := Make(&buf,
			WithFormat(FormatText),
			WithPretty(pretty),
			WithTimeLayout("none"))
		logger.Info("message")

		if strings.Contains(buf.String(), "time=") {
			t.Errorf("pretty=%v: expected no timestamp, got: %s", pretty, buf.String())
		}
	}
}

func TestLogger_WithCaller_IncludesSource(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatText} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			Make(&buf, WithFormat(format), WithCaller(true)).Info("message")

			if !strings.Contains(buf.String(), "log_test.go") {
				t.Errorf("expected caller file in output, got: %s", buf.String())
			}

			buf.Reset()
			Make(&buf, WithFormat(format), WithCaller(false)).Info("message")

			if strings.Contains(buf.String(), "source") {
				t.Errorf("unexpected caller info: %s", buf.String())
			}
		})
	}
}

func TestLogger_PrettyText(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
		WithLevel(LevelDebug))

	logger.With(slog.String("namespace", "Colors")).Debug("namespace built",
		slog.Int("constants", 5),
		slog.Bool("sorted", false),
		slog.Group("order", slog.String("by", "value")))

	output := strings.TrimSpace(buf.String())

	for _, want := range []string{
		"level=DEBUG",
		"msg=namespace built",
		"namespace=Colors",
		"constants=5",
		"sorted=false",
		"order.by=value",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}

	if strings.Contains(output, "\n") {
		t.Errorf("expected a single line, got: %s", output)
	}
}

func TestLogger_PrettyText_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"))

	logger := Logger{
		config: base.config,
		Logger: slog.New(base.Handler().WithGroup("lang").
			WithAttrs([]slog.Attr{slog.String("source", "a.yaml")})),
	}
	logger.Info("parsed", slog.Int("namespaces", 2))

	output := buf.String()
	for _, want := range []string{"lang.source=a.yaml", "lang.namespaces=2"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestLogger_Wrap_KeepsConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelWarn), WithFormat(FormatText))
	wrapped := logger.Wrap(WithPretty(false))

	if wrapped.Level() != LevelWarn || wrapped.Format() != FormatText {
		t.Errorf("unexpected wrapped config: %v %v", wrapped.Level(), wrapped.Format())
	}
	if logger.config.mutex == wrapped.config.mutex {
		t.Error("expected wrapped logger to have its own mutex")
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf).With(slog.String("component", "lang"))
	logger.Info("message")

	if !strings.Contains(buf.String(), `"component":"lang"`) {
		t.Errorf("expected attribute in output, got: %s", buf.String())
	}
}

func TestLogger_ZeroValue_Safety(t *testing.T) {
	var logger Logger

	logger.Info("discarded")
	logger.ErrorContext(context.Background(), "discarded")

	if logger.With(slog.String("k", "v")).Logger != nil {
		t.Error("expected zero logger to stay zero after With")
	}
	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level, got %v", logger.Level())
	}
}

func TestLogger_ContextMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelTrace))
	ctx := t.Context()

	methods := map[string]func(context.Context, string, ...slog.Attr){
		"TRACE": logger.TraceContext,
		"DEBUG": logger.DebugContext,
		"INFO":  logger.InfoContext,
		"WARN":  logger.WarnContext,
		"ERROR": logger.ErrorContext,
	}

	for level, fn := range methods {
		buf.Reset()
		fn(ctx, "context message")

		if !strings.Contains(buf.String(), `"level":"`+level+`"`) {
			t.Errorf("expected level %s, got: %s", level, buf.String())
		}
	}
}

func TestLogger_ConcurrentCalls(t *testing.T) {
	var buf syncBuffer
	logger := Make(&buf, WithFormat(FormatText))

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			logger.Info("concurrent", slog.Int("i", i))
			_ = logger.Wrap(WithLevel(LevelDebug)).Level()
		}()
	}

	wg.Wait()

	if n := strings.Count(buf.String(), "msg=concurrent"); n != 16 {
		t.Errorf("expected 16 lines, got %d", n)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
