// Package log wraps [log/slog] with a small, concurrency-safe logger used by
// the named constant packages and the command line.
//
//	logger := log.Make(os.Stderr, log.WithLevel(log.LevelDebug))
//	logger.Info("manifest loaded", slog.String("path", path))
//
// Loggers are configured with functional options at creation time. A
// configured logger can be derived with [Logger.Wrap] (new options) or
// [Logger.With] (persistent attributes).
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. Messages below the configured level are
// discarded.
//
// # Output
//
// [FormatJSON] (default) writes one JSON object per line. [FormatText]
// writes key=value pairs, colorized with lipgloss when [WithPretty] is
// enabled and the output is a terminal.
//
// Timestamps use [WithTimeLayout], which accepts a named layout from the
// [time] package ("RFC3339", "Kitchen", ...), "none" to omit them, or a
// custom layout string.
//
// # Package-level logging
//
// The package-level functions ([Info], [Debug], ...) write to a default
// logger that can be reconfigured with [Config]. The zero [Logger] discards
// everything, so structs may embed one without initialization.
package log
