// Package cli contains the command line interface for aconst.
//
// # Usage
//
//	aconst -s figures.yaml list
//	aconst -s figures.yaml list Colors
//	aconst -s figures.yaml lookup Colors green
//	aconst -s figures.yaml resolve Colors 2
//	aconst -s figures.yaml eval 'nameOf("Colors", Colors.red + 1)'
//	aconst -s a.yaml -s b.yaml fmt --format json
//	aconst -s figures.yaml repl
//	aconst init
//
// Manifests are given with -s/--source, repeatable, with '-' for stdin.
// Namespaces from every source are merged; a namespace declared twice is an
// error.
//
// # Configuration
//
// Flag defaults are read from the "config" namespace of the manifest at
// $XDG_CONFIG_HOME/aconst/config.yaml (or config.yaml.json, in kong's JSON
// layout). The init command writes that file from the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o aconst .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/aconst/pprof)
package cli
