// Package profile provides optional runtime profiling for the aconst
// command.
//
// Profiling is backed by [github.com/pkg/profile] and is compiled in only
// with the "pprof" build tag. Without the tag every [Profiler] is a no-op and
// [Modes] yields nothing.
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace. Profiles are written to Path as <mode>.pprof and
// can be analyzed with "go tool pprof".
//
// Builds with the tag also register the [net/http/pprof] handlers on
// [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
