package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aconst/lang"
	"github.com/ardnew/aconst/named"
)

// contextKey stores a [kong.Context] value in a [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer commands print results to.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stderr returns the writer commands print hints to.
func stderr(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stderr != nil {
		return ktx.Stderr
	}

	return os.Stderr
}

type (
	sourceFilesKey  struct{}
	parseOptionsKey struct{}
)

// SourceFiles is the deduplicated list of manifest sources given on the
// command line.
type SourceFiles struct {
	paths    []string
	hasStdin bool
}

// IsZero reports whether there are no sources.
func (s *SourceFiles) IsZero() bool {
	return s == nil || (len(s.paths) == 0 && !s.hasStdin)
}

// Paths returns the resolved file paths in command line order, excluding
// stdin.
func (s *SourceFiles) Paths() []string { return s.paths }

// Stdin reports whether stdin is one of the sources.
func (s *SourceFiles) Stdin() bool { return s.hasStdin }

// Manifest parses every source and merges the results. Stdin, if present,
// is parsed last.
func (s *SourceFiles) Manifest(
	ctx context.Context,
	opts ...lang.Option,
) (*lang.Manifest, error) {
	if s.IsZero() {
		return nil, ErrNoSource
	}

	ms := make([]*lang.Manifest, 0, len(s.paths)+1)

	for _, path := range s.paths {
		m, err := lang.ParseFile(ctx, path, opts...)
		if err != nil {
			return nil, err
		}

		ms = append(ms, m)
	}

	if s.hasStdin {
		m, err := lang.Parse(ctx, os.Stdin, opts...)
		if err != nil {
			return nil, named.WrapError(err).With(slog.String("path", stdinSource))
		}

		ms = append(ms, m)
	}

	return lang.Merge(ms...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// WithSourceFiles returns a new context.Context containing the manifest
// sources named by sources.
//
// Paths are deduplicated by resolving symlinks and comparing device/inode
// pairs; paths that cannot be resolved are skipped. All occurrences of "-"
// collapse into a single stdin source.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourceFilesKey{}, buildSourceFiles(sources))
}

// WithParseOptions returns a new context.Context carrying the options used
// to parse manifests.
func WithParseOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, parseOptionsKey{}, opts)
}

func buildSourceFiles(sources []string) *SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs SourceFiles

	seen := make(map[fileKey]struct{})

	stdinKey, stdinOK := fileKey{}, false
	if info, err := os.Stdin.Stat(); err == nil {
		stdinKey, stdinOK = makeFileKey(info)
	}

	for _, src := range sources {
		if src == stdinSource {
			srcs.hasStdin = true

			continue
		}

		path, key, ok := resolveUniqueFile(src, seen)
		if !ok {
			continue
		}

		// Stdin may also be named by a device path such as /dev/stdin.
		if stdinOK && key == stdinKey {
			srcs.hasStdin = true

			continue
		}

		srcs.paths = append(srcs.paths, path)
	}

	if srcs.IsZero() {
		return nil
	}

	return &srcs
}

// resolveUniqueFile resolves path to its target if it hasn't been seen
// before. Returns false if the file is a duplicate or cannot be resolved.
func resolveUniqueFile(
	path string,
	seen map[fileKey]struct{},
) (string, fileKey, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fileKey{}, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return "", fileKey{}, false
	}

	if _, exists := seen[key]; exists {
		return "", fileKey{}, false
	}

	seen[key] = struct{}{}

	return resolved, key, true
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// sourceFilesFrom retrieves the sources stored in ctx by WithSourceFiles.
func sourceFilesFrom(ctx context.Context) *SourceFiles {
	s, _ := ctx.Value(sourceFilesKey{}).(*SourceFiles)

	return s
}

func parseOptionsFrom(ctx context.Context) []lang.Option {
	opts, _ := ctx.Value(parseOptionsKey{}).([]lang.Option)

	return opts
}

// loadManifest parses the manifests given on the command line.
func loadManifest(ctx context.Context) (*lang.Manifest, error) {
	return sourceFilesFrom(ctx).Manifest(ctx, parseOptionsFrom(ctx)...)
}
