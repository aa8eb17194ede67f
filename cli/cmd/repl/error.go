package repl

import "github.com/ardnew/aconst/named"

// Sentinel errors.
var (
	ErrOutOfBounds = named.NewError("history index out of range")
	ErrNoManifest  = named.NewError("no manifest to evaluate")
)
