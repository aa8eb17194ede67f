package lang

import "github.com/ardnew/aconst/named"

// Manifest errors share [named.Error] so callers can test any of them with
// [errors.Is] and log them with their attributes.
var (
	ErrReadInput          = named.NewError("failed to read input")
	ErrManifestDecode     = named.NewError("invalid manifest")
	ErrInvalidValue       = named.NewError("invalid constant value")
	ErrNamespaceNotFound  = named.NewError("namespace not found")
	ErrDuplicateNamespace = named.NewError("duplicate namespace")
	ErrInvalidReference   = named.NewError("invalid constant reference")
	ErrExprCompile        = named.NewError("expression compilation failed")
	ErrExprEvaluate       = named.NewError("expression evaluation failed")
)
