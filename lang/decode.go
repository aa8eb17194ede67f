package lang

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strconv"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/zeebo/xxh3"
)

// document is the decoded and normalized form of a manifest source.
// It never changes once decoded and may be shared between manifests.
type document struct {
	module     string
	namespaces []declaration
}

// declaration is one namespace of a document, in source order.
type declaration struct {
	name    string
	entries []entry
}

type entry struct {
	name  string
	value any
}

// source is the wire layout of a manifest.
type source struct {
	Module     string        `yaml:"module"`
	Namespaces yaml.MapSlice `yaml:"namespaces"`
}

var (
	// documents stores decoded documents keyed by the hash of their source.
	documents sync.Map
)

// cached tracks the decoding of one source.
type cached struct {
	once sync.Once
	doc  *document
	err  error
}

// decodeCached decodes data, reusing the result of an earlier call with the
// same content. The second result reports whether the cache was hit.
func decodeCached(data []byte) (*document, bool, error) {
	key := strconv.FormatUint(xxh3.Hash(data), 36)

	value, hit := documents.LoadOrStore(key, new(cached))

	c, ok := value.(*cached)
	if !ok {
		return nil, hit, ErrManifestDecode.
			With(slog.String("issue", "invalid cache entry"))
	}

	c.once.Do(func() { c.doc, c.err = decode(data) })

	return c.doc, hit, c.err
}

// ClearCache removes every cached document.
func ClearCache() {
	documents.Clear()
}

func decode(data []byte) (*document, error) {
	var src source

	err := yaml.UnmarshalWithOptions(data, &src, yaml.UseOrderedMap(), yaml.Strict())
	if err != nil {
		return nil, ErrManifestDecode.Wrap(err)
	}

	doc := &document{
		module:     src.Module,
		namespaces: make([]declaration, 0, len(src.Namespaces)),
	}

	seen := make(map[string]struct{}, len(src.Namespaces))

	for _, item := range src.Namespaces {
		name := keyString(item.Key)

		if _, ok := seen[name]; ok {
			return nil, ErrManifestDecode.Wrap(
				ErrDuplicateNamespace.With(slog.String("namespace", name)))
		}

		seen[name] = struct{}{}

		decl, err := decodeDeclaration(name, item.Value)
		if err != nil {
			return nil, err
		}

		doc.namespaces = append(doc.namespaces, decl)
	}

	return doc, nil
}

func decodeDeclaration(name string, v any) (declaration, error) {
	decl := declaration{name: name}

	switch body := v.(type) {
	case nil:
		return decl, nil

	case yaml.MapSlice:
		decl.entries = make([]entry, 0, len(body))

		for _, item := range body {
			key := keyString(item.Key)

			value, err := Normalize(item.Value)
			if err != nil {
				return decl, ErrInvalidValue.Wrap(err).With(
					slog.String("namespace", name),
					slog.String("name", key),
				)
			}

			decl.entries = append(decl.entries, entry{name: key, value: value})
		}

		return decl, nil

	default:
		return decl, ErrManifestDecode.
			With(slog.String("namespace", name)).
			Wrap(fmt.Errorf("namespace %s must be a mapping, got %T", name, v))
	}
}

// keyString returns the text of a mapping key. Scalar keys such as 1 or true
// name constants just like quoted ones.
func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}

	return fmt.Sprint(k)
}

// Normalize converts a decoded scalar to the representation shared by
// manifests and parsed literals: int64 for integers (uint64 when out of
// range), float64 for floats, bool or string. Anything else is rejected.
func Normalize(v any) (any, error) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return u, nil
		}

		return int64(u), nil

	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil

	case reflect.Bool:
		return rv.Bool(), nil

	case reflect.String:
		return rv.String(), nil

	case reflect.Invalid:
		return nil, fmt.Errorf("null is not a constant value")

	default:
		return nil, fmt.Errorf("%T is not a scalar", v)
	}
}
