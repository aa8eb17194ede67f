package lang

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/readahead"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/aconst/named"
)

// Manifest is a set of namespaces declared together in a YAML document.
type Manifest struct {
	module     string
	namespaces []*named.Namespace[any]
	index      map[string]int
}

// Parse reads a manifest from r.
//
// Sources with identical content are decoded only once per process; each
// call still builds its own namespaces with the given options.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Manifest, error) {
	// Read ahead asynchronously so large inputs are fetched while hashing.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return parse(ctx, data, opts...)
}

// ParseString parses a manifest held in a string.
func ParseString(ctx context.Context, s string, opts ...Option) (*Manifest, error) {
	return parse(ctx, []byte(s), opts...)
}

// ParseFile parses the manifest stored at path.
func ParseFile(ctx context.Context, path string, opts ...Option) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("path", path))
	}
	defer f.Close()

	m, err := Parse(ctx, f, opts...)
	if err != nil {
		return nil, named.WrapError(err).With(slog.String("path", path))
	}

	return m, nil
}

func parse(ctx context.Context, data []byte, opts ...Option) (*Manifest, error) {
	o := applyOptions(opts...)

	doc, hit, err := decodeCached(data)

	o.logger.TraceContext(ctx, "decode manifest",
		slog.Int("source_bytes", len(data)),
		slog.Bool("cache_hit", hit),
	)

	if err != nil {
		return nil, err
	}

	m := &Manifest{
		module:     doc.module,
		namespaces: make([]*named.Namespace[any], 0, len(doc.namespaces)),
		index:      make(map[string]int, len(doc.namespaces)),
	}

	if o.hasModule {
		m.module = o.module
	}

	for _, decl := range doc.namespaces {
		b := named.NewBuilder[any](decl.name, o.namedOptions(doc.module)...)

		for _, e := range decl.entries {
			if err := b.Define(e.name, e.value); err != nil {
				return nil, ErrInvalidValue.
					With(
						slog.String("namespace", decl.name),
						slog.String("name", e.name),
					).
					Wrap(err)
			}
		}

		m.index[decl.name] = len(m.namespaces)
		m.namespaces = append(m.namespaces, b.Build())
	}

	o.logger.DebugContext(ctx, "manifest parsed",
		slog.String("module", m.module),
		slog.Int("namespaces", len(m.namespaces)),
	)

	return m, nil
}

// NewManifest returns a manifest holding the given namespaces.
func NewManifest(
	module string,
	namespaces ...*named.Namespace[any],
) (*Manifest, error) {
	m := &Manifest{module: module, index: make(map[string]int)}

	for _, ns := range namespaces {
		if err := m.add(ns); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Merge combines manifests into one, keeping the namespaces in argument
// order. Each namespace keeps the module it was declared with. The merged
// manifest takes the module of the first manifest that declares one.
func Merge(ms ...*Manifest) (*Manifest, error) {
	out := &Manifest{index: make(map[string]int)}

	for _, m := range ms {
		if m == nil {
			continue
		}

		if out.module == "" {
			out.module = m.module
		}

		for _, ns := range m.namespaces {
			if err := out.add(ns); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func (m *Manifest) add(ns *named.Namespace[any]) error {
	if _, ok := m.index[ns.Name()]; ok {
		return ErrDuplicateNamespace.
			With(slog.String("namespace", ns.Name()))
	}

	m.index[ns.Name()] = len(m.namespaces)
	m.namespaces = append(m.namespaces, ns)

	return nil
}

// Module returns the module declared by the manifest, if any.
func (m *Manifest) Module() string { return m.module }

// Len returns the number of namespaces.
func (m *Manifest) Len() int { return len(m.namespaces) }

// Namespace returns the namespace declared as name.
func (m *Manifest) Namespace(name string) (*named.Namespace[any], error) {
	if i, ok := m.index[name]; ok {
		return m.namespaces[i], nil
	}

	return nil, ErrNamespaceNotFound.With(slog.String("namespace", name))
}

// All returns an iterator over the namespaces in declaration order.
func (m *Manifest) All() iter.Seq[*named.Namespace[any]] {
	return func(yield func(*named.Namespace[any]) bool) {
		for _, ns := range m.namespaces {
			if !yield(ns) {
				return
			}
		}
	}
}

// Names returns the namespace names in declaration order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.namespaces))
	for i, ns := range m.namespaces {
		names[i] = ns.Name()
	}

	return names
}

// Suggest returns the namespace names that fuzzy-match name, best first.
func (m *Manifest) Suggest(name string) []string {
	matches := fuzzy.Find(name, m.Names())

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Str)
	}

	return out
}

// Lookup returns the constant referenced as "Namespace.name".
func (m *Manifest) Lookup(ref string) (named.Value[any], error) {
	nsName, name, ok := strings.Cut(ref, ".")
	if !ok || nsName == "" || name == "" {
		return named.Value[any]{}, ErrInvalidReference.
			With(slog.String("ref", ref))
	}

	ns, err := m.Namespace(nsName)
	if err != nil {
		return named.Value[any]{}, err
	}

	return ns.ByName(name)
}
