package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/aconst/named"
)

// List prints the namespaces of the manifests or the constants of one.
type List struct {
	Namespace string `arg:"" help:"Namespace to list" optional:""`
	Qualified bool   `help:"Print qualified constant names" short:"q"`
	Types     bool   `help:"Print the type of each value" short:"t"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}

	w := stdout(ctx)
	st := makeStyles(w)

	if l.Namespace == "" {
		for ns := range m.All() {
			_, err := fmt.Fprintf(w, "%s %s\n",
				st.header.Render(ns.Qualifier()),
				st.kind.Render(fmt.Sprintf("(%d)", ns.Len())))
			if err != nil {
				return err
			}
		}

		return nil
	}

	ns, err := m.Namespace(l.Namespace)
	if err != nil {
		return suggest(ctx, err, m.Suggest(l.Namespace))
	}

	width := 0
	for c := range ns.Values() {
		width = max(width, lipgloss.Width(l.label(c)))
	}

	for c := range ns.Values() {
		line := st.name.Width(width).Render(l.label(c)) + " " +
			st.value.Render(formatValue(c.Value()))

		if l.Types {
			line += " " + st.kind.Render(fmt.Sprintf("%T", c.Value()))
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func (l *List) label(c named.Value[any]) string {
	if l.Qualified {
		return c.GoString()
	}

	return c.Name()
}

// suggest prints the closest candidates for a failed lookup to stderr and
// returns err annotated with them.
func suggest(ctx context.Context, err error, candidates []string) error {
	if len(candidates) == 0 {
		return err
	}

	const limit = 3
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	w := stderr(ctx)
	st := makeStyles(w)

	_, _ = fmt.Fprintln(w, st.hint.Render(fmt.Sprintf("did you mean %s?", joinOr(candidates))))

	return named.WrapError(err).With(slog.Any("suggestions", candidates))
}

// joinOr joins words as "a", "a or b" or "a, b or c".
func joinOr(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}

	out := words[0]
	for _, w := range words[1 : len(words)-1] {
		out += ", " + w
	}

	return out + " or " + words[len(words)-1]
}
