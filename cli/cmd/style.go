package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// styles renders command output. Colors are only emitted when the output is
// a terminal.
type styles struct {
	name   lipgloss.Style
	value  lipgloss.Style
	kind   lipgloss.Style
	header lipgloss.Style
	hint   lipgloss.Style
}

func makeStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		name:   r.NewStyle().Foreground(lipgloss.Color("6")),
		value:  r.NewStyle().Foreground(lipgloss.Color("3")),
		kind:   r.NewStyle().Foreground(lipgloss.Color("8")),
		header: r.NewStyle().Bold(true),
		hint:   r.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
	}
}

// formatValue renders a constant value the way it would be written in a
// manifest: strings quoted, everything else bare.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}

	return fmt.Sprint(v)
}
