package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/aconst/cli/cmd/repl"
	"github.com/ardnew/aconst/log"
)

// Repl evaluates expressions interactively over the constants of the
// manifests.
type Repl struct {
	History string `default:"${cache}/history.utf8" help:"History file ('' disables history)"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}

	if r.History != "" {
		if err := os.MkdirAll(filepath.Dir(r.History), 0o700); err != nil {
			log.WarnContext(ctx, "history disabled",
				slog.String("path", r.History),
				slog.String("error", err.Error()),
			)

			r.History = ""
		}
	}

	opts := []tea.ProgramOption{tea.WithOutput(stdout(ctx))}

	// A manifest read from stdin leaves the terminal as the only input.
	if sourceFilesFrom(ctx).Stdin() {
		opts = append(opts, tea.WithInputTTY())
	}

	return repl.Run(ctx, m, r.History, log.Default(), opts...)
}
