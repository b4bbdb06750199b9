// Package editor opens, shows and formats generated documents.
//
// Host is the boundary the generation pipeline talks to. Terminal is the
// command-line implementation: "showing" a document runs the configured
// editor command, or prints the path when none is set, and formatting runs
// external formatter commands.
package editor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/simonhull/firebird-suite/sprout/exec"
	"github.com/simonhull/firebird-suite/sprout/generator"
	"github.com/simonhull/firebird-suite/sprout/internal/config"
	"github.com/simonhull/firebird-suite/sprout/logger"
	"github.com/simonhull/firebird-suite/sprout/output"
)

// Document is an opened file.
type Document struct {
	Path    string
	Content string
}

// Host displays and formats documents.
type Host interface {
	Open(ctx context.Context, path string) (Document, error)
	Show(ctx context.Context, doc Document) error

	// FormatEdits asks the structured formatter for edits. No edits means
	// the formatter had nothing to offer.
	FormatEdits(ctx context.Context, doc Document) ([]generator.TextEdit, error)
	ApplyEdits(ctx context.Context, doc Document, edits []generator.TextEdit) error

	// FormatFallback runs the plain format command on the document.
	FormatFallback(ctx context.Context, doc Document) error
}

// Runner runs external commands. *exec.Executor implements it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	WithSpinner(ctx context.Context, message string, fn func(context.Context) error) error
}

var _ Runner = (*exec.Executor)(nil)

// Options configures a Terminal host.
type Options struct {
	Fs       afero.Fs
	Runner   Runner
	Printer  *output.Printer
	Log      logger.Logger
	Settings config.Settings
	Spinner  bool // show a spinner while the formatter runs
}

// Terminal is the command-line Host.
type Terminal struct {
	opts Options
}

var _ Host = (*Terminal)(nil)

// NewTerminal creates a Terminal host.
func NewTerminal(opts Options) *Terminal {
	if opts.Log == nil {
		opts.Log = logger.NewSilentLogger()
	}
	if opts.Printer == nil {
		opts.Printer = output.Default()
	}
	return &Terminal{opts: opts}
}

func (t *Terminal) Open(ctx context.Context, path string) (Document, error) {
	data, err := afero.ReadFile(t.opts.Fs, path)
	if err != nil {
		return Document{}, fmt.Errorf("opening %s: %w", path, err)
	}
	return Document{Path: path, Content: string(data)}, nil
}

func (t *Terminal) Show(ctx context.Context, doc Document) error {
	if t.opts.Settings.Editor == "" {
		t.opts.Printer.Step("📄 " + doc.Path)
		return nil
	}

	name, args, err := exec.SplitCommand(t.opts.Settings.Editor)
	if err != nil {
		return fmt.Errorf("editor setting: %w", err)
	}
	if err := t.opts.Runner.Run(ctx, name, append(args, doc.Path)...); err != nil {
		return fmt.Errorf("showing %s: %w", doc.Path, err)
	}
	return nil
}

func (t *Terminal) FormatEdits(ctx context.Context, doc Document) ([]generator.TextEdit, error) {
	if t.opts.Settings.Formatter == "" {
		return nil, nil
	}

	name, args, err := exec.SplitCommand(t.opts.Settings.Formatter)
	if err != nil {
		return nil, fmt.Errorf("formatter setting: %w", err)
	}
	args = append(args, doc.Path)

	var out []byte
	run := func(ctx context.Context) error {
		var err error
		out, err = t.opts.Runner.Output(ctx, name, args...)
		return err
	}

	if t.opts.Spinner {
		err = t.opts.Runner.WithSpinner(ctx, "Formatting "+filepath.Base(doc.Path), run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("formatter: %w", err)
	}

	if len(out) == 0 {
		return nil, nil
	}
	return generator.ComputeEdits(doc.Content, string(out)), nil
}

func (t *Terminal) ApplyEdits(ctx context.Context, doc Document, edits []generator.TextEdit) error {
	updated, err := generator.ApplyEdits(doc.Content, edits)
	if err != nil {
		return fmt.Errorf("applying formatter edits to %s: %w", doc.Path, err)
	}

	if t.opts.Printer.IsVerbose() {
		t.opts.Printer.Verbose("Formatter changes:\n" + generator.UnifiedDiff(filepath.Base(doc.Path), doc.Content, updated))
	}

	op := &generator.WriteFileOp{Fs: t.opts.Fs, Path: doc.Path, Content: []byte(updated), Overwrite: true}
	return generator.Execute(ctx, []generator.Operation{op}, generator.ExecuteOptions{})
}

func (t *Terminal) FormatFallback(ctx context.Context, doc Document) error {
	if t.opts.Settings.FormatCommand == "" {
		t.opts.Log.Debug("no format command configured", logger.F("path", doc.Path))
		return nil
	}

	name, args, err := exec.SplitCommand(t.opts.Settings.FormatCommand)
	if err != nil {
		return fmt.Errorf("formatCommand setting: %w", err)
	}
	if _, err := t.opts.Runner.Output(ctx, name, append(args, doc.Path)...); err != nil {
		return fmt.Errorf("format command: %w", err)
	}
	return nil
}
