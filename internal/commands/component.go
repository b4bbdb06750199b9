package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/sprout/exec"
	"github.com/simonhull/firebird-suite/sprout/internal/config"
	"github.com/simonhull/firebird-suite/sprout/internal/editor"
	"github.com/simonhull/firebird-suite/sprout/internal/pipeline"
)

func componentCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "component [path]",
		Aliases: []string{"c"},
		Short:   "Create a new component",
		Long: `Create a new component.

The component is placed relative to path: a directory is used as is, a file
means its directory. Without a path the project root is used.

Examples:
  sprout component
  sprout component src/components
  sprout c src/components/Header.tsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) > 0 {
				raw = args[0]
			}
			return runComponent(cmd, s, raw)
		},
	}
}

func runComponent(cmd *cobra.Command, s *session, raw string) error {
	ctx := cmd.Context()
	log := s.logger()

	deps := pipeline.Deps{
		Fs:       s.env.Fs,
		Prompter: s.env.Prompter,
		Printer:  s.printer,
		Log:      log,
		LogPath:  s.env.LogPath,
	}

	fail := func(err error) error {
		if err := pipeline.New(deps).Handle(err); err != nil {
			return errReported{err}
		}
		return nil
	}

	if raw != "" {
		path, err := s.abs(raw)
		if err != nil {
			return fail(err)
		}
		raw = path
	}

	info, err := s.project(raw)
	if err != nil {
		return fail(err)
	}
	var root string
	if info != nil {
		root = info.Root
	}

	store, err := s.settings(root)
	if err != nil {
		return fail(err)
	}

	runner := s.env.Runner
	if runner == nil {
		runner = exec.NewExecutor(&exec.Options{Dir: root, Stdout: s.env.Out, Stderr: s.env.ErrOut})
	}

	deps.ProjectRoot = root
	deps.Settings = store.Current
	deps.Editor = func(settings config.Settings) editor.Host {
		return editor.NewTerminal(editor.Options{
			Fs:       s.env.Fs,
			Runner:   runner,
			Printer:  s.printer,
			Log:      log,
			Settings: settings,
			Spinner:  s.env.Spinner,
		})
	}

	result, err := pipeline.New(deps).Run(ctx, pipeline.Request{Path: raw})
	if err != nil {
		return fail(err)
	}

	if result.StylePath != "" {
		s.printer.Step("🎨 " + result.StylePath)
	}
	return nil
}
