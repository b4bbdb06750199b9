package commands

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/sprout"
	"github.com/simonhull/firebird-suite/sprout/input"
	"github.com/simonhull/firebird-suite/sprout/internal/editor"
	"github.com/simonhull/firebird-suite/sprout/logger"
)

// Env holds the process-level collaborators of the CLI.
type Env struct {
	Fs       afero.Fs
	Out      io.Writer
	ErrOut   io.Writer
	Prompter input.Prompter

	// Runner runs the editor and formatter commands. Nil uses an
	// exec.Executor rooted at the project.
	Runner editor.Runner

	// Log is used as is when set. Otherwise the log file at LogPath is opened.
	Log     logger.Logger
	LogPath string

	Dir     string // working directory; "" means os.Getwd
	Spinner bool   // show a spinner while the formatter runs
}

// DefaultEnv returns the Env of a real terminal session.
func DefaultEnv() Env {
	return Env{
		Fs:       afero.NewOsFs(),
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		Prompter: input.NewTerminal(),
		LogPath:  logger.DefaultPath(),
		Spinner:  term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// errReported marks an error that was already shown to the user.
type errReported struct{ err error }

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }

// RootCmd creates the root command for the Sprout CLI.
func RootCmd(env Env) *cobra.Command {
	cmd, _ := newRoot(env)
	return cmd
}

func newRoot(env Env) (*cobra.Command, *session) {
	s := newSession(env)

	cmd := &cobra.Command{
		Use:   "sprout",
		Short: "Scaffold UI components from templates",
		Long: `Sprout creates a component file and, optionally, a stylesheet.

It asks for a filename, whether the component gets its own folder and how it
is styled, then writes the files, opens the component and formats it.

Settings are read from sprout.yml at the project root, a .env file next to it
and SPROUT_* environment variables. Templates can be overridden by files under
.sprout/ at the project root.`,
		Version:       sprout.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s.printer.SetVerbose(s.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVar(&s.projectFlag, "project", "", "Project root (default: detected from the current directory)")

	cmd.AddCommand(componentCmd(s))
	cmd.AddCommand(templatesCmd(s))
	cmd.AddCommand(configCmd(s))
	cmd.AddCommand(versionCmd())

	return cmd, s
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, env Env, args []string) int {
	cmd, s := newRoot(env)
	cmd.SetArgs(args)
	cmd.SetOut(s.env.Out)
	cmd.SetErr(s.env.ErrOut)

	err := cmd.ExecuteContext(ctx)
	if cerr := s.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		return 0
	}

	var reported errReported
	if !errors.As(err, &reported) {
		s.printer.Error(err.Error())
	}
	return 1
}
