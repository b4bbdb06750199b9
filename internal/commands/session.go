package commands

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/simonhull/firebird-suite/sprout/internal/config"
	"github.com/simonhull/firebird-suite/sprout/logger"
	"github.com/simonhull/firebird-suite/sprout/output"
	"github.com/simonhull/firebird-suite/sprout/project"
)

// session holds what one CLI invocation sets up lazily: the log, the
// detected project and the settings store.
type session struct {
	env         Env
	printer     *output.Printer
	verbose     bool
	projectFlag string

	log      logger.Logger
	closeLog func() error
}

func newSession(env Env) *session {
	if env.Fs == nil {
		env.Fs = afero.NewOsFs()
	}
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.ErrOut == nil {
		env.ErrOut = os.Stderr
	}
	return &session{env: env, printer: output.New(env.Out)}
}

// logger returns the invocation's logger. The log file is opened on first
// use; when that fails, warnings and errors go to stderr instead.
func (s *session) logger() logger.Logger {
	if s.log != nil {
		return s.log
	}
	if s.env.Log != nil {
		s.log = s.env.Log
		return s.log
	}

	level := logger.LevelInfo
	var tee io.Writer
	if s.verbose {
		level = logger.LevelDebug
		tee = s.env.ErrOut
	}

	if s.env.LogPath != "" {
		log, closeFn, err := logger.OpenFile(s.env.LogPath, level, tee)
		if err == nil {
			s.log, s.closeLog = log, closeFn
			return s.log
		}
		s.printer.Warn("Could not open log file: " + err.Error())
	}

	if tee == nil {
		level = logger.LevelWarn
	}
	s.log = logger.New(s.env.ErrOut, level)
	return s.log
}

func (s *session) close() error {
	if s.closeLog == nil {
		return nil
	}
	err := s.closeLog()
	s.closeLog = nil
	return err
}

func (s *session) workDir() (string, error) {
	if s.env.Dir != "" {
		return s.env.Dir, nil
	}
	return os.Getwd()
}

// abs makes p absolute against the working directory.
func (s *session) abs(p string) (string, error) {
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	wd, err := s.workDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

// project detects the project root. The --project flag wins; otherwise the
// search starts at hint (a path the command was given) or the working
// directory. A nil Info with a nil error means no project was found.
func (s *session) project(hint string) (*project.Info, error) {
	start := s.projectFlag
	if start == "" {
		start = hint
	}
	if start == "" {
		wd, err := s.workDir()
		if err != nil {
			return nil, err
		}
		start = wd
	}

	start, err := s.abs(start)
	if err != nil {
		return nil, err
	}
	if info, err := s.env.Fs.Stat(start); err == nil && !info.IsDir() {
		start = filepath.Dir(start)
	}

	info, err := project.Detect(s.env.Fs, start)
	if errors.Is(err, project.ErrNoProject) {
		s.logger().Debug("no project root found", logger.F("start", start))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger().Debug("detected project",
		logger.F("root", info.Root),
		logger.F("marker", info.Marker),
		logger.F("typescript", info.TypeScript))
	return info, nil
}

// settings loads the settings store for root, which may be empty.
func (s *session) settings(root string) (*config.Store, error) {
	store, err := config.Load(config.LoadOptions{
		Fs:          s.env.Fs,
		ProjectRoot: root,
		Logger:      s.logger(),
	})
	if err != nil {
		return nil, err
	}
	for _, w := range store.Warnings() {
		s.printer.Warn(w)
	}
	return store, nil
}
