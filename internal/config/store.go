package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
	"github.com/simonhull/firebird-suite/sprout/logger"
)

const (
	// FileName is the settings file looked up at the project root.
	FileName = "sprout.yml"
	envFile  = ".env"
)

// envNames maps every setting to its environment variable.
var envNames = map[string]string{
	"useFolder":            "SPROUT_USE_FOLDER",
	"defaultStyle":         "SPROUT_DEFAULT_STYLE",
	"defaultTailwindClass": "SPROUT_DEFAULT_TAILWIND_CLASS",
	"autoFormat":           "SPROUT_AUTO_FORMAT",
	"defaultExtension":     "SPROUT_DEFAULT_EXTENSION",
	"editor":               "SPROUT_EDITOR",
	"formatter":            "SPROUT_FORMATTER",
	"formatCommand":        "SPROUT_FORMAT_COMMAND",
}

// LoadOptions configures Load.
type LoadOptions struct {
	Fs          afero.Fs      // defaults to the OS file system
	ProjectRoot string        // where sprout.yml and .env live; empty uses defaults and env only
	Logger      logger.Logger // receives warnings about invalid values
}

// Store holds the current Settings snapshot.
type Store struct {
	fs   afero.Fs
	root string
	log  logger.Logger

	// reload serializes rebuilds of the snapshot.
	reload sync.Mutex

	current  atomic.Pointer[Settings]
	warnings atomic.Pointer[[]string]

	mu        sync.Mutex
	listeners []func(old, updated Settings)
	watching  bool
}

// Load reads the settings once. Use Watch to follow file changes.
func Load(opts LoadOptions) (*Store, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewSilentLogger()
	}

	s := &Store{fs: opts.Fs, root: opts.ProjectRoot, log: opts.Logger}
	v, err := s.build()
	if err != nil {
		return nil, err
	}
	s.swap(s.decode(v))
	return s, nil
}

// path returns the settings file location, or "" without a project root.
func (s *Store) path() string {
	if s.root == "" {
		return ""
	}
	return filepath.Join(s.root, FileName)
}

// build reads every source into a fresh viper instance.
func (s *Store) build() (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SPROUT")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("useFolder", string(d.UseFolder))
	v.SetDefault("defaultStyle", string(d.DefaultStyle))
	v.SetDefault("defaultTailwindClass", d.DefaultTailwindClass)
	v.SetDefault("autoFormat", d.AutoFormat)
	v.SetDefault("defaultExtension", d.DefaultExtension)
	v.SetDefault("editor", d.Editor)
	v.SetDefault("formatter", d.Formatter)
	v.SetDefault("formatCommand", d.FormatCommand)

	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if s.root == "" {
		return v, nil
	}
	if err := s.loadDotEnv(v); err != nil {
		return nil, err
	}
	v.SetConfigFile(s.path())
	if err := s.readFile(v); err != nil {
		return nil, err
	}
	return v, nil
}

// loadDotEnv applies .env entries for settings whose variable is not set in
// the real environment, so the process environment still wins.
func (s *Store) loadDotEnv(v *viper.Viper) error {
	data, err := afero.ReadFile(s.fs, filepath.Join(s.root, envFile))
	if err != nil {
		if exists, _ := afero.Exists(s.fs, filepath.Join(s.root, envFile)); !exists {
			return nil
		}
		return settingsError("reading "+envFile, err)
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return settingsError("parsing "+envFile, err)
	}

	for key, env := range envNames {
		val, ok := vars[env]
		if _, inEnv := os.LookupEnv(env); !ok || inEnv {
			continue
		}
		v.Set(key, val)
	}
	return nil
}

func (s *Store) readFile(v *viper.Viper) error {
	exists, err := afero.Exists(s.fs, v.ConfigFileUsed())
	if err != nil {
		return settingsError("checking "+FileName, err)
	}
	if !exists {
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return settingsError("reading "+FileName, err)
	}
	return nil
}

func settingsError(msg string, err error) error {
	return &apperr.Error{
		Kind:    apperr.KindEnvironment,
		Msg:     msg,
		UserMsg: fmt.Sprintf("Could not load settings: %v", err),
		Err:     err,
	}
}

// decode builds a snapshot from viper, replacing invalid values with their
// defaults.
func (s *Store) decode(v *viper.Viper) (Settings, []string) {
	d := Defaults()
	var warnings []string
	warn := func(err error, fallback string) {
		msg := fmt.Sprintf("%v; using %q", err, fallback)
		warnings = append(warnings, msg)
		s.log.Warn("invalid setting", logger.F("detail", msg))
	}

	folder, err := ParseFolderPolicy(v.GetString("useFolder"))
	if err != nil {
		warn(err, string(d.UseFolder))
		folder = d.UseFolder
	}

	style, err := ParseStyleSetting(v.GetString("defaultStyle"))
	if err != nil {
		warn(err, string(d.DefaultStyle))
		style = d.DefaultStyle
	}

	ext, err := ParseExtension(v.GetString("defaultExtension"))
	if err != nil {
		warn(err, d.DefaultExtension)
		ext = d.DefaultExtension
	}

	return Settings{
		UseFolder:            folder,
		DefaultStyle:         style,
		DefaultTailwindClass: v.GetString("defaultTailwindClass"),
		AutoFormat:           v.GetBool("autoFormat"),
		DefaultExtension:     ext,
		Editor:               v.GetString("editor"),
		Formatter:            v.GetString("formatter"),
		FormatCommand:        v.GetString("formatCommand"),
	}, warnings
}

func (s *Store) swap(next Settings, warnings []string) Settings {
	s.warnings.Store(&warnings)
	old := s.current.Swap(&next)
	if old == nil {
		return next
	}
	return *old
}

// Current returns the latest snapshot.
func (s *Store) Current() Settings {
	return *s.current.Load()
}

// Warnings returns the problems found while decoding the current snapshot.
func (s *Store) Warnings() []string {
	return *s.warnings.Load()
}

// Source returns the settings file in use, or "" when only defaults and the
// environment apply.
func (s *Store) Source() string {
	path := s.path()
	if path == "" {
		return ""
	}
	if ok, _ := afero.Exists(s.fs, path); !ok {
		return ""
	}
	return path
}

// OnChange registers fn to run after every reload with the previous and the
// new snapshot.
func (s *Store) OnChange(fn func(old, updated Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload re-reads every source and replaces the snapshot.
func (s *Store) Reload() error {
	return s.refresh("reload")
}

// Watch starts following the settings file. It is a no-op when there is no
// settings file or when already watching.
func (s *Store) Watch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watching || s.Source() == "" {
		return
	}
	s.watching = true

	w := viper.New()
	w.SetFs(s.fs)
	w.SetConfigType("yaml")
	w.SetConfigFile(s.path())
	w.OnConfigChange(func(e fsnotify.Event) {
		if err := s.refresh(e.Op.String()); err != nil {
			s.log.Warn("settings reload failed", logger.F("error", err))
		}
	})
	w.WatchConfig()
}

func (s *Store) refresh(cause string) error {
	s.reload.Lock()
	v, err := s.build()
	if err != nil {
		s.reload.Unlock()
		return err
	}
	next, warnings := s.decode(v)
	old := s.swap(next, warnings)
	s.reload.Unlock()

	s.log.Info("settings reloaded", logger.F("cause", cause), logger.F("source", s.Source()))

	s.mu.Lock()
	listeners := append([]func(old, updated Settings){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(old, next)
	}
	return nil
}
