// Package pipeline creates a component: it asks for a name, decides where
// the files go, checks nothing is overwritten, renders the templates,
// writes the files and hands the result to the editor host.
//
// Run returns raw errors. Handle is the single place that turns them into
// log entries and notifications.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/simonhull/firebird-suite/sprout/generator"
	"github.com/simonhull/firebird-suite/sprout/input"
	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
	"github.com/simonhull/firebird-suite/sprout/internal/config"
	"github.com/simonhull/firebird-suite/sprout/internal/conflict"
	"github.com/simonhull/firebird-suite/sprout/internal/editor"
	"github.com/simonhull/firebird-suite/sprout/internal/naming"
	"github.com/simonhull/firebird-suite/sprout/internal/placement"
	"github.com/simonhull/firebird-suite/sprout/internal/style"
	"github.com/simonhull/firebird-suite/sprout/internal/templates"
	"github.com/simonhull/firebird-suite/sprout/logger"
	"github.com/simonhull/firebird-suite/sprout/output"
	"github.com/simonhull/firebird-suite/sprout/project"
)

// propsBinding is what {{props}} expands to.
const propsBinding = "props"

// Deps are the collaborators of a Pipeline.
type Deps struct {
	Fs       afero.Fs
	Prompter input.Prompter
	Printer  *output.Printer
	Log      logger.Logger

	// Settings returns the snapshot used for one run.
	Settings func() config.Settings

	// Editor returns the document host for a settings snapshot.
	Editor func(config.Settings) editor.Host

	// ProjectRoot is the detected workspace root, or "" when there is none.
	ProjectRoot string

	// LogPath is mentioned in failure notifications when set.
	LogPath string
}

// Request starts one run.
type Request struct {
	Path string // optional file or directory the user invoked the command on
}

// Result describes a created component.
type Result struct {
	Name          naming.Parsed
	Dir           string
	CreatedDir    bool
	ComponentPath string
	StylePath     string // empty when no stylesheet was written
	Style         style.Kind
	Formatted     bool
}

// Pipeline runs component generation.
type Pipeline struct {
	deps Deps
}

// New creates a Pipeline.
func New(deps Deps) *Pipeline {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Log == nil {
		deps.Log = logger.NewSilentLogger()
	}
	if deps.Printer == nil {
		deps.Printer = output.Default()
	}
	if deps.Settings == nil {
		deps.Settings = config.Defaults
	}
	return &Pipeline{deps: deps}
}

// Run creates one component. Nothing is written until every check passed;
// a failure during the writes leaves what was already written in place.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	settings := p.deps.Settings()
	log := p.deps.Log

	base, err := placement.ResolveBase(p.deps.Fs, req.Path, p.deps.ProjectRoot)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved base directory", logger.F("dir", base))

	raw, err := p.promptName(ctx)
	if err != nil {
		return nil, err
	}

	hasTS, err := p.hasTypeScript()
	if err != nil {
		return nil, err
	}

	name, err := naming.Resolve(raw, hasTS, settings.DefaultExtension)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed component name",
		logger.F("filename", name.Filename),
		logger.F("pascal", name.Pascal),
		logger.F("lower", name.Lower))

	decision, err := placement.NewResolver(p.deps.Prompter).Decide(ctx, base, name.Pascal, settings.UseFolder)
	if err != nil {
		return nil, err
	}

	target, err := conflict.NewChecker(p.deps.Fs).Check(decision.TargetDir, name.Filename, decision.CreatesDir)
	if err != nil {
		return nil, err
	}

	engine := templates.NewEngine(p.deps.Fs, p.deps.ProjectRoot)

	artifact, err := style.NewPlanner(p.deps.Prompter, engine).Plan(ctx, settings.DefaultStyle, name.Lower, settings.DefaultTailwindClass)
	if err != nil {
		return nil, err
	}

	tmpl, err := engine.Load(templates.Component)
	if err != nil {
		return nil, err
	}
	component := templates.Render(tmpl, map[string]string{
		"pascalName":  name.Pascal,
		"lowerName":   name.Lower,
		"styleImport": artifact.Import,
		"className":   artifact.ClassName,
		"props":       propsBinding,
	})

	result := &Result{
		Name:          name,
		Dir:           target.Dir,
		CreatedDir:    decision.CreatesDir,
		ComponentPath: target.ComponentPath,
		Style:         artifact.Kind,
	}
	if artifact.HasFile() {
		result.StylePath = filepath.Join(target.Dir, artifact.FileName)
	}

	if err := p.materialize(ctx, result, component, artifact); err != nil {
		return nil, err
	}

	formatted, err := p.postProcess(ctx, settings, result.ComponentPath)
	if err != nil {
		return nil, err
	}
	result.Formatted = formatted

	log.Info("Pipeline completed successfully for: " + name.Pascal)
	p.deps.Printer.Success(fmt.Sprintf("Component %s created successfully.", name.Pascal))
	return result, nil
}

func (p *Pipeline) promptName(ctx context.Context) (string, error) {
	raw, err := p.deps.Prompter.Input(ctx, input.InputSpec{
		Prompt:      "Enter component filename (e.g., Navbar or UserProfile.tsx)",
		Placeholder: "Navbar",
		Validate:    naming.ValidateFilename,
	})
	if err != nil {
		return "", apperr.FromPrompt(err, "filename prompt")
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperr.Canceled("no filename entered")
	}
	return raw, nil
}

func (p *Pipeline) hasTypeScript() (bool, error) {
	if p.deps.ProjectRoot == "" {
		return false, nil
	}
	ok, err := project.HasTypeScript(p.deps.Fs, p.deps.ProjectRoot)
	if err != nil {
		return false, fmt.Errorf("checking for %s: %w", project.TypeScriptMarker, err)
	}
	return ok, nil
}

func (p *Pipeline) materialize(ctx context.Context, result *Result, component string, artifact style.Artifact) error {
	var ops []generator.Operation

	if result.CreatedDir {
		ops = append(ops, &generator.CreateDirOp{Fs: p.deps.Fs, Path: result.Dir})
	}
	ops = append(ops, &generator.WriteFileOp{
		Fs:      p.deps.Fs,
		Path:    result.ComponentPath,
		Content: []byte(component),
	})
	if artifact.HasFile() {
		ops = append(ops, &generator.WriteFileOp{
			Fs:        p.deps.Fs,
			Path:      result.StylePath,
			Content:   []byte(artifact.Content),
			Overwrite: true,
		})
	}

	var steps strings.Builder
	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &steps}); err != nil {
		return err
	}
	p.deps.Printer.Verbose(strings.TrimSuffix(steps.String(), "\n"))

	log := p.deps.Log
	if result.CreatedDir {
		log.Info("Created folder: " + result.Dir)
	}
	log.Info("Wrote component: " + result.ComponentPath)
	if result.StylePath != "" {
		log.Info("Wrote style: " + result.StylePath)
	}
	return nil
}

// postProcess shows the component and formats it when enabled. It reports
// whether formatting succeeded. Formatter failures are downgraded to a
// warning.
func (p *Pipeline) postProcess(ctx context.Context, settings config.Settings, path string) (bool, error) {
	if p.deps.Editor == nil {
		return false, nil
	}
	host := p.deps.Editor(settings)

	doc, err := host.Open(ctx, path)
	if err != nil {
		return false, err
	}
	if err := host.Show(ctx, doc); err != nil {
		return false, err
	}

	log := p.deps.Log
	if !settings.AutoFormat {
		log.Info("AutoFormat disabled by config (autoFormat=false).")
		return false, nil
	}

	log.Info("Formatting document...")
	if err := p.format(ctx, host, doc); err != nil {
		if errors.Is(err, context.Canceled) {
			return false, err
		}
		log.Warn("Auto-format failed", logger.F("path", path), logger.F("error", err.Error()))
		p.deps.Printer.Warn("Auto-format failed (formatter error). The file was created but may need manual formatting.")
		return false, nil
	}
	return true, nil
}

func (p *Pipeline) format(ctx context.Context, host editor.Host, doc editor.Document) error {
	edits, err := host.FormatEdits(ctx, doc)
	if err != nil {
		return err
	}

	if len(edits) > 0 {
		if err := host.ApplyEdits(ctx, doc, edits); err != nil {
			return err
		}
		p.deps.Log.Info("Applied formatter edits.")
		return nil
	}

	if err := host.FormatFallback(ctx, doc); err != nil {
		return err
	}
	p.deps.Log.Info("Fallback format command executed.")
	return nil
}
