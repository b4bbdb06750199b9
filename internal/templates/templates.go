// Package templates loads component and stylesheet templates and fills in
// their placeholders.
//
// A template is plain text with {{identifier}} placeholders. Built-in
// templates are compiled into the binary; a project can override any of them
// by placing a file with the same relative path under .sprout/ at its root.
// Overrides are looked up again on every load, so edits apply immediately.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/afero"

	"github.com/simonhull/firebird-suite/sprout/filesystem"
	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
)

// OverrideDir is the project-relative directory holding template overrides.
const OverrideDir = ".sprout"

// Built-in template ids.
const (
	Component = "component.txt"
	StyleCSS  = "styles/css.txt"
	StyleSCSS = "styles/scss.txt"
)

//go:embed builtin
var builtinFS embed.FS

const builtinRoot = "builtin"

// Origin tells where a template was loaded from.
type Origin string

const (
	OriginOverride Origin = "override"
	OriginBuiltin  Origin = "built-in"
)

// Source is a loaded template.
type Source struct {
	ID      string
	Content string
	Origin  Origin
	Path    string // override file path; empty for built-ins

	// SearchPath lists the locations checked, in order.
	SearchPath []string
}

// Engine resolves templates for one project.
type Engine struct {
	fs   afero.Fs
	root string
}

// NewEngine creates an Engine. projectRoot may be empty, in which case only
// built-in templates are available.
func NewEngine(fsys afero.Fs, projectRoot string) *Engine {
	return &Engine{fs: fsys, root: projectRoot}
}

// Load returns the content of template id.
func (e *Engine) Load(id string) (string, error) {
	src, err := e.Resolve(id)
	if err != nil {
		return "", err
	}
	return src.Content, nil
}

// Resolve finds template id, preferring a project override. A missing
// override falls through to the built-in; any other read failure is
// returned as is.
func (e *Engine) Resolve(id string) (Source, error) {
	if !fs.ValidPath(id) {
		return Source{}, apperr.Template("invalid template id "+id, fmt.Sprintf("Invalid template name: %s.", id))
	}

	var searched []string

	if override := e.overridePath(id); override != "" {
		searched = append(searched, override)

		data, err := afero.ReadFile(e.fs, override)
		switch {
		case err == nil:
			return Source{ID: id, Content: string(data), Origin: OriginOverride, Path: override, SearchPath: searched}, nil
		case !errors.Is(err, fs.ErrNotExist):
			return Source{}, fmt.Errorf("reading template override %s: %w", override, err)
		}
	}

	builtin := path.Join(builtinRoot, id)
	searched = append(searched, "built-in:"+id)

	data, err := builtinFS.ReadFile(builtin)
	if err != nil {
		return Source{}, apperr.Template(
			fmt.Sprintf("template %s not found (searched %v)", id, searched),
			fmt.Sprintf("Could not load template file: %s. Checked workspace '%s/' and built-in templates.", id, OverrideDir),
		)
	}

	return Source{ID: id, Content: string(data), Origin: OriginBuiltin, SearchPath: searched}, nil
}

func (e *Engine) overridePath(id string) string {
	if e.root == "" {
		return ""
	}
	return filepath.Join(e.root, OverrideDir, filepath.FromSlash(id))
}

// Entry describes one template known to the engine.
type Entry struct {
	ID     string
	Origin Origin // where Resolve would load it from
	Path   string // override path, if any
	Used   bool   // false for override files that no built-in id matches
}

// List reports every built-in template and every file under the override
// directory, sorted by id.
func (e *Engine) List() ([]Entry, error) {
	byID := map[string]*Entry{}

	err := fs.WalkDir(builtinFS, builtinRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		id := p[len(builtinRoot)+1:]
		byID[id] = &Entry{ID: id, Origin: OriginBuiltin, Used: true}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing built-in templates: %w", err)
	}

	if e.root != "" {
		dir := filepath.Join(e.root, OverrideDir)
		files, err := filesystem.Files(e.fs, dir, filesystem.WalkOptions{IncludeHidden: true, IgnoreDirs: []string{}})
		if err != nil {
			return nil, fmt.Errorf("listing template overrides: %w", err)
		}
		for _, id := range files {
			entry, ok := byID[id]
			if !ok {
				entry = &Entry{ID: id}
				byID[id] = entry
			}
			entry.Origin = OriginOverride
			entry.Path = filepath.Join(dir, filepath.FromSlash(id))
		}
	}

	entries := make([]Entry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

var placeholder = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Render replaces every {{key}} whose key is in bindings. Unknown
// placeholders are left untouched. Values are inserted verbatim.
func Render(template string, bindings map[string]string) string {
	return placeholder.ReplaceAllStringFunc(template, func(tok string) string {
		if v, ok := bindings[tok[2:len(tok)-2]]; ok {
			return v
		}
		return tok
	})
}
