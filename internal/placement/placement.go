// Package placement decides which directory a new component goes into.
package placement

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/simonhull/firebird-suite/sprout/input"
	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
	"github.com/simonhull/firebird-suite/sprout/internal/config"
)

// Folder prompt options.
const (
	OptionFolder = "Yes (Create a new folder)"
	OptionDirect = "No (Create files directly)"
)

// Decision is where the component files will be written.
type Decision struct {
	TargetDir  string
	CreatesDir bool // TargetDir is a new folder named after the component
}

// ResolveBase returns the directory new files are placed relative to.
//
// An explicit path naming a file resolves to its parent and a directory to
// itself. A path that cannot be inspected, or no path at all, resolves to
// the project root. Without a project root that is an Environment error.
func ResolveBase(fs afero.Fs, rawPath, projectRoot string) (string, error) {
	if rawPath != "" {
		if info, err := fs.Stat(rawPath); err == nil {
			if info.IsDir() {
				return rawPath, nil
			}
			return filepath.Dir(rawPath), nil
		}
	}

	if projectRoot == "" {
		return "", apperr.Environment("no project root found", "Please open a folder or workspace first.")
	}
	return projectRoot, nil
}

// Resolver applies the folder policy.
type Resolver struct {
	prompter input.Prompter
}

// NewResolver creates a Resolver.
func NewResolver(p input.Prompter) *Resolver {
	return &Resolver{prompter: p}
}

// Decide applies policy to baseDir for a component named pascal.
func (r *Resolver) Decide(ctx context.Context, baseDir, pascal string, policy config.FolderPolicy) (Decision, error) {
	createDir := false

	switch policy {
	case config.FolderAlways:
		createDir = true
	case config.FolderNever:
	default:
		pick, err := r.prompter.Select(ctx, input.SelectSpec{
			Prompt:  "Create a dedicated component folder?",
			Options: []string{OptionFolder, OptionDirect},
		})
		if err != nil {
			return Decision{}, apperr.FromPrompt(err, "folder prompt")
		}
		createDir = strings.HasPrefix(pick, "Yes")
	}

	if createDir {
		return Decision{TargetDir: filepath.Join(baseDir, pascal), CreatesDir: true}, nil
	}
	return Decision{TargetDir: baseDir}, nil
}
