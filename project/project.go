package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// RootMarkers are the files or directories that mark a project root, in
// the order they are checked.
var RootMarkers = []string{"sprout.yml", ".sprout", "package.json", ".git"}

// TypeScriptMarker is the file whose presence at the root makes .tsx the
// default component extension.
const TypeScriptMarker = "tsconfig.json"

// ErrNoProject is returned by Detect when no enclosing project root exists.
var ErrNoProject = errors.New("no project root found")

// Info describes a detected project.
type Info struct {
	Root       string // absolute path of the project root
	Marker     string // the RootMarkers entry that identified Root
	TypeScript bool   // TypeScriptMarker present at Root
}

// Detect walks up from start to the first directory holding a root marker.
func Detect(fsys afero.Fs, start string) (*Info, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		marker, err := findMarker(fsys, dir)
		if err != nil {
			return nil, err
		}
		if marker != "" {
			ts, err := HasTypeScript(fsys, dir)
			if err != nil {
				return nil, err
			}
			return &Info{Root: dir, Marker: marker, TypeScript: ts}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w above %s", ErrNoProject, start)
		}
		dir = parent
	}
}

// HasTypeScript reports whether root contains TypeScriptMarker.
func HasTypeScript(fsys afero.Fs, root string) (bool, error) {
	return exists(fsys, filepath.Join(root, TypeScriptMarker))
}

func findMarker(fsys afero.Fs, dir string) (string, error) {
	for _, m := range RootMarkers {
		ok, err := exists(fsys, filepath.Join(dir, m))
		if err != nil {
			return "", err
		}
		if ok {
			return m, nil
		}
	}
	return "", nil
}

func exists(fsys afero.Fs, path string) (bool, error) {
	_, err := fsys.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
}
