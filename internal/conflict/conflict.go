// Package conflict checks that a component can be created without
// touching existing files. It never writes.
package conflict

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
)

// Result holds the paths confirmed free.
type Result struct {
	Dir           string
	ComponentPath string
}

// Checker inspects the target location.
type Checker struct {
	fs afero.Fs
}

// NewChecker creates a Checker.
func NewChecker(fsys afero.Fs) *Checker {
	return &Checker{fs: fsys}
}

// Check verifies that targetDir (when createsDir) and targetDir/filename do
// not exist. The directory is checked first.
func (c *Checker) Check(targetDir, filename string, createsDir bool) (Result, error) {
	if createsDir {
		taken, err := c.exists(targetDir)
		if err != nil {
			return Result{}, err
		}
		if taken {
			return Result{}, apperr.ComponentExists(
				"folder already exists: "+targetDir,
				fmt.Sprintf("A folder named '%s' already exists.", filepath.Base(targetDir)),
			)
		}
	}

	path := filepath.Join(targetDir, filename)
	taken, err := c.exists(path)
	if err != nil {
		return Result{}, err
	}
	if taken {
		return Result{}, apperr.ComponentExists(
			"file already exists: "+path,
			fmt.Sprintf("A component file named '%s' already exists in this location.", filename),
		)
	}

	return Result{Dir: targetDir, ComponentPath: path}, nil
}

func (c *Checker) exists(path string) (bool, error) {
	_, err := c.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
