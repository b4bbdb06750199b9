package filesystem

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// DefaultIgnoreDirs are common directories to skip during traversal
var DefaultIgnoreDirs = []string{
	"node_modules", ".git", ".svn", ".hg",
	"dist", "build", "coverage", ".next", ".turbo",
	".idea", ".vscode",
}

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IgnoreDirs     []string // Directories to skip (default: DefaultIgnoreDirs)
	IgnorePatterns []string // File patterns to skip (e.g., "*.bak")
	IncludeHidden  bool     // Include hidden files/dirs below the root
	FilesOnly      bool     // Only call the visitor for regular files
}

// Walk traverses a directory tree with configurable ignore patterns.
// The visitor function is called for each file and directory.
// Return filepath.SkipDir from visitor to skip a directory.
func Walk(fsys afero.Fs, rootPath string, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	ignoreDirs := opts.IgnoreDirs
	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}

	return afero.Walk(fsys, rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path != rootPath {
			if !opts.IncludeHidden && strings.HasPrefix(info.Name(), ".") {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if info.IsDir() && slices.Contains(ignoreDirs, info.Name()) {
				return filepath.SkipDir
			}
		}

		if !info.IsDir() {
			for _, pattern := range opts.IgnorePatterns {
				if matched, _ := filepath.Match(pattern, info.Name()); matched {
					return nil
				}
			}
		} else if opts.FilesOnly {
			return nil
		}

		return visitor(path, info)
	})
}

// Files returns the slash-separated paths, relative to rootPath, of every
// regular file Walk visits. A missing root yields no files.
func Files(fsys afero.Fs, rootPath string, opts WalkOptions) ([]string, error) {
	if ok, err := afero.DirExists(fsys, rootPath); err != nil || !ok {
		return nil, err
	}

	opts.FilesOnly = true
	var files []string
	err := Walk(fsys, rootPath, opts, func(path string, _ os.FileInfo) error {
		rel, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}
