// Package filesystem traverses directory trees on an afero.Fs with
// smart defaults for frontend projects.
//
// # Overview
//
// Walk skips dependency and build directories (node_modules, dist, .git and
// friends) unless told otherwise, and can filter files by glob pattern.
//
// # Usage
//
//	err := filesystem.Walk(fs, ".sprout", filesystem.WalkOptions{
//	    IncludeHidden:  true,
//	    IgnorePatterns: []string{"*.bak"},
//	}, func(path string, info os.FileInfo) error {
//	    fmt.Println(path)
//	    return nil
//	})
package filesystem
