// Package project detects the workspace a Sprout command runs in.
//
// # Overview
//
// The project root is the nearest directory, starting from the working
// directory and walking up, that contains one of the RootMarkers. Sprout
// resolves default target directories, template overrides and its settings
// file relative to that root.
//
// # Usage
//
//	info, err := project.Detect(afero.NewOsFs(), cwd)
//	if errors.Is(err, project.ErrNoProject) {
//	    // no workspace is open
//	}
//	if info.TypeScript {
//	    // tsconfig.json at the root
//	}
package project
