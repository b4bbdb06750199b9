// Package generator materializes scaffolded files and compares text.
//
// # Operations
//
// File system changes are expressed as Operations that are all validated
// before any of them runs:
//
//	ops := []generator.Operation{
//	    &generator.CreateDirOp{Fs: fs, Path: "src/Card", Mode: 0755},
//	    &generator.WriteFileOp{Fs: fs, Path: "src/Card/Card.tsx", Content: body, Mode: 0644},
//	}
//	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{}); err != nil {
//	    return err
//	}
//
// There is no rollback. A failure part way through leaves the files that
// were already written in place.
//
// # Diffs
//
// ComputeEdits turns two versions of a document into line-range TextEdits
// using the Myers algorithm, and ApplyEdits replays them. UnifiedDiff renders
// the same comparison for a terminal.
package generator
