// Package exec runs external tools (editors, formatters) on behalf of Sprout.
//
// # Basic Usage
//
//	executor := exec.NewExecutor(nil)
//	err := executor.Run(ctx, "code", "src/Card/Card.tsx")
//
// Output captures a tool's stdout instead of streaming it:
//
//	formatted, err := executor.Output(ctx, "prettier", "src/Card/Card.tsx")
//
// Long-running work can be wrapped in a spinner:
//
//	err := executor.WithSpinner(ctx, "Formatting Card.tsx", func(ctx context.Context) error {
//	    _, err := executor.Output(ctx, "prettier", path)
//	    return err
//	})
//
// Commands are killed when the context is cancelled. A missing binary is
// reported with an install hint.
package exec
