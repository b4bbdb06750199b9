package generator

import (
	"context"
	"fmt"
	"io"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	Writer io.Writer // receives one line per executed operation; nil discards
}

// Execute validates every operation, then runs them in order.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = io.Discard
	}

	for _, op := range ops {
		if err := op.Validate(ctx); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}

	return nil
}
