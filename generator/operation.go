package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it. It has
// no side effects.
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create src/Card/Card.tsx (234 bytes)").
type Operation interface {
	Validate(ctx context.Context) error
	Execute(ctx context.Context) error
	Description() string
}

// CreateDirOp creates a directory and any missing parents.
type CreateDirOp struct {
	Fs   afero.Fs
	Path string
	Mode fs.FileMode // defaults to 0755
}

func (op *CreateDirOp) Validate(ctx context.Context) error {
	info, err := op.Fs.Stat(op.Path)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("cannot create directory %s: a file with that name exists", op.Path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cannot create directory %s: %w", op.Path, err)
	}
	return nil
}

func (op *CreateDirOp) Execute(ctx context.Context) error {
	mode := op.Mode
	if mode == 0 {
		mode = 0755
	}
	return op.Fs.MkdirAll(op.Path, mode)
}

func (op *CreateDirOp) Description() string {
	return fmt.Sprintf("Create directory %s", op.Path)
}

// WriteFileOp writes a file, creating parent directories as needed.
//
// Validation rejects nil content (empty is fine), a directory in the way, and
// an existing file unless Overwrite is set.
type WriteFileOp struct {
	Fs        afero.Fs
	Path      string
	Content   []byte
	Mode      fs.FileMode // defaults to 0644
	Overwrite bool
}

func (op *WriteFileOp) Validate(ctx context.Context) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	info, err := op.Fs.Stat(op.Path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("cannot write %s: it is a directory", op.Path)
	case err == nil && !op.Overwrite:
		return fmt.Errorf("file already exists: %s", op.Path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cannot write %s: %w", op.Path, err)
	}
	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := op.Fs.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return err
	}
	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}
	return afero.WriteFile(op.Fs, op.Path, op.Content, mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}
