package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WorkspaceRoot is the project root used by NewWorkspace.
var WorkspaceRoot = filepath.FromSlash("/work/app")

// NewWorkspace returns an in-memory file system holding a project root with
// a package.json plus files, given relative to the root. Entries ending in
// "/" are created as directories.
func NewWorkspace(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(WorkspaceRoot, "package.json"), []byte("{}"), 0644))

	for name, content := range files {
		p := filepath.Join(WorkspaceRoot, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, fs.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, afero.WriteFile(fs, p, []byte(content), 0644))
	}
	return fs
}

// Path joins slash-separated elements onto WorkspaceRoot.
func Path(elem ...string) string {
	return filepath.Join(append([]string{WorkspaceRoot}, elem...)...)
}

// ReadFile reads a file from fs or fails the test.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}
