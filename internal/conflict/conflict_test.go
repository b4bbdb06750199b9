package conflict

import (
	"io/fs"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
	tu "github.com/simonhull/firebird-suite/sprout/internal/testing/testutil"
)

// statDeniedFs fails every Stat with a permission error.
type statDeniedFs struct{ afero.Fs }

func (statDeniedFs) Stat(string) (os.FileInfo, error) { return nil, fs.ErrPermission }

func TestCheck_Free(t *testing.T) {
	fs := tu.NewWorkspace(t, map[string]string{"src/": ""})

	got, err := NewChecker(fs).Check(tu.Path("src", "Card"), "Card.tsx", true)

	require.NoError(t, err)
	assert.Equal(t, Result{Dir: tu.Path("src", "Card"), ComponentPath: tu.Path("src", "Card", "Card.tsx")}, got)
}

func TestCheck_ExistingFolder(t *testing.T) {
	fs := tu.NewWorkspace(t, map[string]string{"src/Card/": ""})

	_, err := NewChecker(fs).Check(tu.Path("src", "Card"), "Card.tsx", true)

	require.Error(t, err)
	assert.Equal(t, apperr.KindComponentExists, apperr.KindOf(err))
	assert.Equal(t, "A folder named 'Card' already exists.", apperr.UserMessage(err))
}

func TestCheck_ExistingFileWithSameNameAsFolder(t *testing.T) {
	fs := tu.NewWorkspace(t, map[string]string{"src/Card": "not a folder"})

	_, err := NewChecker(fs).Check(tu.Path("src", "Card"), "Card.tsx", true)

	assert.Equal(t, "A folder named 'Card' already exists.", apperr.UserMessage(err))
}

func TestCheck_ExistingFile(t *testing.T) {
	fs := tu.NewWorkspace(t, map[string]string{"src/Card.tsx": "x"})

	_, err := NewChecker(fs).Check(tu.Path("src"), "Card.tsx", false)

	require.Error(t, err)
	assert.Equal(t, apperr.KindComponentExists, apperr.KindOf(err))
	assert.Equal(t, "A component file named 'Card.tsx' already exists in this location.", apperr.UserMessage(err))
}

func TestCheck_FolderNotCheckedWithoutCreatesDir(t *testing.T) {
	fs := tu.NewWorkspace(t, map[string]string{"src/": ""})

	got, err := NewChecker(fs).Check(tu.Path("src"), "Card.tsx", false)

	require.NoError(t, err)
	assert.Equal(t, tu.Path("src", "Card.tsx"), got.ComponentPath)
}

func TestCheck_StatErrorPropagates(t *testing.T) {
	_, err := NewChecker(statDeniedFs{afero.NewMemMapFs()}).Check("/src/Card", "Card.tsx", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, apperr.KindUnknown, apperr.KindOf(err))
}

func TestCheck_NeverWrites(t *testing.T) {
	fs := tu.NewWorkspace(t, nil)
	ro := afero.NewReadOnlyFs(fs)

	_, err := NewChecker(ro).Check(tu.Path("src", "Card"), "Card.tsx", true)

	require.NoError(t, err)
	exists, _ := afero.DirExists(fs, tu.Path("src", "Card"))
	assert.False(t, exists)
}
