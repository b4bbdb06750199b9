package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/sprout/internal/testing/testutil"
	"github.com/simonhull/firebird-suite/sprout/logger"
)

type fakeRunner struct {
	commands []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	r.commands = append(r.commands, name)
	return nil
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.commands = append(r.commands, name)
	return nil, nil
}

func (r *fakeRunner) WithSpinner(ctx context.Context, message string, fn func(context.Context) error) error {
	return fn(ctx)
}

type cli struct {
	fs     afero.Fs
	out    *bytes.Buffer
	log    *bytes.Buffer
	runner *fakeRunner
	env    Env
}

func newCLI(t *testing.T, files map[string]string, answers ...testutil.Answer) *cli {
	t.Helper()

	c := &cli{
		fs:     testutil.NewWorkspace(t, files),
		out:    &bytes.Buffer{},
		log:    &bytes.Buffer{},
		runner: &fakeRunner{},
	}
	c.env = Env{
		Fs:       c.fs,
		Out:      c.out,
		ErrOut:   c.out,
		Prompter: testutil.NewPrompter(answers...),
		Runner:   c.runner,
		Log:      logger.New(c.log, logger.LevelDebug),
		Dir:      testutil.WorkspaceRoot,
	}
	return c
}

func (c *cli) run(args ...string) int {
	return Execute(context.Background(), c.env, args)
}

const fixedSettings = `useFolder: always
defaultStyle: scss
`

func TestVersion(t *testing.T) {
	c := newCLI(t, nil)

	assert.Equal(t, 0, c.run("version"))
	assert.Equal(t, "Sprout v0.1.0\n", c.out.String())
}

func TestComponent_CreatesFiles(t *testing.T) {
	c := newCLI(t, map[string]string{"sprout.yml": fixedSettings}, testutil.Say("Card"))

	require.Equal(t, 0, c.run("component"), c.out.String())

	assert.Contains(t, testutil.ReadFile(t, c.fs, testutil.Path("Card", "Card.tsx")), "import './card.scss';")
	assert.Contains(t, testutil.ReadFile(t, c.fs, testutil.Path("Card", "card.scss")), ".card {")
	assert.Contains(t, c.out.String(), "Component Card created successfully.")
	assert.Contains(t, c.out.String(), testutil.Path("Card", "card.scss"))
	assert.Equal(t, []string{"prettier"}, c.runner.commands)
}

func TestComponent_AliasAndPathArgument(t *testing.T) {
	c := newCLI(t, map[string]string{
		"sprout.yml":         "useFolder: never\ndefaultStyle: none\n",
		"src/components/":    "",
		"src/components/x.a": "",
	}, testutil.Say("Header"))

	require.Equal(t, 0, c.run("c", "src/components/x.a"), c.out.String())

	exists, err := afero.Exists(c.fs, testutil.Path("src", "components", "Header.tsx"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestComponent_CanceledExitsZero(t *testing.T) {
	c := newCLI(t, nil, testutil.Dismiss())

	assert.Equal(t, 0, c.run("component"))
	assert.NotContains(t, c.out.String(), "❌")
	assert.Contains(t, c.log.String(), "User cancelled the operation.")
}

func TestComponent_ConflictExitsOne(t *testing.T) {
	c := newCLI(t, map[string]string{"sprout.yml": fixedSettings, "Card/": ""}, testutil.Say("Card"))

	assert.Equal(t, 1, c.run("component"))
	assert.Contains(t, c.out.String(), "A folder named 'Card' already exists.")
	assert.Equal(t, 1, bytes.Count(c.out.Bytes(), []byte("❌")), "the error is reported once")
}

func TestComponent_NoProject(t *testing.T) {
	c := newCLI(t, nil)
	c.env.Fs = afero.NewMemMapFs()
	require.NoError(t, c.env.Fs.MkdirAll("/tmp/loose", 0755))
	c.env.Dir = "/tmp/loose"

	assert.Equal(t, 1, c.run("component"))
	assert.Contains(t, c.out.String(), "Please open a folder or workspace first.")
}

func TestComponent_MalformedSettings(t *testing.T) {
	c := newCLI(t, map[string]string{"sprout.yml": "useFolder: [always"})

	assert.Equal(t, 1, c.run("component"))
	assert.Contains(t, c.out.String(), "Could not load settings")
}

func TestComponent_InvalidSettingWarns(t *testing.T) {
	c := newCLI(t, map[string]string{"sprout.yml": "useFolder: sometimes\ndefaultStyle: none\n"},
		testutil.Say("Card"), testutil.Say("No (Create files directly)"))

	require.Equal(t, 0, c.run("component"), c.out.String())
	assert.Contains(t, c.out.String(), `"sometimes"`)
}

func TestConfig_PrintsEffectiveSettings(t *testing.T) {
	c := newCLI(t, map[string]string{"sprout.yml": fixedSettings})

	require.Equal(t, 0, c.run("config"))

	out := c.out.String()
	assert.Contains(t, out, "# source: "+testutil.Path("sprout.yml"))
	assert.Contains(t, out, "useFolder: always")
	assert.Contains(t, out, "defaultStyle: scss")
	assert.Contains(t, out, "defaultTailwindClass: container")
	assert.Contains(t, out, "autoFormat: true")
}

func TestConfig_Defaults(t *testing.T) {
	c := newCLI(t, nil)

	require.Equal(t, 0, c.run("config"))
	assert.Contains(t, c.out.String(), "# source: defaults and environment")
	assert.Contains(t, c.out.String(), "useFolder: ask")
}

func TestConfig_WatchNeedsFile(t *testing.T) {
	c := newCLI(t, nil)

	assert.Equal(t, 1, c.run("config", "--watch"))
	assert.Contains(t, c.out.String(), "nothing to watch")
}

func TestTemplates(t *testing.T) {
	c := newCLI(t, map[string]string{
		".sprout/component.txt": "custom",
		".sprout/extra.txt":     "unused",
	})

	require.Equal(t, 0, c.run("templates"))

	out := c.out.String()
	assert.Contains(t, out, "component.txt")
	assert.Contains(t, out, "override of built-in")
	assert.Contains(t, out, testutil.Path(".sprout", "component.txt"))
	assert.Contains(t, out, "styles/css.txt")
	assert.Contains(t, out, "unused override")
}

func TestUnknownCommand(t *testing.T) {
	c := newCLI(t, nil)

	assert.Equal(t, 1, c.run("bogus"))
	assert.Contains(t, c.out.String(), "unknown command")
}

func TestProjectFlag(t *testing.T) {
	c := newCLI(t, nil)
	require.NoError(t, afero.WriteFile(c.fs, "/other/package.json", []byte("{}"), 0644))
	require.NoError(t, afero.WriteFile(c.fs, "/other/sprout.yml", []byte("useFolder: never\n"), 0644))

	require.Equal(t, 0, c.run("config", "--project", "/other"))
	assert.Contains(t, c.out.String(), "useFolder: never")
}
