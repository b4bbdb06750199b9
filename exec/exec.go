package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Executor runs external commands
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	env    []string
	dir    string

	// For mocking in tests
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Options configures command execution
type Options struct {
	Stdout io.Writer
	Stderr io.Writer // also receives spinner frames
	Env    []string  // Additional environment variables
	Dir    string    // Working directory
}

// NewExecutor creates an executor with sensible defaults
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return &Executor{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		env:         opts.Env,
		dir:         opts.Dir,
		commandFunc: exec.Command,
	}
}

// SplitCommand splits a configured command line such as "code --wait" into
// the program name and its arguments. Quoting is not interpreted.
func SplitCommand(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, errors.New("empty command")
	}
	return fields[0], fields[1:], nil
}

// Run executes a command, streaming its output to the executor's writers.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	return e.run(ctx, e.stdout, e.stderr, name, args)
}

// Output executes a command and returns what it wrote to stdout. On failure
// the command's stderr is folded into the error.
func (e *Executor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	if err := e.run(ctx, &stdout, &stderr, name, args); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

func (e *Executor) run(ctx context.Context, stdout, stderr io.Writer, name string, args []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s cancelled: %w", name, err)
	}

	cmd := e.commandFunc(name, args...)
	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		base := cmd.Env
		if base == nil {
			base = os.Environ()
		}
		cmd.Env = append(base, e.env...)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return notFoundError(err, name)
		}
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		<-errCh
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	}
}

// WithSpinner shows a spinner on the executor's stderr while fn runs and
// reports fn's result.
func (e *Executor) WithSpinner(ctx context.Context, message string, fn func(context.Context) error) error {
	p := tea.NewProgram(newProgressModel(message),
		tea.WithOutput(e.stderr),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)

	uiDone := make(chan struct{})
	go func() {
		defer close(uiDone)
		// Spinner failures never affect the result.
		_, _ = p.Run()
	}()

	err := fn(ctx)

	p.Send(progressDoneMsg{err: err})
	<-uiDone

	return err
}

// progressModel shows an animated line while work runs and a summary with
// the elapsed time once it finished.
type progressModel struct {
	spinner spinner.Model
	message string
	started time.Time

	finished bool
	elapsed  time.Duration
	err      error
}

type progressDoneMsg struct {
	err error
}

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	elapsedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newProgressModel(message string) *progressModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(progressStyle))
	return &progressModel{spinner: s, message: message, started: time.Now()}
}

func (m *progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDoneMsg:
		m.finished = true
		m.elapsed = time.Since(m.started)
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if !m.finished {
		return m.spinner.View() + " " + m.message + "..."
	}

	took := elapsedStyle.Render(fmt.Sprintf("(%s)", m.elapsed.Round(time.Millisecond)))
	if m.err != nil {
		return failStyle.Render("✗ "+m.message) + " " + took + "\n"
	}
	return okStyle.Render("✓ "+m.message) + " " + took + "\n"
}

func isCommandNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "no such file or directory")
}

// notFoundError points at the settings that name external commands.
func notFoundError(err error, name string) error {
	return fmt.Errorf("%w\n💡 '%s' is not installed or not on PATH. Install it, or change the editor, formatter or formatCommand setting in sprout.yml", err, name)
}
