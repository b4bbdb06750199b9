package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrCanceled is returned when the user dismisses a prompt without answering.
var ErrCanceled = errors.New("prompt dismissed")

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
)

// Prompter asks the user questions.
type Prompter interface {
	Input(ctx context.Context, spec InputSpec) (string, error)
	Select(ctx context.Context, spec SelectSpec) (string, error)
}

// InputSpec describes a free-text question.
type InputSpec struct {
	Prompt      string
	Placeholder string // shown greyed out while the field is empty
	Value       string // initial value; returned when the user submits nothing

	// Validate runs on every change. A non-nil error blocks submission and its
	// message is shown next to the field.
	Validate func(string) error
}

// SelectSpec describes a single-choice question.
type SelectSpec struct {
	Prompt  string
	Options []string
}

// Terminal is the Prompter used by the CLI.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// NewTerminal creates a Prompter on stdin/stdout. Rich prompts are used only
// when stdin is a terminal.
func NewTerminal() *Terminal {
	return &Terminal{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewLineTerminal creates a line-oriented Prompter over arbitrary streams.
func NewLineTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Input asks for free text.
func (t *Terminal) Input(ctx context.Context, spec InputSpec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if t.interactive {
		return runTextInput(ctx, t.in, t.out, spec)
	}
	return t.lineInput(spec)
}

// Select asks the user to pick one of spec.Options.
func (t *Terminal) Select(ctx context.Context, spec SelectSpec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(spec.Options) == 0 {
		return "", fmt.Errorf("select %q: no options", spec.Prompt)
	}
	if t.interactive {
		return runMenu(ctx, t.in, t.out, spec)
	}
	return t.lineSelect(spec)
}

func (t *Terminal) reader() *bufio.Reader {
	if br, ok := t.in.(*bufio.Reader); ok {
		return br
	}
	br := bufio.NewReader(t.in)
	t.in = br
	return br
}

func (t *Terminal) lineInput(spec InputSpec) (string, error) {
	reader := t.reader()

	for {
		hint := spec.Value
		if hint == "" {
			hint = spec.Placeholder
		}
		if hint != "" {
			fmt.Fprint(t.out, promptStyle.Render(spec.Prompt)+" "+
				hintStyle.Render(fmt.Sprintf("(%s)", hint))+": ")
		} else {
			fmt.Fprint(t.out, promptStyle.Render(spec.Prompt)+": ")
		}

		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			if errors.Is(err, io.EOF) {
				return "", ErrCanceled
			}
			return "", fmt.Errorf("reading input: %w", err)
		}

		value := strings.TrimSpace(line)
		if value == "" {
			value = spec.Value
		}

		if spec.Validate != nil && value != "" {
			if verr := spec.Validate(value); verr != nil {
				fmt.Fprintln(t.out, errStyle.Render("  "+verr.Error()))
				if err != nil {
					return "", ErrCanceled
				}
				continue
			}
		}
		return value, nil
	}
}

func (t *Terminal) lineSelect(spec SelectSpec) (string, error) {
	reader := t.reader()

	for {
		fmt.Fprintln(t.out, promptStyle.Render(spec.Prompt))
		for i, opt := range spec.Options {
			fmt.Fprintf(t.out, "  %s %s\n", hintStyle.Render(strconv.Itoa(i+1)+")"), opt)
		}
		fmt.Fprint(t.out, hintStyle.Render("Choice: "))

		line, err := reader.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer == "" {
			if err != nil && !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("reading input: %w", err)
			}
			return "", ErrCanceled
		}

		if choice, ok := matchChoice(answer, spec.Options); ok {
			return choice, nil
		}

		fmt.Fprintln(t.out, errStyle.Render(fmt.Sprintf("  %q is not one of the options", answer)))
		if err != nil {
			return "", ErrCanceled
		}
	}
}

// matchChoice resolves a typed answer: a 1-based index, an exact label
// (case-insensitive) or the single best fuzzy match.
func matchChoice(answer string, options []string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}

	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			return opt, true
		}
	}

	if matches := filterOptions(answer, options); len(matches) == 1 {
		return matches[0], true
	}
	return "", false
}
