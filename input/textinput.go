package input

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// textModel is the BubbleTea model for free-text prompts.
type textModel struct {
	prompt    string
	field     textinput.Model
	validate  func(string) error
	err       error
	submitted bool
	canceled  bool
}

func newTextModel(spec InputSpec) textModel {
	field := textinput.New()
	field.Placeholder = spec.Placeholder
	field.SetValue(spec.Value)
	field.CursorEnd()
	field.Focus()

	m := textModel{
		prompt:   spec.Prompt,
		field:    field,
		validate: spec.Validate,
	}
	m.err = m.check()
	return m
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.err != nil {
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	m.err = m.check()
	return m, cmd
}

func (m textModel) check() error {
	value := m.field.Value()
	if m.validate == nil || value == "" {
		return nil
	}
	return m.validate(value)
}

func (m textModel) View() string {
	if m.submitted {
		return promptStyle.Render(m.prompt) + " " + m.field.Value() + "\n"
	}

	view := promptStyle.Render(m.prompt) + "\n" + m.field.View() + "\n"
	if m.err != nil {
		view += errStyle.Render(m.err.Error()) + "\n"
	} else {
		view += hintStyle.Render("[Enter] Confirm    [Esc] Cancel") + "\n"
	}
	return view
}

func runTextInput(ctx context.Context, in io.Reader, out io.Writer, spec InputSpec) (string, error) {
	p := tea.NewProgram(newTextModel(spec),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("failed to show prompt: %w", err)
	}

	result := final.(textModel)
	if result.canceled || !result.submitted {
		return "", ErrCanceled
	}
	return result.field.Value(), nil
}
