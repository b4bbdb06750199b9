package input

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)

// menuModel is the BubbleTea model for single-choice prompts.
type menuModel struct {
	prompt   string
	choices  []string
	filter   string
	visible  []string
	cursor   int
	selected *string
}

func newMenuModel(spec SelectSpec) menuModel {
	return menuModel{
		prompt:  spec.Prompt,
		choices: spec.Options,
		visible: spec.Options,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}

	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case tea.KeyEnter:
		if len(m.visible) == 0 {
			return m, nil
		}
		choice := m.visible[m.cursor]
		m.selected = &choice
		return m, tea.Quit

	case tea.KeyBackspace:
		if m.filter != "" {
			r := []rune(m.filter)
			m.applyFilter(string(r[:len(r)-1]))
		}

	case tea.KeyRunes, tea.KeySpace:
		m.applyFilter(m.filter + string(key.Runes))
	}

	return m, nil
}

func (m *menuModel) applyFilter(filter string) {
	m.filter = filter
	m.visible = filterOptions(filter, m.choices)
	m.cursor = 0
}

func (m menuModel) View() string {
	if m.selected != nil {
		return promptStyle.Render(m.prompt) + " " + *m.selected + "\n"
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))
	if m.filter != "" {
		b.WriteString(" " + hintStyle.Render(fmt.Sprintf("[filter: %s]", m.filter)))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  [↑/↓] Navigate    [Enter] Select    [Esc] Cancel    type to filter") + "\n\n")

	if len(m.visible) == 0 {
		b.WriteString(hintStyle.Render("  no matches") + "\n")
	}
	for i, choice := range m.visible {
		if i == m.cursor {
			b.WriteString("  " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("    " + choice + "\n")
		}
	}

	return b.String()
}

// filterOptions returns the options fuzzy-matching filter, best match first.
// Ties keep the original option order.
func filterOptions(filter string, options []string) []string {
	if filter == "" {
		return options
	}

	ranks := fuzzy.RankFindFold(filter, options)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}

func runMenu(ctx context.Context, in io.Reader, out io.Writer, spec SelectSpec) (string, error) {
	p := tea.NewProgram(newMenuModel(spec),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("failed to show menu: %w", err)
	}

	result := final.(menuModel)
	if result.selected == nil {
		return "", ErrCanceled
	}
	return *result.selected, nil
}
