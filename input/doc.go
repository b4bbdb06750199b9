// Package input provides interactive terminal input utilities.
//
// # Overview
//
// Every question Sprout asks goes through a Prompter. The two primitives are
// free-text input with inline validation and single choice from an ordered
// list. Both report a dismissed prompt as ErrCanceled so callers can decide
// whether dismissal aborts the operation or falls back to a default.
//
// # Usage
//
//	p := input.NewTerminal()
//
//	name, err := p.Input(ctx, input.InputSpec{
//	    Prompt:      "Component filename",
//	    Placeholder: "Navbar",
//	    Validate:    naming.ValidateFilename,
//	})
//	if errors.Is(err, input.ErrCanceled) {
//	    // user pressed Esc
//	}
//
//	kind, err := p.Select(ctx, input.SelectSpec{
//	    Prompt:  "Choose style type",
//	    Options: []string{"CSS", "SCSS", "Tailwind", "None"},
//	})
//
// # Modes
//
// When stdin is a terminal, prompts are bubbletea programs: a text field that
// shows validation errors as you type, and a menu you can navigate with the
// arrow keys or narrow down by typing (fuzzy matched). When stdin is not a
// terminal (pipes, CI), prompts fall back to reading lines; end of input
// counts as dismissal.
//
// # Styling
//
// The package uses lipgloss for consistent terminal styling:
//   - Prompts are displayed in cyan and bold
//   - Hints (defaults, key help) are displayed in gray
//   - Validation errors are displayed in red
package input
