package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled notifications to a single writer.
type Printer struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

// New returns a Printer bound to w. A nil writer means stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// SetVerbose enables or disables verbose output for debugging.
func (p *Printer) SetVerbose(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verbose = v
}

// IsVerbose reports whether verbose output is enabled.
func (p *Printer) IsVerbose() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.verbose
}

// Success prints a completed-operation message.
func (p *Printer) Success(msg string) {
	p.println(successStyle.Render("🌱 " + msg))
}

// Error prints a failure that needs the user's attention.
func (p *Printer) Error(msg string) {
	p.println(errorStyle.Render("❌ " + msg))
}

// Warn prints a recoverable problem. The operation it relates to still succeeded.
func (p *Printer) Warn(msg string) {
	p.println(warnStyle.Render("⚠️  " + msg))
}

// Info prints a status update or explanation.
func (p *Printer) Info(msg string) {
	p.println(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented sub-item, such as a created file.
func (p *Printer) Step(msg string) {
	p.println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.IsVerbose() {
		p.println(stepStyle.Render("🔍 " + msg))
	}
}

func (p *Printer) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, s)
}

var std = New(os.Stdout)

// Default returns the stdout Printer used by the package-level helpers.
func Default() *Printer { return std }

// SetVerbose toggles verbose mode on the default Printer.
func SetVerbose(v bool) { std.SetVerbose(v) }

// Success prints through the default Printer.
func Success(msg string) { std.Success(msg) }

// Error prints through the default Printer.
func Error(msg string) { std.Error(msg) }

// Warn prints through the default Printer.
func Warn(msg string) { std.Warn(msg) }

// Info prints through the default Printer.
func Info(msg string) { std.Info(msg) }

// Step prints through the default Printer.
func Step(msg string) { std.Step(msg) }

// Verbose prints through the default Printer.
func Verbose(msg string) { std.Verbose(msg) }
