package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name  string
		print func(*Printer, string)
		mark  string
	}{
		{"success", (*Printer).Success, "🌱"},
		{"error", (*Printer).Error, "❌"},
		{"warn", (*Printer).Warn, "⚠️"},
		{"info", (*Printer).Info, "ℹ️"},
		{"step", (*Printer).Step, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(New(&buf), "Test message")

			out := buf.String()
			if !strings.Contains(out, tt.mark) {
				t.Errorf("%s output should contain %q, got %q", tt.name, tt.mark, out)
			}
			if !strings.Contains(out, "Test message") {
				t.Errorf("%s output should contain the message, got %q", tt.name, out)
			}
		})
	}
}

func TestPrinter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Verbose("Debug message")
	if buf.Len() != 0 {
		t.Error("Verbose output should be empty when verbose mode is off")
	}

	p.SetVerbose(true)
	p.Verbose("Debug message")

	if !strings.Contains(buf.String(), "🔍") {
		t.Error("Verbose output should contain magnifying glass emoji when enabled")
	}
	if !strings.Contains(buf.String(), "Debug message") {
		t.Error("Verbose output should contain the message when enabled")
	}
}

func TestSetVerbose_Default(t *testing.T) {
	SetVerbose(true)
	if !Default().IsVerbose() {
		t.Error("SetVerbose(true) should enable verbose mode")
	}

	SetVerbose(false)
	if Default().IsVerbose() {
		t.Error("SetVerbose(false) should disable verbose mode")
	}
}
