package generator

import (
	"fmt"
	"slices"
	"strings"
)

// TextEdit replaces the lines [StartLine, EndLine) of a document (0-based,
// counted before any edit is applied) with NewText. StartLine == EndLine is
// a pure insertion.
type TextEdit struct {
	StartLine int
	EndLine   int
	NewText   string
}

// ComputeEdits returns the minimal set of line edits that turn before into
// after. Identical inputs yield no edits.
func ComputeEdits(before, after string) []TextEdit {
	if before == after {
		return nil
	}

	var edits []TextEdit
	var cur *TextEdit
	var text strings.Builder

	flush := func(end int) {
		if cur == nil {
			return
		}
		cur.EndLine = end
		cur.NewText = text.String()
		edits = append(edits, *cur)
		cur = nil
		text.Reset()
	}

	for _, line := range myers(rawLines(before), rawLines(after)) {
		switch line.op {
		case opUnchanged:
			flush(line.oldIdx)
		case opRemoved:
			if cur == nil {
				cur = &TextEdit{StartLine: line.oldIdx}
			}
		case opAdded:
			if cur == nil {
				cur = &TextEdit{StartLine: line.oldIdx}
			}
			text.WriteString(line.text)
		}
	}
	flush(len(rawLines(before)))

	return edits
}

// ApplyEdits applies non-overlapping edits to content.
func ApplyEdits(content string, edits []TextEdit) (string, error) {
	lines := rawLines(content)

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b TextEdit) int { return a.StartLine - b.StartLine })

	var b strings.Builder
	next := 0
	for _, e := range sorted {
		if e.StartLine < next || e.EndLine < e.StartLine || e.EndLine > len(lines) {
			return "", fmt.Errorf("invalid edit [%d,%d) for a %d-line document", e.StartLine, e.EndLine, len(lines))
		}
		for _, l := range lines[next:e.StartLine] {
			b.WriteString(l)
		}
		b.WriteString(e.NewText)
		next = e.EndLine
	}
	for _, l := range lines[next:] {
		b.WriteString(l)
	}

	return b.String(), nil
}

// rawLines splits s into lines that keep their "\n" terminators, so joining
// them reproduces s exactly.
func rawLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
