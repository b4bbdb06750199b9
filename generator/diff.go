package generator

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

type lineOp int

const (
	opUnchanged lineOp = iota
	opAdded
	opRemoved
)

// diffLine is one step of an edit script. oldIdx and newIdx are the 0-based
// positions in each input at which the step applies.
type diffLine struct {
	op     lineOp
	oldIdx int
	newIdx int
	text   string
}

type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []diffLine
}

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

// myers computes the shortest edit script turning a into b.
// See "An O(ND) Difference Algorithm and Its Variations", Myers 1986.
func myers(a, b []string) []diffLine {
	n, m := len(a), len(b)
	limit := n + m
	if limit == 0 {
		return nil
	}

	// v is indexed by diagonal k = x - y, shifted so k-1 and k+1 stay in range.
	off := limit + 1
	v := make([]int, 2*limit+3)
	var trace [][]int

	for d := 0; d <= limit; d++ {
		trace = append(trace, slices.Clone(v))

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k

			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x

			if x >= n && y >= m {
				return backtrack(a, b, trace, off)
			}
		}
	}

	return nil
}

func backtrack(a, b []string, trace [][]int, off int) []diffLine {
	x, y := len(a), len(b)
	var script []diffLine

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		prevK := k - 1
		if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
			prevK = k + 1
		}
		prevX := v[off+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			script = append(script, diffLine{op: opUnchanged, oldIdx: x, newIdx: y, text: a[x]})
		}

		if d == 0 {
			break
		}
		if x == prevX {
			y--
			script = append(script, diffLine{op: opAdded, oldIdx: x, newIdx: y, text: b[y]})
		} else {
			x--
			script = append(script, diffLine{op: opRemoved, oldIdx: x, newIdx: y, text: a[x]})
		}
	}

	slices.Reverse(script)
	return script
}

// UnifiedDiff renders the line differences between before and after as a
// styled unified diff. It returns "" when the contents are identical.
func UnifiedDiff(path, before, after string) string {
	if before == after {
		return ""
	}

	hunks := buildHunks(myers(splitLines(before), splitLines(after)))
	if len(hunks) == 0 {
		return ""
	}

	width := terminalWidth() - 2

	var b strings.Builder
	b.WriteString(headerStyle.Render("--- a/"+path) + "\n")
	b.WriteString(headerStyle.Render("+++ b/"+path) + "\n")

	for _, h := range hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
		b.WriteString(hunkStyle.Render(header) + "\n")

		for _, line := range h.lines {
			text := truncate(expandTabs(line.text), width)
			switch line.op {
			case opAdded:
				b.WriteString(addedStyle.Render("+"+text) + "\n")
			case opRemoved:
				b.WriteString(removedStyle.Render("-"+text) + "\n")
			default:
				b.WriteString(" " + text + "\n")
			}
		}
	}

	return b.String()
}

// buildHunks groups an edit script into hunks. Changes separated by no more
// than twice the context size share a hunk.
func buildHunks(script []diffLine) []hunk {
	var hunks []hunk

	for i := 0; i < len(script); {
		if script[i].op == opUnchanged {
			i++
			continue
		}

		last := i
		for j := i; j < len(script); j++ {
			if script[j].op != opUnchanged {
				last = j
			} else if j-last > 2*contextLines {
				break
			}
		}

		start := max(i-contextLines, 0)
		stop := min(last+contextLines+1, len(script))
		hunks = append(hunks, newHunk(script[start:stop]))
		i = stop
	}

	return hunks
}

func newHunk(lines []diffLine) hunk {
	h := hunk{lines: lines}
	for _, l := range lines {
		if l.op != opAdded {
			h.oldCount++
		}
		if l.op != opRemoved {
			h.newCount++
		}
	}

	h.oldStart = lines[0].oldIdx
	if h.oldCount > 0 {
		h.oldStart++
	}
	h.newStart = lines[0].newIdx
	if h.newCount > 0 {
		h.newStart++
	}
	return h
}

// splitLines splits s into lines without their terminators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func truncate(s string, width int) string {
	if width < 4 || utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-3]) + "..."
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
