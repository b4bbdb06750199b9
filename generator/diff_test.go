package generator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff_Identical(t *testing.T) {
	assert.Empty(t, UnifiedDiff("a.tsx", "line 1\nline 2\n", "line 1\nline 2\n"))
}

func TestUnifiedDiff_EmptyFiles(t *testing.T) {
	added := UnifiedDiff("a.tsx", "", "line 1\nline 2\n")
	assert.Contains(t, added, "+line 1")
	assert.Contains(t, added, "+line 2")
	assert.Contains(t, added, "@@ -0,0 +1,2 @@")

	removed := UnifiedDiff("a.tsx", "line 1\nline 2\n", "")
	assert.Contains(t, removed, "-line 1")
	assert.Contains(t, removed, "@@ -1,2 +0,0 @@")
}

func TestUnifiedDiff_Modification(t *testing.T) {
	before := "a\nb\nc\nd\n"
	after := "a\nB\nc\nd\n"

	diff := UnifiedDiff("Card.tsx", before, after)

	assert.Contains(t, diff, "--- a/Card.tsx")
	assert.Contains(t, diff, "+++ b/Card.tsx")
	assert.Contains(t, diff, "@@ -1,4 +1,4 @@")
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+B")
	assert.Contains(t, diff, " a")
}

func TestUnifiedDiff_SeparateHunks(t *testing.T) {
	var before, after []string
	for i := range 20 {
		line := strings.Repeat("x", i+1)
		before = append(before, line)
		after = append(after, line)
	}
	after[1] = "changed near the top"
	after[18] = "changed near the bottom"

	diff := UnifiedDiff("f", strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n")

	assert.Equal(t, 2, strings.Count(diff, "@@ -"))
}

func TestMyers_ShortestScript(t *testing.T) {
	script := myers([]string{"a", "b", "c"}, []string{"a", "c", "d"})

	var ops []lineOp
	for _, l := range script {
		ops = append(ops, l.op)
	}
	assert.Equal(t, []lineOp{opUnchanged, opRemoved, opUnchanged, opAdded}, ops)
}

func TestComputeEdits(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		want   []TextEdit
	}{
		{
			name:   "identical",
			before: "a\nb\n",
			after:  "a\nb\n",
			want:   nil,
		},
		{
			name:   "replace one line",
			before: "a\nb\nc\n",
			after:  "a\nB\nc\n",
			want:   []TextEdit{{StartLine: 1, EndLine: 2, NewText: "B\n"}},
		},
		{
			name:   "insert at end",
			before: "a\n",
			after:  "a\nb\n",
			want:   []TextEdit{{StartLine: 1, EndLine: 1, NewText: "b\n"}},
		},
		{
			name:   "delete in the middle",
			before: "a\nb\nc\n",
			after:  "a\nc\n",
			want:   []TextEdit{{StartLine: 1, EndLine: 2, NewText: ""}},
		},
		{
			name:   "add trailing newline",
			before: "a",
			after:  "a\n",
			want:   []TextEdit{{StartLine: 0, EndLine: 1, NewText: "a\n"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEdits(tt.before, tt.after)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeEdits() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyEdits_RoundTrip(t *testing.T) {
	before := "import './card.css';\nexport default function Card(props){\nreturn <div className=\"card\"></div>\n}\n"
	after := "import './card.css';\n\nexport default function Card(props) {\n  return <div className=\"card\"></div>;\n}\n"

	got, err := ApplyEdits(before, ComputeEdits(before, after))

	require.NoError(t, err)
	assert.Equal(t, after, got)
}

func TestApplyEdits_Invalid(t *testing.T) {
	_, err := ApplyEdits("a\nb\n", []TextEdit{{StartLine: 1, EndLine: 5}})
	assert.Error(t, err)

	_, err = ApplyEdits("a\nb\n", []TextEdit{{StartLine: 0, EndLine: 2}, {StartLine: 1, EndLine: 2}})
	assert.Error(t, err, "overlapping edits")
}
