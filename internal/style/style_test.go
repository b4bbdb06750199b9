package style

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/sprout/input"
	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
	"github.com/simonhull/firebird-suite/sprout/internal/config"
	"github.com/simonhull/firebird-suite/sprout/internal/templates"
	tu "github.com/simonhull/firebird-suite/sprout/internal/testing/testutil"
)

type stubLoader map[string]string

func (s stubLoader) Load(id string) (string, error) {
	if v, ok := s[id]; ok {
		return v, nil
	}
	return "", apperr.Template("missing "+id, "missing")
}

var loader = stubLoader{
	templates.StyleCSS:  ".{{lowerName}} {}",
	templates.StyleSCSS: ".{{lowerName}} { h2 {} }",
}

func TestPlan_FixedSettings(t *testing.T) {
	tests := []struct {
		name    string
		setting config.StyleSetting
		tw      string
		want    Artifact
	}{
		{
			name:    "css",
			setting: config.StyleCSS,
			want: Artifact{
				Kind: CSS, FileName: "card.css", Content: ".card {}",
				Import: "import './card.css';\n", ClassName: "card",
			},
		},
		{
			name:    "scss",
			setting: config.StyleSCSS,
			want: Artifact{
				Kind: SCSS, FileName: "card.scss", Content: ".card { h2 {} }",
				Import: "import './card.scss';\n", ClassName: "card",
			},
		},
		{
			name:    "tailwind uses configured class verbatim",
			setting: config.StyleTailwind,
			tw:      "flex gap-2",
			want:    Artifact{Kind: Tailwind, ClassName: "flex gap-2"},
		},
		{
			name:    "none",
			setting: config.StyleNone,
			want:    Artifact{Kind: None, ClassName: "card"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := tu.NewPrompter()
			got, err := NewPlanner(prompter, loader).Plan(context.Background(), tt.setting, "card", tt.tw)

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, got.FileName != "", got.Content != "")
			assert.Empty(t, prompter.Selects)
			assert.Empty(t, prompter.Inputs)
		})
	}
}

func TestPlan_AskSelectsKind(t *testing.T) {
	prompter := tu.NewPrompter(tu.Say("SCSS"))

	got, err := NewPlanner(prompter, loader).Plan(context.Background(), config.StyleAsk, "navbar", "container")

	require.NoError(t, err)
	assert.Equal(t, SCSS, got.Kind)
	assert.Equal(t, "navbar.scss", got.FileName)
	require.Len(t, prompter.Selects, 1)
	assert.Equal(t, []string{"CSS", "SCSS", "Tailwind", "None"}, prompter.Selects[0].Options)
}

func TestPlan_AskDismissedIsCanceled(t *testing.T) {
	prompter := tu.NewPrompter(tu.Dismiss())

	_, err := NewPlanner(prompter, loader).Plan(context.Background(), config.StyleAsk, "card", "container")

	assert.Equal(t, apperr.KindCanceled, apperr.KindOf(err))
}

func TestPlan_TailwindAsk(t *testing.T) {
	tests := []struct {
		name   string
		answer tu.Answer
		want   string
	}{
		{name: "typed class", answer: tu.Say("p-4 rounded"), want: "p-4 rounded"},
		{name: "dismissed", answer: tu.Dismiss(), want: "container"},
		{name: "blank", answer: tu.Say("   "), want: "container"},
		{name: "accepted prefill", answer: tu.Say(""), want: "container"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := tu.NewPrompter(tt.answer)

			got, err := NewPlanner(prompter, loader).Plan(context.Background(), config.StyleTailwind, "card", config.AskValue)

			require.NoError(t, err)
			assert.Equal(t, Artifact{Kind: Tailwind, ClassName: tt.want}, got)
			require.Len(t, prompter.Inputs, 1)
			assert.Equal(t, "container", prompter.Inputs[0].Value)
		})
	}
}

func TestPlan_TailwindPromptFailure(t *testing.T) {
	boom := errors.New("terminal gone")
	prompter := tu.NewPrompter(tu.Answer{Err: boom})

	_, err := NewPlanner(prompter, loader).Plan(context.Background(), config.StyleTailwind, "card", config.AskValue)

	assert.ErrorIs(t, err, boom)
}

func TestPlan_TemplateErrorPropagates(t *testing.T) {
	_, err := NewPlanner(tu.NewPrompter(), stubLoader{}).Plan(context.Background(), config.StyleCSS, "card", "")

	assert.Equal(t, apperr.KindTemplate, apperr.KindOf(err))
}

func TestPlan_WithEngineOverride(t *testing.T) {
	fs := tu.NewWorkspace(t, map[string]string{".sprout/styles/css.txt": "/* {{lowerName}} */"})
	engine := templates.NewEngine(fs, tu.WorkspaceRoot)

	got, err := NewPlanner(tu.NewPrompter(), engine).Plan(context.Background(), config.StyleCSS, "card", "")

	require.NoError(t, err)
	assert.Equal(t, "/* card */", got.Content)
}

var _ input.Prompter = (*tu.Prompter)(nil)
