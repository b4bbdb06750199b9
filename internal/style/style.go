// Package style decides how a new component is styled and prepares the
// stylesheet, if any.
package style

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/sprout/input"
	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
	"github.com/simonhull/firebird-suite/sprout/internal/config"
	"github.com/simonhull/firebird-suite/sprout/internal/templates"
)

// Kind is a concrete styling approach.
type Kind string

const (
	CSS      Kind = "CSS"
	SCSS     Kind = "SCSS"
	Tailwind Kind = "Tailwind"
	None     Kind = "None"
)

// Kinds are offered in this order when the setting is ask.
var Kinds = []Kind{CSS, SCSS, Tailwind, None}

// DefaultTailwindClass is used when the Tailwind prompt is dismissed or left
// empty.
const DefaultTailwindClass = "container"

// Artifact is the styling outcome. FileName and Content are set together,
// for CSS and SCSS only.
type Artifact struct {
	Kind      Kind
	FileName  string
	Content   string
	Import    string // line prepended to the component, with its newline
	ClassName string
}

// HasFile reports whether a stylesheet must be written.
func (a Artifact) HasFile() bool {
	return a.FileName != ""
}

// TemplateLoader is the part of templates.Engine the planner needs.
type TemplateLoader interface {
	Load(id string) (string, error)
}

// Planner turns the style setting into an Artifact.
type Planner struct {
	prompter input.Prompter
	loader   TemplateLoader
}

// NewPlanner creates a Planner.
func NewPlanner(p input.Prompter, loader TemplateLoader) *Planner {
	return &Planner{prompter: p, loader: loader}
}

// Plan resolves setting (asking when it is ask) and prepares the stylesheet
// for a component whose lowercase name is lower. twDefault is the configured
// Tailwind class list, or "ask".
func (p *Planner) Plan(ctx context.Context, setting config.StyleSetting, lower, twDefault string) (Artifact, error) {
	kind, err := p.kind(ctx, setting)
	if err != nil {
		return Artifact{}, err
	}

	switch kind {
	case Tailwind:
		class, err := p.tailwindClass(ctx, twDefault)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Kind: Tailwind, ClassName: class}, nil

	case None:
		return Artifact{Kind: None, ClassName: lower}, nil

	case CSS, SCSS:
		ext, id := ".css", templates.StyleCSS
		if kind == SCSS {
			ext, id = ".scss", templates.StyleSCSS
		}

		tmpl, err := p.loader.Load(id)
		if err != nil {
			return Artifact{}, err
		}

		file := lower + ext
		return Artifact{
			Kind:      kind,
			FileName:  file,
			Content:   templates.Render(tmpl, map[string]string{"lowerName": lower}),
			Import:    fmt.Sprintf("import './%s';\n", file),
			ClassName: lower,
		}, nil
	}

	return Artifact{}, fmt.Errorf("unsupported style kind %q", kind)
}

func (p *Planner) kind(ctx context.Context, setting config.StyleSetting) (Kind, error) {
	switch setting {
	case config.StyleCSS:
		return CSS, nil
	case config.StyleSCSS:
		return SCSS, nil
	case config.StyleTailwind:
		return Tailwind, nil
	case config.StyleNone:
		return None, nil
	}

	options := make([]string, len(Kinds))
	for i, k := range Kinds {
		options[i] = string(k)
	}

	pick, err := p.prompter.Select(ctx, input.SelectSpec{
		Prompt:  "Choose style type",
		Options: options,
	})
	if err != nil {
		return "", apperr.FromPrompt(err, "style prompt")
	}
	return Kind(pick), nil
}

func (p *Planner) tailwindClass(ctx context.Context, twDefault string) (string, error) {
	if twDefault != config.AskValue {
		return twDefault, nil
	}

	class, err := p.prompter.Input(ctx, input.InputSpec{
		Prompt: "Enter Tailwind class",
		Value:  DefaultTailwindClass,
	})
	if errors.Is(err, input.ErrCanceled) {
		return DefaultTailwindClass, nil
	}
	if err != nil {
		return "", fmt.Errorf("tailwind class prompt: %w", err)
	}

	if class = strings.TrimSpace(class); class == "" {
		return DefaultTailwindClass, nil
	}
	return class, nil
}
