// Package testutil holds fakes shared by Sprout's package tests.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/simonhull/firebird-suite/sprout/input"
)

// Answer is one scripted reply.
type Answer struct {
	Value string
	Err   error
}

// Say answers a prompt with v.
func Say(v string) Answer { return Answer{Value: v} }

// Dismiss answers a prompt as if the user pressed Esc.
func Dismiss() Answer { return Answer{Err: input.ErrCanceled} }

// Prompter is an input.Prompter that replays scripted answers in order and
// records every question it was asked.
//
// An Input answer that fails the prompt's validator is consumed and the next
// answer is tried, the way a terminal re-prompts.
type Prompter struct {
	mu      sync.Mutex
	answers []Answer

	Inputs  []input.InputSpec
	Selects []input.SelectSpec
}

// NewPrompter creates a Prompter that will reply with answers.
func NewPrompter(answers ...Answer) *Prompter {
	return &Prompter{answers: answers}
}

func (p *Prompter) Input(ctx context.Context, spec input.InputSpec) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Inputs = append(p.Inputs, spec)

	for {
		a, err := p.next(ctx, spec.Prompt)
		if err != nil || a.Err != nil {
			return "", firstErr(err, a.Err)
		}
		if a.Value == "" {
			return spec.Value, nil
		}
		if spec.Validate != nil && spec.Validate(a.Value) != nil {
			continue
		}
		return a.Value, nil
	}
}

func (p *Prompter) Select(ctx context.Context, spec input.SelectSpec) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Selects = append(p.Selects, spec)

	a, err := p.next(ctx, spec.Prompt)
	if err != nil || a.Err != nil {
		return "", firstErr(err, a.Err)
	}
	if !slices.Contains(spec.Options, a.Value) {
		return "", fmt.Errorf("scripted answer %q is not one of %v", a.Value, spec.Options)
	}
	return a.Value, nil
}

// Remaining returns the number of unused answers.
func (p *Prompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}

func (p *Prompter) next(ctx context.Context, prompt string) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	if len(p.answers) == 0 {
		return Answer{}, fmt.Errorf("unexpected prompt %q: no scripted answers left", prompt)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
