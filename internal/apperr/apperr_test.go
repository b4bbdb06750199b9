package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simonhull/firebird-suite/sprout/input"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"environment", Environment("no root", "open a folder"), KindEnvironment},
		{"invalid name", InvalidName("bad", "start with a letter"), KindInvalidName},
		{"exists", ComponentExists("dir exists", "already exists"), KindComponentExists},
		{"template", Template("missing", "not found"), KindTemplate},
		{"canceled", Canceled("dismissed"), KindCanceled},
		{"wrapped", fmt.Errorf("step: %w", InvalidName("bad", "")), KindInvalidName},
		{"bare prompt dismissal", fmt.Errorf("x: %w", input.ErrCanceled), KindCanceled},
		{"interrupted", fmt.Errorf("prettier cancelled: %w", context.Canceled), KindCanceled},
		{"plain error", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_Message(t *testing.T) {
	plain := Template("template styles/css.txt not found", "Template not found.")
	assert.Equal(t, "template styles/css.txt not found", plain.Error())

	wrapped := &Error{Kind: KindEnvironment, Msg: "reading settings", Err: errors.New("permission denied")}
	assert.Equal(t, "reading settings: permission denied", wrapped.Error())
}

func TestCanceled_MatchesPromptDismissal(t *testing.T) {
	err := Canceled("user dismissed filename prompt")

	assert.ErrorIs(t, err, input.ErrCanceled)
}

func TestFromPrompt(t *testing.T) {
	err := FromPrompt(input.ErrCanceled, "style prompt")
	assert.Equal(t, KindCanceled, KindOf(err))
	assert.Contains(t, err.Error(), "style prompt")

	readErr := errors.New("read /dev/stdin: input/output error")
	err = FromPrompt(readErr, "style")
	assert.Equal(t, KindUnknown, KindOf(err))
	assert.ErrorIs(t, err, readErr)
}

func TestUserMessage(t *testing.T) {
	err := fmt.Errorf("conflict: %w", ComponentExists("stat ok", "A folder named 'Card' already exists."))

	assert.Equal(t, "A folder named 'Card' already exists.", UserMessage(err))
	assert.Empty(t, UserMessage(errors.New("boom")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "component_exists", KindComponentExists.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
