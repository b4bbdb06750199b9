// Package apperr defines the error kinds the generation pipeline can end
// with. Each kind carries a technical message for the log and a short
// message that is safe to show the user.
package apperr

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/sprout/input"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindEnvironment
	KindInvalidName
	KindComponentExists
	KindTemplate
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindInvalidName:
		return "invalid_name"
	case KindComponentExists:
		return "component_exists"
	case KindTemplate:
		return "template"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Error is a classified pipeline error.
type Error struct {
	Kind    Kind
	Msg     string // technical detail
	UserMsg string // shown to the user; may be empty
	Err     error  // cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Environment reports that the host cannot run the pipeline (no workspace,
// unreadable settings).
func Environment(msg, userMsg string) *Error {
	return &Error{Kind: KindEnvironment, Msg: msg, UserMsg: userMsg}
}

// InvalidName reports a component name that cannot become an identifier.
func InvalidName(msg, userMsg string) *Error {
	return &Error{Kind: KindInvalidName, Msg: msg, UserMsg: userMsg}
}

// ComponentExists reports that the target folder or file is already there.
func ComponentExists(msg, userMsg string) *Error {
	return &Error{Kind: KindComponentExists, Msg: msg, UserMsg: userMsg}
}

// Template reports a template that could not be found in any location.
func Template(msg, userMsg string) *Error {
	return &Error{Kind: KindTemplate, Msg: msg, UserMsg: userMsg}
}

// Canceled reports that the user dismissed a prompt. The result always
// matches input.ErrCanceled under errors.Is.
func Canceled(msg string) *Error {
	return &Error{Kind: KindCanceled, Msg: msg, Err: input.ErrCanceled}
}

// FromPrompt converts a prompt error. Dismissal becomes a Canceled error
// mentioning what was being asked; anything else is wrapped unchanged.
func FromPrompt(err error, question string) error {
	if errors.Is(err, input.ErrCanceled) {
		return Canceled("user dismissed " + question)
	}
	return fmt.Errorf("%s prompt: %w", question, err)
}

// KindOf returns the kind of the first *Error in err's chain, KindCanceled
// for a bare prompt dismissal or an interrupted context, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, input.ErrCanceled) || errors.Is(err, context.Canceled) {
		return KindCanceled
	}
	return KindUnknown
}

// UserMessage returns the user-facing message of the first *Error in err's
// chain, or "".
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.UserMsg
	}
	return ""
}
