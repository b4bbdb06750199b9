package pipeline

import (
	"strings"

	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
	"github.com/simonhull/firebird-suite/sprout/logger"
)

// GenericMessage is shown for failures without a user message.
const GenericMessage = "An unexpected error occurred."

const separator = "----------------------------------------"

// Handle reports a Run error to the user and the log. It returns nil when
// the run ended because the user canceled, and err otherwise.
func (p *Pipeline) Handle(err error) error {
	if err == nil {
		return nil
	}

	log := p.deps.Log
	kind := apperr.KindOf(err)

	switch kind {
	case apperr.KindCanceled:
		log.Info("User cancelled the operation.", logger.F("detail", err.Error()))
		return nil

	case apperr.KindEnvironment, apperr.KindInvalidName, apperr.KindComponentExists, apperr.KindTemplate:
		msg := apperr.UserMessage(err)
		if msg == "" {
			msg = GenericMessage
		}
		p.logFailure(kind, msg, err)
		p.notify(msg)

	case apperr.KindUnknown:
		p.logFailure(kind, GenericMessage, err)
		p.notify(GenericMessage)
	}

	return err
}

func (p *Pipeline) logFailure(kind apperr.Kind, userMsg string, err error) {
	p.deps.Log.Error(strings.Join([]string{
		separator,
		"User Message: " + userMsg,
		"Details: " + err.Error(),
	}, "\n"), logger.F("kind", kind.String()))
}

func (p *Pipeline) notify(msg string) {
	p.deps.Printer.Error(msg)
	if p.deps.LogPath != "" {
		p.deps.Printer.Step("See " + p.deps.LogPath + " for details.")
	}
}
