package http

import (
	"errors"

	"lucas-asistente/internal/assistant"
)

// User-facing errors returned by this delivery layer. Kept in Spanish
// to match the assistant's voice.
var (
	errEmptyMessage         = errors.New("el mensaje no puede estar vacío")
	errConversationNotFound = errors.New("no encontré esa conversación")
	errOracleUnavailable    = errors.New("Lucas no puede pensar ahora mismo. Inténtalo de nuevo en un momento")
)

// mapError translates domain errors into user-facing ones. Unknown
// errors pass through and become a generic internal error response.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, assistant.ErrConversationNotFound):
		return errConversationNotFound
	case errors.Is(err, assistant.ErrOracleUnavailable):
		return errOracleUnavailable
	default:
		return err
	}
}
