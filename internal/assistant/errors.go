package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyMessage         = errors.New("message text is empty")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrOracleUnavailable    = errors.New("language model call failed")
)
