package dto

// ValidationError is a client-side validation failure. It never reaches the
// network and maps to a 400 in the error handler middleware.
type ValidationError struct {
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ChatBusyError rejects a question submitted while a previous one is still in
// flight. Questions are never queued; the caller retries after resolution.
type ChatBusyError struct{}

func (e *ChatBusyError) Error() string {
	return "A previous question is still being answered. Please wait for it to finish."
}

// SessionNotFoundError covers expired or never-created sessions.
type SessionNotFoundError struct{}

func (e *SessionNotFoundError) Error() string {
	return "Session not found or expired. Please process a video first."
}
