package utils

// ValidationError reports invalid client input. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError reports failed authentication or insufficient permissions.
// Handlers map it to 401. The message is kept uniform for credential
// failures so it never reveals which field was wrong.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError reports a missing entity. Handlers map it to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError reports a state conflict, such as a slot taken between
// resolve and confirm. Handlers map it to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
