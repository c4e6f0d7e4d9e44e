// Package errors provides the closed set of error conditions reported by the
// API client. Callers classify with errors.As instead of probing payloads.
package errors

import "fmt"

type (
	// TransportError wraps a network-level failure that occurred before any
	// HTTP status was received.
	TransportError struct {
		Err error
	}
	// AuthError reports a request rejected for missing or invalid credentials.
	AuthError struct {
		Status int
	}
	// NotFoundError reports a short code unknown to the backend.
	NotFoundError struct {
		Code string
	}
	// ConflictError reports a custom alias that is already taken.
	ConflictError struct {
		Alias string
		Msg   string
	}
	// ServerMessageError carries a structured error message from the backend,
	// shown to the user verbatim.
	ServerMessageError struct {
		Msg string
	}
	// UnknownError reports an unexpected status with no usable payload.
	UnknownError struct {
		Status int
	}
)

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed with status %d", e.Status)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Code)
}

func (e *ConflictError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("alias %s already exists", e.Alias)
}

func (e *ServerMessageError) Error() string {
	return e.Msg
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("server returned unexpected status %d", e.Status)
}
