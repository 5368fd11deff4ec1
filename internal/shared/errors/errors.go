package errors

import (
	"errors"
	"fmt"
)

// Error kinds for the failure modes the console distinguishes.
type ErrorKind string

const (
	// KindTransport covers network-level failures: connection refused,
	// timeouts, DNS errors. The request never produced a usable response.
	KindTransport ErrorKind = "TRANSPORT_ERROR"
	// KindStatus covers non-success HTTP statuses from the backend,
	// optionally carrying the server-provided message.
	KindStatus ErrorKind = "STATUS_ERROR"
	// KindValidation covers local input validation; these never reach
	// the network layer.
	KindValidation ErrorKind = "VALIDATION_ERROR"
	// KindCredential covers credential decode failures; these degrade to
	// the unauthenticated state and are never surfaced to the user.
	KindCredential ErrorKind = "CREDENTIAL_ERROR"
	// KindInternal covers everything else.
	KindInternal ErrorKind = "INTERNAL_ERROR"
)

// genericFailureMessage is shown when the backend returns a non-success
// status without a message field.
const genericFailureMessage = "Request failed"

// Error is a typed application error carrying a message safe to show to
// the user alongside the wrapped cause.
type Error struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
	Component  string    `json:"component,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Display returns the user-facing message for notice banners.
func (e *Error) Display() string {
	if e.Message == "" {
		return genericFailureMessage
	}
	return e.Message
}

// WithCause attaches the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithComponent attaches the emitting component name.
func (e *Error) WithComponent(component string) *Error {
	e.Component = component
	return e
}

// NewTransportError wraps a network-level failure.
func NewTransportError(cause error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: genericFailureMessage,
		Cause:   cause,
	}
}

// NewStatusError wraps a non-success HTTP status. serverMessage may be
// empty, in which case the generic failure message is used.
func NewStatusError(statusCode int, serverMessage string) *Error {
	msg := serverMessage
	if msg == "" {
		msg = genericFailureMessage
	}
	return &Error{
		Kind:       KindStatus,
		Message:    msg,
		StatusCode: statusCode,
	}
}

// NewValidationError reports a local input validation failure.
func NewValidationError(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
	}
}

// NewCredentialError reports a credential decode failure.
func NewCredentialError(cause error) *Error {
	return &Error{
		Kind:    KindCredential,
		Message: "invalid credential",
		Cause:   cause,
	}
}

// NewInternalError reports an unexpected failure.
func NewInternalError(message string) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: message,
	}
}

// IsTransport checks whether an error is a network-level failure.
func IsTransport(err error) bool {
	return kindOf(err) == KindTransport
}

// IsStatus checks whether an error is a non-success HTTP status.
func IsStatus(err error) bool {
	return kindOf(err) == KindStatus
}

// IsValidation checks whether an error is a local validation failure.
func IsValidation(err error) bool {
	return kindOf(err) == KindValidation
}

// IsCredential checks whether an error is a credential decode failure.
func IsCredential(err error) bool {
	return kindOf(err) == KindCredential
}

// Display extracts a user-facing message from any error. Typed errors
// contribute their message; anything else degrades to the generic one.
func Display(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Display()
	}
	return genericFailureMessage
}

func kindOf(err error) ErrorKind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
