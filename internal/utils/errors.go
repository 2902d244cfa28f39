package utils

import "strings"

// ErrorKind classifies a domain failure. The HTTP status code for each kind
// is chosen in exactly one place: RespondError in response.go.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation_error"
	KindAuth          ErrorKind = "auth_error"
	KindNotFound      ErrorKind = "not_found"
	KindDuplicateKey  ErrorKind = "duplicate_key"
	KindRateLimit     ErrorKind = "rate_limit_exceeded"
	KindConfiguration ErrorKind = "configuration_error"
)

// AppError carries a classification and a user-visible message from the
// point of detection to the boundary mapper. Internal causes ride along in
// Err and are only ever logged, never serialized.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []string // offending fields for duplicate-key violations
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewAuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewDuplicateKeyError reports a unique-constraint violation. The message
// lists the conflicting field names joined by comma.
func NewDuplicateKeyError(fields ...string) *AppError {
	return &AppError{
		Kind:    KindDuplicateKey,
		Message: "Duplicate fields not allowed " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func NewConfigurationError(message string) *AppError {
	return &AppError{Kind: KindConfiguration, Message: message}
}

// Session token failures. CurrentManager propagates these unchanged so the
// cookie-missing case keeps its exact message.
var (
	ErrTokenMissing = NewAuthError("Token is missing")
	ErrTokenInvalid = NewAuthError("Invalid token")
	ErrTokenExpired = NewAuthError("Token has expired")
)

var ErrRateLimitExceeded = &AppError{Kind: KindRateLimit, Message: "Too many requests."}
