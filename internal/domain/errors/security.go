package errors

import (
	"fmt"
	"net/http"

	"ethos/internal/errors"
)

// Kind classifies failures raised by the credential, token and rate-limit components.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindTokenInvalid
	KindTokenExpired
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindTokenInvalid:
		return "token_invalid"
	case KindTokenExpired:
		return "token_expired"
	case KindConfiguration:
		return "configuration"
	case KindUnknown:
		return "unknown"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// SecurityError is a tagged error from the security core. Two SecurityErrors match
// under errors.Is when their kinds are equal, so callers compare against the sentinels.
type SecurityError struct {
	kind    Kind
	message string
	cause   error
}

// NewSecurityError creates a SecurityError of the given kind.
func NewSecurityError(kind Kind, message string) *SecurityError {
	return &SecurityError{kind: kind, message: message}
}

// InvalidInput reports a rejected caller-supplied value.
func InvalidInput(format string, args ...any) *SecurityError {
	return NewSecurityError(KindInvalidInput, fmt.Sprintf(format, args...))
}

// Configuration reports a component built with unusable settings.
func Configuration(format string, args ...any) *SecurityError {
	return NewSecurityError(KindConfiguration, fmt.Sprintf(format, args...))
}

// TokenInvalid reports a token that failed signature, algorithm or structure checks.
func TokenInvalid(cause error) *SecurityError {
	return &SecurityError{kind: KindTokenInvalid, message: "token is invalid", cause: cause}
}

// TokenExpired reports a well-signed token past its expiry.
func TokenExpired(cause error) *SecurityError {
	return &SecurityError{kind: KindTokenExpired, message: "token has expired", cause: cause}
}

var (
	ErrInvalidInput  = NewSecurityError(KindInvalidInput, "invalid input")
	ErrTokenInvalid  = NewSecurityError(KindTokenInvalid, "token is invalid")
	ErrTokenExpired  = NewSecurityError(KindTokenExpired, "token has expired")
	ErrConfiguration = NewSecurityError(KindConfiguration, "invalid configuration")
)

func (e *SecurityError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

func (e *SecurityError) Unwrap() error {
	return e.cause
}

// Is matches any SecurityError of the same kind.
func (e *SecurityError) Is(target error) bool {
	t, ok := target.(*SecurityError)
	if !ok {
		return false
	}

	return e.kind == t.kind
}

func (e *SecurityError) Kind() Kind {
	return e.kind
}

func (e *SecurityError) HTTPCode() int {
	switch e.kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindTokenInvalid, KindTokenExpired:
		return http.StatusUnauthorized
	case KindConfiguration, KindUnknown:
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}

func (e *SecurityError) ErrorCode() string {
	switch e.kind {
	case KindInvalidInput:
		return "INVALID_INPUT"
	case KindTokenInvalid:
		return "TOKEN_INVALID"
	case KindTokenExpired:
		return "TOKEN_EXPIRED"
	case KindConfiguration, KindUnknown:
		return "INTERNAL_ERROR"
	}

	return "INTERNAL_ERROR"
}

func (e *SecurityError) Message() string {
	if e.kind == KindConfiguration {
		return "internal server error"
	}

	return e.message
}

func (e *SecurityError) Details() string {
	return ""
}

// KindOf returns the kind of the first SecurityError in err's tree, or KindUnknown.
func KindOf(err error) Kind {
	if se, ok := errors.AsType[*SecurityError](err); ok {
		return se.kind
	}

	return KindUnknown
}
