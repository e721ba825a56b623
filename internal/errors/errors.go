package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Network errors (NETWORK-001 to NETWORK-099): request never reached the server
	ErrCodeNetworkUnreachable ErrorCode = "NETWORK-001"
	ErrCodeNetworkTimeout     ErrorCode = "NETWORK-002"

	// Auth errors (AUTH-001 to AUTH-099): 401/403 responses and login failures
	ErrCodeAuthUnauthorized ErrorCode = "AUTH-001"
	ErrCodeAuthForbidden    ErrorCode = "AUTH-002"
	ErrCodeAuthLoginFailed  ErrorCode = "AUTH-003"
	ErrCodeAuthRoleDenied   ErrorCode = "AUTH-004"

	// Validation errors (VALIDATION-001 to VALIDATION-099): 4xx with server messages
	ErrCodeValidationRejected ErrorCode = "VALIDATION-001"
	ErrCodeValidationInput    ErrorCode = "VALIDATION-002"

	// Server errors (SERVER-001 to SERVER-099): 5xx and unexpected responses
	ErrCodeServerInternal   ErrorCode = "SERVER-001"
	ErrCodeServerBadPayload ErrorCode = "SERVER-002"

	// Not-found errors (NOTFOUND-001 to NOTFOUND-099): 404 on direct navigation
	ErrCodeEventNotFound ErrorCode = "NOTFOUND-001"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionInvalid ErrorCode = "SESSION-001"
	ErrCodeSessionMissing ErrorCode = "SESSION-002"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigBaseURL ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
)

// PlannerError represents an enhanced error with code, suggestions, and cause
type PlannerError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *PlannerError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PlannerError) Unwrap() error {
	return e.Cause
}

// New creates a new PlannerError
func New(code ErrorCode, message string) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PlannerError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PlannerError) WithSuggestion(suggestion string) *PlannerError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PlannerError) WithSuggestions(suggestions ...string) *PlannerError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Category helpers. Pages decide user notification from these, never
// from raw HTTP status codes.

// IsNetwork reports whether the error is a transport-level failure.
func IsNetwork(err error) bool { return hasPrefix(err, "NETWORK-") }

// IsAuth reports whether the error is a 401/403 or login failure.
func IsAuth(err error) bool { return hasPrefix(err, "AUTH-") }

// IsValidation reports whether the error carries a server validation message.
func IsValidation(err error) bool { return hasPrefix(err, "VALIDATION-") }

// IsServer reports whether the error is a 5xx or unexpected response.
func IsServer(err error) bool { return hasPrefix(err, "SERVER-") }

// IsNotFound reports whether the error is a 404 for a removed resource.
func IsNotFound(err error) bool { return hasPrefix(err, "NOTFOUND-") }

func hasPrefix(err error, prefix string) bool {
	pe := AsPlannerError(err)
	return pe != nil && strings.HasPrefix(string(pe.Code), prefix)
}

// AsPlannerError extracts a PlannerError from an error chain, or nil.
func AsPlannerError(err error) *PlannerError {
	for err != nil {
		if pe, ok := err.(*PlannerError); ok {
			return pe
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}

// UserMessage returns the single human-readable message for an error.
// PlannerError messages are already user-facing; anything else falls
// back to the error text.
func UserMessage(err error) string {
	if pe := AsPlannerError(err); pe != nil {
		return pe.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// Common error constructors for frequently used errors

// NewLoginFailedError creates a login failure error
func NewLoginFailedError(serverMessage string) *PlannerError {
	if serverMessage == "" {
		serverMessage = "An error occurred"
	}
	return New(ErrCodeAuthLoginFailed, serverMessage).
		WithSuggestion("Check your email and password").
		WithSuggestion("Run 'eventplanner signup' if you don't have an account")
}

// NewRoleDeniedError creates an admin-only access error
func NewRoleDeniedError(action string) *PlannerError {
	return New(ErrCodeAuthRoleDenied, fmt.Sprintf("admin access required for %s", action)).
		WithSuggestion("Log in with an admin account to manage events")
}

// NewBaseURLMissingError creates a missing base URL configuration error
func NewBaseURLMissingError() *PlannerError {
	return New(ErrCodeConfigBaseURL, "API base URL is not configured").
		WithSuggestion("Set the EVENTPLANNER_BASE_URL environment variable").
		WithSuggestion("Or set base_url in ~/.eventplanner/config.yaml")
}
