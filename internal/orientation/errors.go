package orientation

// errors.go defines the error kinds used by the consent workflow.

import "fmt"

// WorkflowError represents a structured error from the orientation package.
type WorkflowError struct {
	// code classifies the failure
	code ErrorCode

	// userMessage is the fixed message shown to the client. The
	// workflow serves foreign workers through a Japanese-operated
	// intake service, so the user-facing strings are Japanese.
	userMessage string

	// wrapped is the optional underlying error, logged server-side only
	wrapped error
}

func (e *WorkflowError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.userMessage, e.wrapped)
	}
	return e.userMessage
}

func (e *WorkflowError) Code() ErrorCode     { return e.code }
func (e *WorkflowError) UserMessage() string { return e.userMessage }
func (e *WorkflowError) Unwrap() error       { return e.wrapped }

// ErrorCode classifies workflow failures for HTTP status mapping.
type ErrorCode int

const (
	// ErrCodeUnauthorized is used when the shared access token is
	// missing or does not match the configured secret.
	ErrCodeUnauthorized ErrorCode = iota + 1

	// ErrCodeValidation is used when a required request parameter is
	// missing or invalid (unknown language, malformed signature data
	// URL, missing form fields).
	ErrCodeValidation

	// ErrCodeUpstream is used when a blob store PUT/GET or other
	// external HTTP call fails.
	ErrCodeUpstream

	// ErrCodeAssetNotFound is used when the signature image cannot be
	// fetched or decoded. Mapped to 404 to match the workflow's
	// "signature could not be retrieved" contract.
	ErrCodeAssetNotFound

	// ErrCodeInternal is used for unexpected server-side failures
	// (e.g. PDF assembly errors).
	ErrCodeInternal
)

// NewUnauthorizedError creates an access gate rejection carrying the
// fixed user-facing message for the stage that rejected the request.
func NewUnauthorizedError(userMessage string) error {
	return &WorkflowError{code: ErrCodeUnauthorized, userMessage: userMessage}
}

// NewValidationError creates an error for a missing or invalid request
// parameter.
func NewValidationError(userMessage string) error {
	return &WorkflowError{code: ErrCodeValidation, userMessage: userMessage}
}

// WrapValidationError wraps an underlying parse failure as a validation
// error. The wrapped cause is logged server-side; the client only sees
// userMessage.
func WrapValidationError(err error, userMessage string) error {
	return &WorkflowError{code: ErrCodeValidation, userMessage: userMessage, wrapped: err}
}

// WrapUpstreamError wraps a blob store or HTTP failure.
func WrapUpstreamError(err error, userMessage string) error {
	return &WorkflowError{code: ErrCodeUpstream, userMessage: userMessage, wrapped: err}
}

// WrapAssetError wraps a signature fetch or image decode failure.
func WrapAssetError(err error, userMessage string) error {
	return &WorkflowError{code: ErrCodeAssetNotFound, userMessage: userMessage, wrapped: err}
}

// WrapInternalError wraps an unexpected server-side failure.
func WrapInternalError(err error, userMessage string) error {
	return &WorkflowError{code: ErrCodeInternal, userMessage: userMessage, wrapped: err}
}
