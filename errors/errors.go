package errors

import (
	"errors"
	"fmt"
)

// Core error definitions for the provider registration package

// Registration-related errors
var (
	// ErrRegistrationFailed indicates the provider could not be registered
	ErrRegistrationFailed = errors.New("provider registration failed")

	// ErrNetworkFailure indicates the provider could not reach its service
	ErrNetworkFailure = errors.New("network failure")

	// ErrInvalidAccountProperties indicates the account is misconfigured
	ErrInvalidAccountProperties = errors.New("invalid account properties")

	// ErrInternalError indicates an internal provider error
	ErrInternalError = errors.New("internal error")
)

// Authentication-related errors
var (
	// ErrAuthenticationCanceled indicates the user dismissed the authentication window
	// or no window could be shown
	ErrAuthenticationCanceled = errors.New("authentication canceled")
)

// Validation-related errors
var (
	// ErrValidationFailed indicates general validation failure
	ErrValidationFailed = errors.New("validation failed")

	// ErrRequiredFieldMissing indicates a required field is missing
	ErrRequiredFieldMissing = errors.New("required field is missing")
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Registration error codes. A provider reports one of these from Register.
	CodeGeneralError             ErrorCode = "GENERAL_ERROR"
	CodeInternalError            ErrorCode = "INTERNAL_ERROR"
	CodeNetworkFailure           ErrorCode = "NETWORK_FAILURE"
	CodeInvalidAccountProperties ErrorCode = "INVALID_ACCOUNT_PROPERTIES"

	// Authentication error codes
	CodeAuthenticationCanceled ErrorCode = "AUTHENTICATION_CANCELED"

	// Validation error codes
	CodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	CodeRequiredFieldMissing ErrorCode = "REQUIRED_FIELD_MISSING"

	// CodeUnknown is returned by GetErrorCode for errors that carry no code
	CodeUnknown ErrorCode = "UNKNOWN"
)

// AppError represents a structured application error with context
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"` // Don't serialize the underlying error
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error for error wrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppErrorWithDetails creates a new AppError with additional details
func NewAppErrorWithDetails(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// NewOperationFailedError creates the categorized error a provider returns when
// registration fails. A nil cause defaults to the sentinel matching the code.
func NewOperationFailedError(code ErrorCode, message string, cause error) *AppError {
	if cause == nil {
		cause = sentinelFor(code)
	}
	return Wrap(cause, code, message)
}

// NewAuthenticationCanceledError creates an authentication canceled error
func NewAuthenticationCanceledError(realm string) *AppError {
	err := NewAppErrorWithDetails(CodeAuthenticationCanceled, "Authentication canceled",
		fmt.Sprintf("Realm: %s", realm))
	err.Cause = ErrAuthenticationCanceled
	return err
}

// NewAuthenticationCanceledErrorWithCause creates an authentication canceled error
// that also carries the reason the prompt was abandoned, e.g. a done context.
func NewAuthenticationCanceledErrorWithCause(realm string, cause error) *AppError {
	err := NewAuthenticationCanceledError(realm)
	if cause != nil {
		err.Cause = errors.Join(ErrAuthenticationCanceled, cause)
	}
	return err
}

// NewValidationError creates a validation error
func NewValidationError(field, reason string) *AppError {
	err := NewAppErrorWithDetails(CodeValidationFailed, "Validation failed",
		fmt.Sprintf("Field: %s, Reason: %s", field, reason))
	err.Cause = ErrValidationFailed
	return err
}

// NewRequiredFieldError creates a required field missing error
func NewRequiredFieldError(field string) *AppError {
	err := NewAppErrorWithDetails(CodeRequiredFieldMissing, "Required field is missing",
		fmt.Sprintf("Field: %s", field))
	err.Cause = ErrRequiredFieldMissing
	return err
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, target error) bool {
	return errors.Is(err, target)
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func sentinelFor(code ErrorCode) error {
	switch code {
	case CodeNetworkFailure:
		return ErrNetworkFailure
	case CodeInvalidAccountProperties:
		return ErrInvalidAccountProperties
	case CodeInternalError:
		return ErrInternalError
	default:
		return ErrRegistrationFailed
	}
}
