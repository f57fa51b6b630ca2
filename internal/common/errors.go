package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy for the extraction core.
var (
	// ErrConfiguration: unknown profile or backend; fails fast, no job row.
	ErrConfiguration = errors.New("configuration error")
	// ErrModelLoad: backend dependency or model artifact unavailable.
	ErrModelLoad = errors.New("model load error")
	// ErrExtractionRuntime: the adapter failed during extract/normalize.
	ErrExtractionRuntime = errors.New("extraction runtime error")
	// ErrRemoteService: timeout, connection refused, or non-2xx from the peer.
	ErrRemoteService = errors.New("remote service error")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrJobTerminal  = errors.New("job is in a terminal state")
	// ErrShuttingDown: the process is draining; new work is refused.
	ErrShuttingDown = errors.New("shutting down")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewConfigurationError(message string) *AppError {
	return NewAppError("CONFIG_ERROR", message, ErrConfiguration)
}

func NewModelLoadError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrModelLoad
	} else {
		cause = fmt.Errorf("%w: %w", ErrModelLoad, cause)
	}
	return NewAppError("MODEL_LOAD_ERROR", message, cause)
}

func NewExtractionError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrExtractionRuntime
	} else {
		cause = fmt.Errorf("%w: %w", ErrExtractionRuntime, cause)
	}
	return NewAppError("EXTRACTION_ERROR", message, cause)
}

func NewRemoteServiceError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrRemoteService
	} else {
		cause = fmt.Errorf("%w: %w", ErrRemoteService, cause)
	}
	return NewAppError("REMOTE_SERVICE_ERROR", message, cause)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
