package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can branch without string matching
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed a malformed argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested record was not found
	CodeNotFound Code = "not_found"

	// CodeFailedPrecondition indicates the session is in the wrong phase for the call
	CodeFailedPrecondition Code = "failed_precondition"

	// CodeInternal indicates an internal fault (exhausted dice script, corrupt state)
	CodeInternal Code = "internal"

	// CodeUnavailable indicates a collaborator (loot, spells, storage) is not ready
	CodeUnavailable Code = "unavailable"

	// CodeValidation indicates a setup validation failure (formation, party size)
	CodeValidation Code = "validation"
)

// Error is an application error with code and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error, preserving the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var combatErr *Error
	if errors.As(err, &combatErr) {
		return &Error{
			Code:    combatErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(combatErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Is checks if the error carries a specific code
func Is(err error, code Code) bool {
	var combatErr *Error
	if errors.As(err, &combatErr) {
		return combatErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

func IsFailedPrecondition(err error) bool {
	return Is(err, CodeFailedPrecondition)
}

func IsUnavailable(err error) bool {
	return Is(err, CodeUnavailable)
}

func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// GetCode returns the error code, CodeUnknown for foreign errors
func GetCode(err error) Code {
	var combatErr *Error
	if errors.As(err, &combatErr) {
		return combatErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var combatErr *Error
	if errors.As(err, &combatErr) {
		return combatErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
