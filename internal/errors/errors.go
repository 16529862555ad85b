package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches on code, so errors.Is(err, ErrShape) holds for any shape error.
// Header build failures are a kind of shape error.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t.Message != "" || t.Cause != nil {
		return false
	}
	if e.Code == t.Code {
		return true
	}
	return t.Code == CodeShapeInvalid && e.Code == CodeHeaderBuild
}

// Error codes
const (
	CodeNotFound      = "NOT_FOUND"
	CodeShapeInvalid  = "SHAPE_INVALID"
	CodeHeaderBuild   = "HEADER_BUILD"
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeInternalError = "INTERNAL_ERROR"
)

// Sentinels for errors.Is. They carry only a code.
var (
	ErrNotFound    = &AppError{Code: CodeNotFound}
	ErrShape       = &AppError{Code: CodeShapeInvalid}
	ErrHeaderBuild = &AppError{Code: CodeHeaderBuild}
	ErrConfig      = &AppError{Code: CodeConfigInvalid}
)

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message
func Newf(code, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context, keeping the code of an AppError cause
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode attaches a code to an arbitrary error
func WithCode(code string, err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

func NotFound(format string, args ...interface{}) *AppError {
	return Newf(CodeNotFound, format, args...)
}

func Shape(format string, args ...interface{}) *AppError {
	return Newf(CodeShapeInvalid, format, args...)
}

func HeaderBuild(format string, args ...interface{}) *AppError {
	return Newf(CodeHeaderBuild, format, args...)
}

func ConfigInvalid(format string, args ...interface{}) *AppError {
	return Newf(CodeConfigInvalid, format, args...)
}
