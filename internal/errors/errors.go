// Package errors provides coded errors shared by the generator, repositories and services.
package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument" // absent or malformed input
	CodeNotFound        Code = "not_found"
	CodeAlreadyExists   Code = "already_exists"
	CodeUnavailable     Code = "unavailable" // backing store unreachable
	CodeValidation      Code = "validation"  // data outside its allowed range
)

// Error is an error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// WithMeta attaches a metadata value and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func coded(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func InvalidArgument(message string) *Error { return coded(CodeInvalidArgument, message) }
func Validation(message string) *Error      { return coded(CodeValidation, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return coded(CodeInvalidArgument, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) *Error {
	return coded(CodeNotFound, fmt.Sprintf(format, args...))
}

func AlreadyExistsf(format string, args ...any) *Error {
	return coded(CodeAlreadyExists, fmt.Sprintf(format, args...))
}

func Validationf(format string, args ...any) *Error {
	return coded(CodeValidation, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A coded cause keeps its code and a copy of its
// metadata; anything else becomes CodeUnknown. Wrapping nil returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if cause := as(err); cause != nil {
		wrapped.Code = cause.Code
		for k, v := range cause.Meta {
			wrapped.WithMeta(k, v)
		}
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code forced, for foreign errors such as
// redis or yaml failures
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func as(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether err is a coded error carrying code
func Is(err error, code Code) bool {
	e := as(err)
	return e != nil && e.Code == code
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool   { return Is(err, CodeAlreadyExists) }
func IsValidation(err error) bool      { return Is(err, CodeValidation) }

// GetCode returns the error code, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	if e := as(err); e != nil {
		return e.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata, nil for foreign errors
func GetMeta(err error) map[string]any {
	if e := as(err); e != nil {
		return e.Meta
	}
	return nil
}
