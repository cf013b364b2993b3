package errors

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// Error is a coded error. Meta carries the reference, URL or selector
// involved so that logs and gRPC details can name it.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code
func (e *Error) Is(target error) bool {
	t, ok := asError(target)
	return ok && e.Code == t.Code
}

// WithMeta sets one metadata entry and returns e
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code and a copy of the metadata of an
// Error cause are kept; context cancellation maps to CodeCanceled or
// CodeDeadlineExceeded, anything else to CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	if cause, ok := asError(err); ok {
		return &Error{Code: cause.Code, Message: message, Cause: err, Meta: maps.Clone(cause.Meta)}
	}
	return &Error{Code: codeOf(err), Message: message, Cause: err}
}

func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code, keeping its metadata
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := &Error{Code: code, Message: message, Cause: err}
	if cause, ok := asError(err); ok {
		wrapped.Meta = maps.Clone(cause.Meta)
	}
	return wrapped
}

func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
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

func Internal(message string) *Error {
	return New(CodeInternal, message)
}

func Unavailablef(format string, args ...any) *Error {
	return Newf(CodeUnavailable, format, args...)
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// codeOf classifies an error that is not an Error
func codeOf(err error) Code {
	switch {
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	}
	return CodeInternal
}
