package httpcore

import (
	"errors"
	"fmt"
	"runtime"
)

// Unique identifier for categorizing errors on both producer and consumer sides
type ErrorCode string

const (
	// Header parsing errors
	ErrInvalidHeader ErrorCode = "err_invalid_header"

	// HTTP-date parsing errors
	ErrInvalidDate ErrorCode = "err_invalid_date"

	// Internal errors
	ErrInternal ErrorCode = "err_internal_error"
)

// Standardized error type with context for debugging
type CoreError struct {
	Original error     // The underlying error being wrapped
	Code     ErrorCode // Caller-facing error code
	Message  string    // Human-readable error message

	// Debug information automatically captured
	file     string
	line     int
	function string
}

func (e *CoreError) Error() string {
	base := fmt.Sprintf("[httpcore:%s] %s", e.Code, e.Message)
	if e.Original != nil {
		return fmt.Sprintf("%s: %v", base, e.Original)
	}
	return base
}

func (e *CoreError) Unwrap() error {
	return e.Original
}

func New(code ErrorCode, msg string) *CoreError {
	err := &CoreError{
		Code:    code,
		Message: msg,
	}

	// Automatically capture caller information for debugging
	if pc, file, line, ok := runtime.Caller(1); ok {
		err.file = file
		err.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			err.function = fn.Name()
		}
	}

	return err
}

func Newf(code ErrorCode, format string, args ...interface{}) *CoreError {
	return New(code, fmt.Sprintf(format, args...))
}

func Wrap(err error, code ErrorCode, msg string) *CoreError {
	if err == nil {
		return nil
	}

	// If already a CoreError, update its fields instead of creating a new one
	if coreErr, ok := err.(*CoreError); ok {
		if code != "" {
			coreErr.Code = code
		}
		if msg != "" {
			coreErr.Message = msg
		}
		return coreErr
	}

	coreErr := New(code, msg)
	coreErr.Original = err

	if pc, file, line, ok := runtime.Caller(1); ok {
		coreErr.file = file
		coreErr.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			coreErr.function = fn.Name()
		}
	}

	return coreErr
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CoreError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Code == code
	}

	return false
}
