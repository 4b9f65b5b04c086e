package coursecat

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT  = "conflict"
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	EMALFORMED = "malformed"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("coursecat error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var malformed *MalformedInputError
	if errors.As(err, &malformed) {
		return EMALFORMED
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var malformed *MalformedInputError
	if errors.As(err, &malformed) {
		return "malformed course in search response"
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// MalformedInputError is returned when a search response contains a course
// that cannot be decoded. It carries the complete original response so it can
// be logged or archived; no courses are returned alongside it.
type MalformedInputError struct {
	Response *SearchResponse

	// Err is the first extraction failure, e.g.
	// "course CSC-226: section row 3: availability: unknown status".
	Err error
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	if e.Err == nil {
		return "malformed course found when decoding search response"
	}
	return fmt.Sprintf("malformed course found when decoding search response: %v", e.Err)
}

// Unwrap returns the underlying extraction failure.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
