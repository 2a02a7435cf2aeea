// Package apperr defines the error taxonomy shared by the study assistant:
// validation, extraction and completion failures.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies where a failure originated.
type Kind string

const (
	KindValidation Kind = "validation"
	KindExtraction Kind = "extraction"
	KindCompletion Kind = "completion"
)

// Completion failure codes.
const (
	CodeAuth      = "AUTH_ERROR"
	CodeTransport = "TRANSPORT_ERROR"
	CodeRateLimit = "RATE_LIMITED"
	CodeTimeout   = "TIMEOUT"
	CodeUpstream  = "UPSTREAM_ERROR"
)

// Validation and extraction codes.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeExtraction  = "EXTRACTION_ERROR"
	CodeUnsupported = "UNSUPPORTED_FORMAT"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	}
	return string(e.Kind) + " error"
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports a missing or malformed input field.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Extraction reports an unreadable or unsupported upload.
func Extraction(code, message string, err error) *Error {
	return &Error{Kind: KindExtraction, Code: code, Message: message, Err: err}
}

// Completion reports a failed call to the language model.
func Completion(code, message string, err error) *Error {
	return &Error{Kind: KindCompletion, Code: code, Message: message, Err: err}
}

// KindOf returns the kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// CodeOf returns the code of err, or "" if err is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
