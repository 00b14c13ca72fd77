package goerror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the requested credential does not exist.
	ErrNotFound = errors.New("credential not found")

	// ErrConflict indicates that a credential with the same username already exists.
	ErrConflict = errors.New("credential already exists")

	// ErrUnavailable indicates the backing store could not be reached.
	//
	// The core never retries; callers decide whether and how to recover.
	ErrUnavailable = errors.New("store unavailable")
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	// TypeServer represents server-side failures.
	TypeServer Type = iota
	// TypeBusiness represents business rule violations.
	TypeBusiness
	// TypeValidation represents input validation failures.
	TypeValidation
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to process exit codes.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeInvalidInput indicates invalid caller input.
	CodeInvalidInput
	// CodeNotFound indicates a missing credential.
	CodeNotFound
	// CodeConflict indicates a duplicate registration.
	CodeConflict
	// CodeUnauthorized indicates an authentication failure.
	CodeUnauthorized
	// CodeUnavailable indicates the backing store is unreachable.
	CodeUnavailable
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeConflict:
		return "ERROR_CODE_CONFLICT"
	case CodeUnauthorized:
		return "ERROR_CODE_UNAUTHORIZED"
	case CodeUnavailable:
		return "ERROR_CODE_UNAVAILABLE"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	return "unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Fields returns validation errors (field to message map), if any.
func (e *Error) Fields() map[string]string {
	return e.fields
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// ExitCode maps the error code to a process exit status for the CLI.
//
// Validation and business outcomes stay in the low range so shell callers can
// distinguish "try again" from "environment is broken".
func (e *Error) ExitCode() int {
	switch e.code {
	case CodeInvalidInput:
		return 2
	case CodeNotFound:
		return 3
	case CodeConflict:
		return 4
	case CodeUnauthorized:
		return 5
	case CodeUnavailable:
		return 69
	default:
		return 1
	}
}

func newError(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return newError(err, "internal error", TypeServer, CodeInternal)
}

// NewUnavailable creates a server-type error marking the store as unreachable.
// The returned error matches ErrUnavailable with errors.Is.
func NewUnavailable(err error) error {
	return newError(fmt.Errorf("%w: %w", ErrUnavailable, err), "store unavailable", TypeServer, CodeUnavailable)
}

// NewBusiness creates a business-type error with the specified message and code.
func NewBusiness(msg string, code Code) error {
	return newError(nil, msg, TypeBusiness, code)
}

// NewInvalidInput creates a validation error for invalid input with a message
// and underlying error. Optional kv pairs attach per-field messages.
func NewInvalidInput(err error, kv ...string) error {
	if err != nil {
		return newError(err, "validation error", TypeValidation, CodeInvalidInput)
	}

	e := &Error{msg: "validation error", errType: TypeValidation, code: CodeInvalidInput}
	if len(kv) >= 2 {
		e.fields = make(map[string]string)
		for i := 0; i+1 < len(kv); i += 2 {
			e.fields[kv[i]] = kv[i+1]
		}
	}

	return e
}
