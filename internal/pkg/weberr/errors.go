package weberr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternalError    = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrStore is returned when the backing store could not serve a statement.
	ErrStore = New(fiber.StatusServiceUnavailable, CodeStoreUnavailable, "store unavailable")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type Error struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras

	cause error
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...any) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

// Wrap returns a copy of e carrying cause, reachable through errors.Unwrap.
func (e Error) Wrap(cause error) *Error {
	e.cause = cause
	return &e
}

func NewInvalidViolations(violations any) *Error {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.ErrorCode, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same code, so that copies made
// by Msg, WithExtras or Wrap still match their base value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.ErrorCode == e.ErrorCode
}

// Describe returns the user-facing message of err.
func Describe(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
