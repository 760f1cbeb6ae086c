package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeTooLarge        = "PAYLOAD_TOO_LARGE"
	CodeDependency      = "DEPENDENCY"
	CodeInternal        = "INTERNAL"
)

var statusByCode = map[string]int{
	CodeInvalidArgument: http.StatusBadRequest,
	CodeNotFound:        http.StatusNotFound,
	CodeConflict:        http.StatusConflict,
	CodeUnauthenticated: http.StatusUnauthorized,
	CodeForbidden:       http.StatusForbidden,
	CodeTooLarge:        http.StatusRequestEntityTooLarge,
	CodeDependency:      http.StatusInternalServerError,
	CodeInternal:        http.StatusInternalServerError,
}

// AppError carries a classification code alongside the message shown to clients.
type AppError struct {
	code    string
	message string
	fields  []string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string    { return e.code }
func (e *AppError) Message() string { return e.message }
func (e *AppError) Unwrap() error   { return e.err }

// Fields lists the request fields the error refers to, if any.
func (e *AppError) Fields() []string { return e.fields }

func New(code, message string) *AppError {
	return &AppError{code: code, message: message}
}

func NewWithCause(code, message string, err error) *AppError {
	return &AppError{code: code, message: message, err: err}
}

// Wrap annotates err with message. The code of an existing AppError is kept;
// anything else becomes INTERNAL.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{code: appErr.code, message: message, fields: appErr.fields, err: err}
	}
	return &AppError{code: CodeInternal, message: message, err: err}
}

func Validation(message string, fields ...string) *AppError {
	return &AppError{code: CodeInvalidArgument, message: message, fields: fields}
}

func NotFound(message string) *AppError { return New(CodeNotFound, message) }
func Conflict(message string) *AppError { return New(CodeConflict, message) }

func Dependency(message string, err error) *AppError {
	return NewWithCause(CodeDependency, message, err)
}

func Internal(message string, err error) *AppError {
	return NewWithCause(CodeInternal, message, err)
}

// CodeOf returns the code of the outermost AppError in err's chain.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return CodeInternal
}

func HTTPStatus(err error) int {
	if status, ok := statusByCode[CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// PublicMessage is the text safe to return to a client. Internal and
// dependency failures never leak their cause.
func PublicMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "internal server error"
	}
	return appErr.message
}

func FieldsOf(err error) []string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.fields
	}
	return nil
}

func IsNotFound(err error) bool   { return CodeOf(err) == CodeNotFound }
func IsConflict(err error) bool   { return CodeOf(err) == CodeConflict }
func IsValidation(err error) bool { return CodeOf(err) == CodeInvalidArgument }
