package failure

import (
	"errors"
	"net/http"
)

// Failure is an error carrying the HTTP status it should be answered with.
type Failure struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`

	cause error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel the failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Wrap attaches an HTTP code to a sentinel error so that errors.Is keeps matching it.
func Wrap(code int, cause error) error {
	if cause == nil {
		return nil
	}

	return &Failure{
		Code:    code,
		Message: cause.Error(),
		cause:   cause,
	}
}

func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error(), cause: err}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// Validation returns a bad request carrying one message per failing field.
func Validation(msg string, fields map[string]string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg, Fields: fields}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

// GetCode returns the status of the outermost Failure in err's chain, or 500.
func GetCode(err error) int {
	if fail, ok := as(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the per-field messages of a validation failure.
func GetFields(err error) map[string]string {
	if fail, ok := as(err); ok {
		return fail.Fields
	}

	return nil
}

func as(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}
