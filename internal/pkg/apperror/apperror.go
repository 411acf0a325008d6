package apperror

import (
	"errors"
	"net/http"
)

// Error kinds. Match them with errors.Is on any error returned by the domain packages.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRange           = errors.New("value out of range")
	ErrPersistence     = errors.New("persistence failure")
)

// AppError is a custom error type that includes an HTTP status code, an error kind
// and an optional underlying cause.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Kind    error  // One of the kind sentinels above, or nil
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidArgument reports a malformed or missing field.
func InvalidArgument(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrInvalidArgument}
}

// Range reports a field that exceeds its length bound.
func Range(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrRange}
}

// Persistence reports a store-level failure or an operation the entity's
// persistence state does not allow (double insert, delete without identity).
func Persistence(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: ErrPersistence, Err: err}
}

// AsPersistence returns err unchanged when it already is an AppError, and
// otherwise wraps it as a 500 persistence failure with the given message.
func AsPersistence(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return Persistence(http.StatusInternalServerError, message, err)
}

// StatusCode returns the HTTP status carried by err, or 500 when it carries none.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
