// Package apperr defines the error taxonomy shared by the storage layer and
// the HTTP handlers. Storage functions wrap one of the sentinel errors with
// context; handlers map the sentinel to a status code via Status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrAuthorization = errors.New("not allowed")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrStorage       = errors.New("storage failure")
	ErrNoData        = errors.New("no data")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Wrap(sentinel error, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
