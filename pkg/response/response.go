package response

import (
	"errors"
)

// Error carries an HTTP status code alongside the underlying error so
// handlers can map service failures onto responses.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, msg string) error {
	return &Error{Code: code, Err: errors.New(msg)}
}
