package aladin

import "errors"

// ErrDecode marks a response body that does not match the expected
// envelope shape. It propagates the same way a transport failure does.
// Callers test with errors.Is.
var ErrDecode = errors.New("unexpected response shape")

type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return e.err.Error() }

func (e *decodeError) Unwrap() []error { return []error{ErrDecode, e.err} }

func wrapDecode(err error) error {
	return &decodeError{err: err}
}
