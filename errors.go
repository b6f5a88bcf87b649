package cryptoprim

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrInvalidInputLength = errors.New("invalid input length")
	ErrBackendFailure     = errors.New("backend failure")
	ErrUnknownAlgorithm   = errors.New("unknown algorithm")
	ErrLowOrderPoint      = errors.New("low order point")
)

func IsErrInvalidInputLength(err error) bool {
	return errors.Is(err, ErrInvalidInputLength)
}

func IsErrBackendFailure(err error) bool {
	return errors.Is(err, ErrBackendFailure)
}

func IsErrUnknownAlgorithm(err error) bool {
	return errors.Is(err, ErrUnknownAlgorithm)
}

func IsErrLowOrderPoint(err error) bool {
	return errors.Is(err, ErrLowOrderPoint)
}

// CheckLength returns an error wrapping ErrInvalidInputLength if len(x) != want.
// what names the input in the error message.
func CheckLength(what string, x []byte, want int) error {
	if len(x) != want {
		return pkgerrors.Wrapf(ErrInvalidInputLength, "%s: HAVE %d WANT %d", what, len(x), want)
	}
	return nil
}

// BackendError is returned when a collaborator primitive fails.
// It matches ErrBackendFailure with errors.Is, and unwraps to the original cause.
type BackendError struct {
	Backend string
	Err     error
}

// NewBackendError wraps err, or returns nil if err is nil.
func NewBackendError(backend string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Backend: backend, Err: err}
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrBackendFailure, e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackendFailure
}
