package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates a store or rendering failure.
var ErrInternal = errors.New("internal failure")

// ErrExternalServiceUnavailable indicates that an upstream data source failed.
var ErrExternalServiceUnavailable = errors.New("external data source unavailable")

// ExternalServiceError records which upstream source failed and why.
type ExternalServiceError struct {
	Source string
	Err    error
}

// NewExternal wraps err as a failure of the named source.
func NewExternal(source string, err error) *ExternalServiceError {
	return &ExternalServiceError{Source: source, Err: err}
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("could not fetch data from %s: %v", e.Source, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrExternalServiceUnavailable) hold for every source failure.
func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalServiceUnavailable
}
