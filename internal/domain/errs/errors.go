// Package errs defines the error kinds shared by every aggregate. Handlers
// match on the kind with errors.Is and never on the message text.
package errs

import (
	"errors"
	"fmt"
)

// Error kinds
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrRateLimited = errors.New("rate limited")
	ErrValidation  = errors.New("validation failed")
	ErrUpstream    = errors.New("upstream failure")
)

// DomainError carries a stable code, a human message and its kind.
type DomainError struct {
	Kind    error
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of e.
func (e *DomainError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// New builds a DomainError of the given kind.
func New(kind error, code, message string, err error) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message, Err: err}
}

// Message returns the human message of a DomainError anywhere in err's chain,
// or the empty string.
func Message(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
