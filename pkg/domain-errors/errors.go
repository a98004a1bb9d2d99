// Package dErrors defines coded domain errors. Services return these so
// transport layers can translate outcomes to status codes without inspecting
// error strings. Infrastructure facts (row missing, key taken) live in
// pkg/platform/sentinel; services translate them into coded errors here.
package dErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	// CodeBadRequest marks a request the transport layer could not parse.
	CodeBadRequest Code = "bad_request"
	// CodeValidation marks input that parsed but failed field validation.
	CodeValidation Code = "validation"
	// CodeNotFound marks a reference to an entity that does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a uniqueness violation on create.
	CodeConflict Code = "conflict"
	// CodeInvariantViolation marks an operation a business rule forbids.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal marks everything else. Callers see only the safe message.
	CodeInternal Code = "internal"
)

// DomainError carries a code, a caller-safe message, and an optional cause.
type DomainError struct {
	Code    Code
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error { return e.Err }

// New builds a coded error without a cause.
func New(code Code, message string) error {
	return &DomainError{Code: code, Message: message}
}

// Wrap attaches a code and caller-safe message to an underlying error.
// The cause stays reachable through errors.Unwrap for logging.
func Wrap(err error, code Code, message string) error {
	return &DomainError{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readable alias for HasCode at call sites that branch on outcome.
func Is(err error, code Code) bool { return HasCode(err, code) }

// Message returns the caller-safe message, or a generic one for uncoded errors.
func Message(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// CodeOf extracts the code from the chain, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to its transport status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation, CodeInvariantViolation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
