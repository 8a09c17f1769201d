package tools

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a registry error so the hosting chat loop can decide
// whether to re-prompt the model or surface an apology.
type Kind string

const (
	// Error kinds
	KindUnknownRole        Kind = "unknown_role"
	KindForbiddenOperation Kind = "forbidden_operation"
	KindUnknownOperation   Kind = "unknown_operation"
	KindInvalidParameter   Kind = "invalid_parameter"
	KindTimeout            Kind = "timeout"
	KindDataStore          Kind = "datastore_error"
)

// Error is the structured error returned by the registry. It always
// carries the kind plus the offending operation or field.
type Error struct {
	Kind      Kind
	Operation string
	Field     string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s: parameter %q: %s", e.Kind, e.Operation, e.Field, e.Message)
	case e.Operation != "":
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Kind, e.Operation, e.Err)
		}
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Operation, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap exposes the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a registry error, or "" for other errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is a registry error of the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func errUnknownRole(role string) error {
	return &Error{Kind: KindUnknownRole, Message: fmt.Sprintf("unrecognized role %q", role)}
}

func errForbidden(op string, role Role) error {
	return &Error{Kind: KindForbiddenOperation, Operation: op, Message: fmt.Sprintf("not permitted for role %q", role)}
}

func errUnknownOperation(op string) error {
	return &Error{Kind: KindUnknownOperation, Operation: op, Message: "no such operation"}
}

func errInvalidParameter(op, field, message string) error {
	return &Error{Kind: KindInvalidParameter, Operation: op, Field: field, Message: message}
}

// wrapStoreError maps a failed query to the taxonomy, keeping deadline
// expiry distinct from datastore failures so callers can retry.
func wrapStoreError(op string, err error) error {
	kind := KindDataStore
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Operation: op, Err: err}
}
